package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"candle-shop/config"
)

// ConnectRedis returns a Redis client for the product-list cache, or nil
// when Redis is unconfigured or unreachable. Callers must tolerate nil.
func ConnectRedis(cfg *config.Config) *redis.Client {
	var opt *redis.Options

	switch {
	case cfg.RedisURL != "":
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return nil
		}
		opt = parsed
	case cfg.RedisAddr != "":
		opt = &redis.Options{Addr: cfg.RedisAddr}
	default:
		log.Println("Redis not configured, running without cache")
		return nil
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		return nil
	}

	log.Println("Redis connected")
	return client
}
