package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"candle-shop/config"
	"candle-shop/database"
	_ "candle-shop/docs"
	"candle-shop/middleware"
	"candle-shop/repositories"
	"candle-shop/routes"
	"candle-shop/services"
	"candle-shop/utils"
)

// @title Candle Shop API
// @version 1.0
// @description E-commerce backend for the candle shop: auth, catalog, cart and orders.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient := database.ConnectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	if cfg.SeedOnStart {
		if err := database.Seed(ctx, db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	var mailer services.ConfirmationMailer
	if emailService := services.NewEmailService(cfg); emailService != nil {
		mailer = emailService
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	routes.SetupRoutes(router, routes.Deps{
		Tokens:   tokens,
		Users:    userRepo,
		Auth:     services.NewAuthService(userRepo, tokens),
		Products: services.NewProductService(productRepo, redisClient),
		Carts:    services.NewCartService(cartRepo),
		Orders:   services.NewOrderService(orderRepo, productRepo, cartRepo, userRepo, mailer),
	})

	addr := ":" + cfg.Port
	log.Printf("Server starting on port %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
