package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"candle-shop/models"
)

const productCacheTTL = 5 * time.Minute

type ProductService struct {
	products ProductStore
	cache    *redis.Client
}

// NewProductService wires the catalog store with an optional Redis cache;
// cache may be nil.
func NewProductService(products ProductStore, cache *redis.Client) *ProductService {
	return &ProductService{products: products, cache: cache}
}

func productCacheKey(f models.ProductFilter) string {
	featured := ""
	if f.Featured != nil {
		featured = fmt.Sprintf("%t", *f.Featured)
	}
	minPrice, maxPrice := "", ""
	if f.MinPrice != nil {
		minPrice = fmt.Sprintf("%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%d", *f.MaxPrice)
	}
	return "products_list_" + strings.Join([]string{
		f.Category, f.Fragrance, f.Search, featured, minPrice, maxPrice,
		fmt.Sprintf("%d", f.Limit),
	}, "|")
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		s.cache.Del(ctx, iter.Val())
	}
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	key := productCacheKey(filter)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			s.cache.Set(ctx, key, data, productCacheTTL)
		}
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create assigns the server-owned fields: id, sku (first three letters of
// the category plus the id prefix), zeroed rating/reviews and dateAdded.
func (s *ProductService) Create(ctx context.Context, payload models.ProductPayload) (*models.Product, error) {
	id := uuid.NewString()

	categoryPrefix := payload.Category
	if len(categoryPrefix) > 3 {
		categoryPrefix = categoryPrefix[:3]
	}
	sku := fmt.Sprintf("%s-%s", strings.ToUpper(categoryPrefix), strings.ToUpper(id[:8]))

	product := &models.Product{
		ID:            id,
		Name:          payload.Name,
		Price:         payload.Price,
		OriginalPrice: payload.OriginalPrice,
		Category:      payload.Category,
		Fragrance:     payload.Fragrance,
		Size:          payload.Size,
		Weight:        payload.Weight,
		BurnTime:      payload.BurnTime,
		Stock:         payload.Stock,
		Images:        payload.Images,
		Description:   payload.Description,
		Rating:        0,
		Reviews:       0,
		SKU:           sku,
		Featured:      payload.Featured,
		DateAdded:     time.Now(),
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return product, nil
}

// Update replaces the caller-supplied document fields wholesale. The
// server-owned fields (sku, rating, reviews, dateAdded) are preserved.
func (s *ProductService) Update(ctx context.Context, id string, payload models.ProductPayload) (*models.Product, error) {
	existing, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.Name = payload.Name
	existing.Price = payload.Price
	existing.OriginalPrice = payload.OriginalPrice
	existing.Category = payload.Category
	existing.Fragrance = payload.Fragrance
	existing.Size = payload.Size
	existing.Weight = payload.Weight
	existing.BurnTime = payload.BurnTime
	existing.Stock = payload.Stock
	existing.Images = payload.Images
	existing.Description = payload.Description
	existing.Featured = payload.Featured

	if err := s.products.Update(ctx, existing); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return existing, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	deleted, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateCache(ctx)
	return nil
}
