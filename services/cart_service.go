package services

import (
	"context"
	"time"

	"candle-shop/models"
)

type CartService struct {
	carts CartStore
}

func NewCartService(carts CartStore) *CartService {
	return &CartService{carts: carts}
}

// Get never reports a missing cart; an empty one is synthesized instead.
func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{
			UserID:    userID,
			Items:     []models.CartItem{},
			UpdatedAt: time.Now(),
		}
	}
	return cart, nil
}

// Replace overwrites the cart wholesale. Product ids and quantities are
// passed through unvalidated; order placement resolves them later.
func (s *CartService) Replace(ctx context.Context, userID string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	cart := &models.Cart{
		UserID:    userID,
		Items:     items,
		UpdatedAt: time.Now(),
	}
	return s.carts.Upsert(ctx, cart)
}
