package services

import (
	"context"

	"candle-shop/models"
)

// Store interfaces consumed by the services. The pgx repositories and the
// in-memory stores in the repositories package both satisfy them. Finders
// return (nil, nil) when the entity is absent.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context, limit int) ([]models.User, error)
	CountByRole(ctx context.Context, role string) (int, error)
}

type ProductStore interface {
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

type CartStore interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Upsert(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, userID string) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, orderID string) (*models.Order, error)
	List(ctx context.Context, userID string, limit int) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (bool, error)
	Count(ctx context.Context) (int, error)
	SumTotalsExcluding(ctx context.Context, status string) (int, error)
}
