package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"candle-shop/models"
)

type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Get(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	var items []byte
	err := r.db.QueryRow(ctx,
		`SELECT user_id, items, updated_at FROM carts WHERE user_id = $1`, userID).
		Scan(&cart.UserID, &items, &cart.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &cart.Items); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Upsert replaces the whole cart document, creating it on first write.
func (r *CartRepository) Upsert(ctx context.Context, cart *models.Cart) error {
	items, err := json.Marshal(cart.Items)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO carts (user_id, items, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET items = $2, updated_at = $3`,
		cart.UserID, items, cart.UpdatedAt)
	return err
}

func (r *CartRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}
