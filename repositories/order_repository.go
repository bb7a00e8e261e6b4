package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"candle-shop/models"
)

const orderColumns = `order_id, user_id, items, subtotal, shipping, total, status,
	shipping_address, payment_method, upi_transaction_id, order_date, expected_delivery`

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO orders (`+orderColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		order.OrderID, order.UserID, items, order.Subtotal, order.Shipping,
		order.Total, order.Status, address, order.PaymentMethod,
		order.UPITransactionID, order.OrderDate, order.ExpectedDelivery)
	return err
}

func (r *OrderRepository) Get(ctx context.Context, orderID string) (*models.Order, error) {
	row := r.db.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE order_id = $1", orderID)
	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// List returns orders newest first. An empty userID returns every order.
func (r *OrderRepository) List(ctx context.Context, userID string, limit int) ([]models.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders"
	args := []any{}
	if userID != "" {
		query += " WHERE user_id = $1 ORDER BY order_date DESC LIMIT $2"
		args = append(args, userID, limit)
	} else {
		query += " ORDER BY order_date DESC LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// UpdateStatus reports whether an order with the given id existed.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, status string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE order_id = $2`, status, orderID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}

// SumTotalsExcluding sums order totals, skipping orders in the given status.
func (r *OrderRepository) SumTotalsExcluding(ctx context.Context, status string) (int, error) {
	var sum int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM orders WHERE status <> $1`, status).Scan(&sum)
	return sum, err
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	var items, address []byte
	err := row.Scan(&o.OrderID, &o.UserID, &items, &o.Subtotal, &o.Shipping,
		&o.Total, &o.Status, &address, &o.PaymentMethod, &o.UPITransactionID,
		&o.OrderDate, &o.ExpectedDelivery)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(address, &o.ShippingAddress); err != nil {
		return nil, err
	}
	return &o, nil
}
