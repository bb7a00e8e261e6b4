package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"candle-shop/models"
)

const productColumns = `id, name, price, original_price, category, fragrance, size, weight,
	burn_time, stock, images, description, rating, reviews, sku, featured, date_added`

const defaultProductLimit = 50

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

// buildListQuery turns a filter into SQL. All supplied constraints are
// ANDed; search is a case-insensitive substring match over name,
// description and category.
func buildListQuery(filter models.ProductFilter) (string, []any) {
	query := "SELECT " + productColumns + " FROM products"
	args := []any{}
	conditions := []string{}
	paramIndex := 1

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIndex))
		args = append(args, filter.Category)
		paramIndex++
	}
	if filter.Fragrance != "" {
		conditions = append(conditions, fmt.Sprintf("fragrance = $%d", paramIndex))
		args = append(args, filter.Fragrance)
		paramIndex++
	}
	if filter.Featured != nil {
		conditions = append(conditions, fmt.Sprintf("featured = $%d", paramIndex))
		args = append(args, *filter.Featured)
		paramIndex++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d)",
			paramIndex, paramIndex, paramIndex))
		args = append(args, "%"+filter.Search+"%")
		paramIndex++
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price >= $%d", paramIndex))
		args = append(args, *filter.MinPrice)
		paramIndex++
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", paramIndex))
		args = append(args, *filter.MaxPrice)
		paramIndex++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultProductLimit
	}
	query += fmt.Sprintf(" ORDER BY date_added DESC LIMIT $%d", paramIndex)
	args = append(args, limit)

	return query, args
}

func (r *ProductRepository) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query, args := buildListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	row := r.db.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		p.ID, p.Name, p.Price, p.OriginalPrice, p.Category, p.Fragrance, p.Size,
		p.Weight, p.BurnTime, p.Stock, images, p.Description, p.Rating, p.Reviews,
		p.SKU, p.Featured, p.DateAdded)
	return err
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`UPDATE products SET name=$1, price=$2, original_price=$3, category=$4,
		 fragrance=$5, size=$6, weight=$7, burn_time=$8, stock=$9, images=$10,
		 description=$11, featured=$12 WHERE id=$13`,
		p.Name, p.Price, p.OriginalPrice, p.Category, p.Fragrance, p.Size,
		p.Weight, p.BurnTime, p.Stock, images, p.Description, p.Featured, p.ID)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	var images []byte
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Category,
		&p.Fragrance, &p.Size, &p.Weight, &p.BurnTime, &p.Stock, &images,
		&p.Description, &p.Rating, &p.Reviews, &p.SKU, &p.Featured, &p.DateAdded)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, err
	}
	return &p, nil
}
