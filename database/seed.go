package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"candle-shop/models"
	"candle-shop/utils"
)

// Seed inserts the demo accounts and the starter candle catalog. It is
// idempotent: users are upserted by email and the catalog is only written
// when the products table is empty.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	if err := seedUsers(ctx, db); err != nil {
		return err
	}
	return seedProducts(ctx, db)
}

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	seedAccounts := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"Admin User", "admin@candles.com", "admin123", models.RoleAdmin},
		{"Demo User", "user@candles.com", "user123", models.RoleUser},
	}

	for _, acc := range seedAccounts {
		hash, err := utils.HashPassword(acc.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		_, err = db.Exec(ctx,
			`INSERT INTO users (id, name, email, password, role, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (email) DO NOTHING`,
			uuid.NewString(), acc.name, acc.email, hash, acc.role, time.Now())
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", acc.email, err)
		}
	}
	return nil
}

func seedProducts(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("Products already present, skipping catalog seed")
		return nil
	}

	now := time.Now()
	for _, p := range starterCatalog() {
		p.ID = uuid.NewString()
		p.DateAdded = now

		images, err := json.Marshal(p.Images)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx,
			`INSERT INTO products
			 (id, name, price, original_price, category, fragrance, size, weight, burn_time,
			  stock, images, description, rating, reviews, sku, featured, date_added)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
			p.ID, p.Name, p.Price, p.OriginalPrice, p.Category, p.Fragrance, p.Size,
			p.Weight, p.BurnTime, p.Stock, images, p.Description, p.Rating, p.Reviews,
			p.SKU, p.Featured, p.DateAdded)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
	}

	log.Println("Starter catalog seeded")
	return nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func starterCatalog() []models.Product {
	return []models.Product{
		{
			Name: "Lavender Dreams", Price: 599, OriginalPrice: intPtr(799),
			Category: "Scented", Fragrance: strPtr("Lavender"),
			Size: "8 oz", Weight: "227g", BurnTime: "40-45 hours", Stock: 25,
			Images: []string{
				"https://images.unsplash.com/photo-1627808587525-194446b07384?w=800",
				"https://images.unsplash.com/photo-1602874801006-223f8178e440?w=800",
			},
			Description: "Indulge in the calming essence of pure lavender. Hand-poured with natural soy wax, this candle creates a serene atmosphere perfect for relaxation and meditation.",
			Rating:      4.5, Reviews: 42, SKU: "SCE-LAV001", Featured: true,
		},
		{
			Name: "Vanilla Bourbon", Price: 649, OriginalPrice: intPtr(849),
			Category: "Scented", Fragrance: strPtr("Vanilla"),
			Size: "10 oz", Weight: "283g", BurnTime: "50-55 hours", Stock: 30,
			Images: []string{
				"https://images.unsplash.com/photo-1604478498491-d63d698dfe0b?w=800",
				"https://images.unsplash.com/photo-1602874801138-3190c0c2e9cd?w=800",
			},
			Description: "Rich, warm vanilla infused with hints of bourbon. A luxurious scent that transforms any space into a cozy sanctuary.",
			Rating:      4.8, Reviews: 68, SKU: "SCE-VAN001", Featured: true,
		},
		{
			Name: "Sandalwood Serenity", Price: 699,
			Category: "Scented", Fragrance: strPtr("Sandalwood"),
			Size: "8 oz", Weight: "227g", BurnTime: "45-50 hours", Stock: 20,
			Images: []string{
				"https://images.unsplash.com/photo-1721274500738-f6e549c7d5fc?w=800",
				"https://images.unsplash.com/photo-1603006905003-be475563bc59?w=800",
			},
			Description: "Earthy and grounding sandalwood creates a meditative ambiance. Perfect for yoga, meditation, or unwinding after a long day.",
			Rating:      4.7, Reviews: 35, SKU: "SCE-SAN001", Featured: true,
		},
		{
			Name: "Ocean Breeze", Price: 549, OriginalPrice: intPtr(699),
			Category: "Scented", Fragrance: strPtr("Citrus"),
			Size: "8 oz", Weight: "227g", BurnTime: "40-45 hours", Stock: 35,
			Images: []string{
				"https://images.unsplash.com/photo-1615876234886-fd9a39fda97f?w=800",
				"https://images.unsplash.com/photo-1602874801006-223f8178e440?w=800",
			},
			Description: "Fresh and invigorating citrus blend reminiscent of ocean waves. Energizes your space with clean, crisp aromatics.",
			Rating:      4.3, Reviews: 28, SKU: "SCE-OCE001",
		},
		{
			Name: "Classic Ivory Pillar", Price: 399,
			Category: "Pillar",
			Size:     "3x6 inches", Weight: "340g", BurnTime: "60-65 hours", Stock: 40,
			Images: []string{
				"https://images.unsplash.com/photo-1602874801006-223f8178e440?w=800",
			},
			Description: "Timeless unscented ivory pillar candle. Clean-burning and elegant, suited to dinner tables and mantelpieces alike.",
			Rating:      4.4, Reviews: 21, SKU: "PIL-IVO001",
		},
		{
			Name: "Rose Garden", Price: 629, OriginalPrice: intPtr(779),
			Category: "Scented", Fragrance: strPtr("Rose"),
			Size: "8 oz", Weight: "227g", BurnTime: "40-45 hours", Stock: 22,
			Images: []string{
				"https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?w=800",
			},
			Description: "Delicate rose petals captured in soy wax. A romantic floral scent for bedrooms and living spaces.",
			Rating:      4.6, Reviews: 31, SKU: "SCE-ROS001",
		},
		{
			Name: "Mint Eucalyptus", Price: 579,
			Category: "Scented", Fragrance: strPtr("Mint"),
			Size: "8 oz", Weight: "227g", BurnTime: "40-45 hours", Stock: 27,
			Images: []string{
				"https://images.unsplash.com/photo-1721274500738-f6e549c7d5fc?w=800",
				"https://images.unsplash.com/photo-1602874801138-3190c0c2e9cd?w=800",
			},
			Description: "Refreshing mint and eucalyptus blend. Clears the mind and energizes the space with crisp aromatics.",
			Rating:      4.7, Reviews: 36, SKU: "SCE-MIN001",
		},
		{
			Name: "Amber Woods", Price: 749,
			Category: "Scented", Fragrance: strPtr("Amber"),
			Size: "10 oz", Weight: "283g", BurnTime: "50-55 hours", Stock: 19,
			Images: []string{
				"https://images.unsplash.com/photo-1615876234886-fd9a39fda97f?w=800",
				"https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?w=800",
			},
			Description: "Rich amber with woody undertones. A sophisticated masculine scent perfect for study or home office.",
			Rating:      4.8, Reviews: 44, SKU: "SCE-AMB001", Featured: true,
		},
	}
}
