package models

import "time"

// Product prices are integer minor currency units. OriginalPrice and
// Fragrance are optional and omitted from JSON when absent.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	OriginalPrice *int      `json:"originalPrice,omitempty"`
	Category      string    `json:"category"`
	Fragrance     *string   `json:"fragrance,omitempty"`
	Size          string    `json:"size"`
	Weight        string    `json:"weight"`
	BurnTime      string    `json:"burnTime"`
	Stock         int       `json:"stock"`
	Images        []string  `json:"images"`
	Description   string    `json:"description"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	SKU           string    `json:"sku"`
	Featured      bool      `json:"featured"`
	DateAdded     time.Time `json:"dateAdded"`
}

// ProductFilter describes the optional catalog query constraints. All
// supplied constraints are ANDed; Search matches name, description or
// category case-insensitively.
type ProductFilter struct {
	Category  string
	Fragrance string
	Search    string
	Featured  *bool
	MinPrice  *int
	MaxPrice  *int
	Limit     int
}
