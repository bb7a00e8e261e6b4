package repositories

import (
	"strings"
	"testing"

	"candle-shop/models"
)

func boolPtr(v bool) *bool { return &v }
func intPtr2(v int) *int   { return &v }

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name        string
		filter      models.ProductFilter
		wantClauses []string
		wantAbsent  []string
		wantArgs    []any
	}{
		{
			name:        "no filter defaults to limit 50",
			filter:      models.ProductFilter{},
			wantClauses: []string{"ORDER BY date_added DESC", "LIMIT $1"},
			wantAbsent:  []string{"WHERE"},
			wantArgs:    []any{50},
		},
		{
			name:        "category exact match",
			filter:      models.ProductFilter{Category: "Scented"},
			wantClauses: []string{"category = $1"},
			wantArgs:    []any{"Scented", 50},
		},
		{
			name:        "fragrance exact match",
			filter:      models.ProductFilter{Fragrance: "Lavender"},
			wantClauses: []string{"fragrance = $1"},
			wantArgs:    []any{"Lavender", 50},
		},
		{
			name:        "featured flag",
			filter:      models.ProductFilter{Featured: boolPtr(true)},
			wantClauses: []string{"featured = $1"},
			wantArgs:    []any{true, 50},
		},
		{
			name:   "search spans name, description and category",
			filter: models.ProductFilter{Search: "lavender"},
			wantClauses: []string{
				"name ILIKE $1", "description ILIKE $1", "category ILIKE $1", " OR ",
			},
			wantArgs: []any{"%lavender%", 50},
		},
		{
			name:        "inclusive price range",
			filter:      models.ProductFilter{MinPrice: intPtr2(100), MaxPrice: intPtr2(1000)},
			wantClauses: []string{"price >= $1", "price <= $2"},
			wantArgs:    []any{100, 1000, 50},
		},
		{
			name: "all filters are ANDed",
			filter: models.ProductFilter{
				Category: "Scented", Fragrance: "Rose", Search: "petal",
				Featured: boolPtr(false), MinPrice: intPtr2(10), MaxPrice: intPtr2(99),
				Limit: 5,
			},
			wantClauses: []string{
				"category = $1", "fragrance = $2", "featured = $3",
				"ILIKE $4", "price >= $5", "price <= $6", "LIMIT $7", " AND ",
			},
			wantArgs: []any{"Scented", "Rose", false, "%petal%", 10, 99, 5},
		},
		{
			name:        "explicit limit",
			filter:      models.ProductFilter{Limit: 3},
			wantClauses: []string{"LIMIT $1"},
			wantArgs:    []any{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListQuery(tt.filter)

			for _, clause := range tt.wantClauses {
				if !strings.Contains(query, clause) {
					t.Errorf("query missing %q:\n%s", clause, query)
				}
			}
			for _, clause := range tt.wantAbsent {
				if strings.Contains(query, clause) {
					t.Errorf("query should not contain %q:\n%s", clause, query)
				}
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d: %v", len(tt.wantArgs), len(args), args)
			}
			for i, want := range tt.wantArgs {
				if args[i] != want {
					t.Errorf("arg %d: expected %v, got %v", i, want, args[i])
				}
			}
		})
	}
}
