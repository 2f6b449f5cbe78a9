package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product categories.
const (
	CategorySuits       = "suits"
	CategoryDresses     = "dresses"
	CategoryShirts      = "shirts"
	CategoryAccessories = "accessories"
)

// Product is a catalog record. The storefront treats products as read-only;
// catalog management lives elsewhere.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	Material    string          `json:"material"`
	InStock     bool            `json:"inStock"`
	Featured    bool            `json:"featured"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PrimaryImage returns the first image URI, or "" for a product without images.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Filter narrows a product listing.
type Filter struct {
	Category string
	Featured *bool
}
