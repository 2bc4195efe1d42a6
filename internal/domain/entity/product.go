// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Price bounds accepted for a product.
var (
	MinProductPrice = decimal.RequireFromString("0.01")
	MaxProductPrice = decimal.RequireFromString("10000")
)

// Product is a cake offered in the catalog.
type Product struct {
	ID          uuid.UUID       `json:"id"`          // Unique product identifier.
	Name        string          `json:"name"`        // Display name, at most 100 characters.
	Description string          `json:"description"` // Optional marketing copy.
	Price       decimal.Decimal `json:"price"`       // Current unit price.
	ImageURL    string          `json:"image_url"`   // Optional image reference, e.g. /images/3.jpg.
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// HasImage reports whether the product can appear in the featured carousel.
func (p *Product) HasImage() bool {
	return p.ImageURL != ""
}

// PriceInRange reports whether the price lies within the accepted bounds.
func (p *Product) PriceInRange() bool {
	return p.Price.GreaterThanOrEqual(MinProductPrice) && p.Price.LessThanOrEqual(MaxProductPrice)
}
