package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quantity bounds for a single cart line.
const (
	MinLineQuantity = 1
	MaxLineQuantity = 100
)

// CartLine is one product in a customer's cart. A user holds at most one line per product.
type CartLine struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidLineQuantity reports whether q can be stored on a cart line.
func ValidLineQuantity(q int) bool {
	return q >= MinLineQuantity && q <= MaxLineQuantity
}

// CartItem is a cart line joined with the product's current data.
type CartItem struct {
	Line    *CartLine `json:"line"`
	Product *Product  `json:"product"`
}

// Subtotal is the line total at the product's current price.
func (i *CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Line.Quantity)))
}

// Cart is the priced view of a user's cart lines.
type Cart struct {
	UserID    uuid.UUID       `json:"user_id"`
	Items     []*CartItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// NewCart prices items at their products' current prices.
func NewCart(userID uuid.UUID, items []*CartItem) *Cart {
	cart := &Cart{
		UserID: userID,
		Items:  items,
		Total:  decimal.Zero,
	}
	for _, item := range items {
		cart.Total = cart.Total.Add(item.Subtotal())
		cart.ItemCount += item.Line.Quantity
	}

	return cart
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
