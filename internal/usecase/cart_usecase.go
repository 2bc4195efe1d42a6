package usecase

import (
	"context"

	"cakeshop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a product to the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"`
}

// UpdateCartItemInput defines the new quantity of a cart line.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// CartUsecase defines the operations on a customer's cart.
type CartUsecase interface {
	AddItem(ctx context.Context, userID uuid.UUID, input AddCartItemInput) (*entity.CartLine, error)
	// UpdateQuantity sets a line's quantity. A quantity <= 0 removes the line and returns nil.
	UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, input UpdateCartItemInput) (*entity.CartLine, error)
	RemoveItem(ctx context.Context, userID, lineID uuid.UUID) error
	ListItems(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
}
