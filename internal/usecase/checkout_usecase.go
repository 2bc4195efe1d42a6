package usecase

import (
	"context"

	"cakeshop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CheckoutInput holds the recipient details submitted with an order.
type CheckoutInput struct {
	RecipientName   string `json:"recipient_name" validate:"required,max=50"`
	ShippingAddress string `json:"shipping_address" validate:"required,max=200"`
	RecipientPhone  string `json:"recipient_phone" validate:"required,max=20,phone"`
}

// --- Output DTOs ---

// CheckoutPreview is the cart plus recipient defaults taken from the customer profile.
type CheckoutPreview struct {
	Cart     *entity.Cart  `json:"cart"`
	Defaults CheckoutInput `json:"defaults"`
}

// CheckoutUsecase turns a cart into an order.
type CheckoutUsecase interface {
	PrepareCheckout(ctx context.Context, userID uuid.UUID) (*CheckoutPreview, error)
	PlaceOrder(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*entity.Order, error)
}
