package usecase

import (
	"context"

	"cakeshop/internal/domain/entity"

	"github.com/google/uuid"
)

// AdvanceOrderStatusInput names the next status of an order.
type AdvanceOrderStatusInput struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// OrderUsecase defines order history and fulfilment operations.
type OrderUsecase interface {
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	// GetOrder returns an owned order. Missing and foreign orders yield the same error.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	GenerateOrderQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
	// AdvanceStatus is an admin operation and ignores ownership.
	AdvanceStatus(ctx context.Context, orderID uuid.UUID, input AdvanceOrderStatusInput) (*entity.Order, error)
}
