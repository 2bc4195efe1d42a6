package repository

import (
	"context"

	"cakeshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order does not exist or is not owned by the caller.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines order persistence.
type OrderRepository interface {
	// Create inserts the order together with its lines.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUser returns the user's orders without lines, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByIDForUser returns an order with its lines if it belongs to the user.
	FindByIDForUser(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// LockByID returns an order under a row lock regardless of owner.
	LockByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// UpdateStatus sets the order status.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error
}
