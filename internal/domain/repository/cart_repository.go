package repository

import (
	"context"

	"cakeshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartLineNotFound is returned when no line with the id belongs to the user.
	ErrCartLineNotFound = errors.New("cart line not found")
	// ErrQuantityOutOfRange is returned when a write would leave a line outside 1..100.
	ErrQuantityOutOfRange = errors.New("cart line quantity out of range")
	// ErrUnknownProduct is returned when a line references a product that does not exist.
	ErrUnknownProduct = errors.New("cart line references unknown product")
)

// CartRepository defines cart line persistence. Every method is scoped by user id.
type CartRepository interface {
	// FindLinesByUser returns the user's lines, oldest first.
	FindLinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)

	// LockLinesByUser returns the user's lines and holds row locks on them until the transaction ends.
	LockLinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)

	// LockLineByProduct returns the user's line for a product under a row lock, or ErrCartLineNotFound.
	LockLineByProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartLine, error)

	// FindLine returns one of the user's lines or ErrCartLineNotFound.
	FindLine(ctx context.Context, userID, lineID uuid.UUID) (*entity.CartLine, error)

	// MergeLine inserts a line, adding its quantity to the existing (user, product) line on conflict.
	MergeLine(ctx context.Context, line *entity.CartLine) error

	// UpdateQuantity sets the quantity of one of the user's lines.
	UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) error

	// DeleteLine removes one of the user's lines.
	DeleteLine(ctx context.Context, userID, lineID uuid.UUID) error

	// DeleteLines removes the given lines of the user and reports how many were removed.
	DeleteLines(ctx context.Context, userID uuid.UUID, lineIDs []uuid.UUID) (int64, error)
}
