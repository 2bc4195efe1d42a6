// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cakeshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")

	// ErrPriceOutOfRange is returned when a product price lies outside the accepted bounds.
	ErrPriceOutOfRange = errors.New("product price out of range")
)

// ProductRepository defines catalog persistence. Products are read-only except for seeding.
type ProductRepository interface {
	// FindAll returns every product ordered by name.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID returns one product or ErrProductNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products among ids that exist, keyed by id.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	// FindFeatured returns up to limit products with an image, in random order.
	FindFeatured(ctx context.Context, limit int) ([]*entity.Product, error)

	// Count returns the number of products.
	Count(ctx context.Context) (int64, error)

	// CreateBatch inserts products. It rejects the whole batch with ErrPriceOutOfRange
	// when any price is outside the accepted bounds.
	CreateBatch(ctx context.Context, products []*entity.Product) error
}
