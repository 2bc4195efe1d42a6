// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cakeshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase defines read access to the product catalog.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	// ListFeatured returns up to limit products with an image in random order. A limit <= 0 uses the configured default.
	ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error)
	// SeedCatalog inserts the default cakes into an empty catalog and reports how many were inserted.
	SeedCatalog(ctx context.Context) (int, error)
}
