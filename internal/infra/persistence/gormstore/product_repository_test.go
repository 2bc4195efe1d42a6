package gormstore

import (
	"context"
	"testing"

	"cakeshop/internal/domain/entity"
	"cakeshop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Queries(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProductRepository(db)

	cheese := newProduct("Cheesecake", "380", "/images/2.jpg")
	brownie := newProduct("Brownie", "120.50", "")
	tiramisu := newProduct("Tiramisu", "420", "/images/4.jpg")
	seedProducts(t, db, cheese, brownie, tiramisu)

	t.Run("count", func(t *testing.T) {
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 3, n)
	})

	t.Run("all sorted by name", func(t *testing.T) {
		products, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, []string{"Brownie", "Cheesecake", "Tiramisu"},
			[]string{products[0].Name, products[1].Name, products[2].Name})
		assert.True(t, decimal.RequireFromString("120.5").Equal(products[0].Price))
	})

	t.Run("by id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, tiramisu.ID)
		require.NoError(t, err)
		assert.Equal(t, "Tiramisu", got.Name)

		_, err = repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})

	t.Run("by ids skips unknown", func(t *testing.T) {
		got, err := repo.FindByIDs(ctx, []uuid.UUID{cheese.ID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Contains(t, got, cheese.ID)
	})

	t.Run("featured only has images", func(t *testing.T) {
		got, err := repo.FindFeatured(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		for _, p := range got {
			assert.True(t, p.HasImage())
		}

		got, err = repo.FindFeatured(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestProductRepository_CreateBatchRejectsPriceOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{name: "zero", price: "0"},
		{name: "above maximum", price: "10000.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			repo := NewProductRepository(db)
			ctx := context.Background()

			err := repo.CreateBatch(ctx, []*entity.Product{
				newProduct("Valid cake", "100", ""),
				newProduct("Bad cake", tt.price, ""),
			})
			require.ErrorIs(t, err, repository.ErrPriceOutOfRange)

			count, err := repo.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, count, "a rejected batch inserts nothing")
		})
	}
}
