package gormstore

import (
	"context"
	"testing"

	"cakeshop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	cake := newProduct("Black Forest", "480", "")
	seedProducts(t, db, cake)
	userID := uuid.New()

	t.Run("error rolls back every write", func(t *testing.T) {
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			require.NoError(t, f.CartRepo().MergeLine(ctx, newLine(userID, cake.ID, 1)))

			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		lines, err := NewCartRepository(db).FindLinesByUser(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("success commits", func(t *testing.T) {
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			return f.CartRepo().MergeLine(ctx, newLine(userID, cake.ID, 2))
		})
		require.NoError(t, err)

		lines, err := NewCartRepository(db).FindLinesByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("panic rolls back and propagates", func(t *testing.T) {
		other := uuid.New()
		assert.Panics(t, func() {
			_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				_ = f.CartRepo().MergeLine(ctx, newLine(other, cake.ID, 1))
				panic("boom")
			})
		})

		lines, err := NewCartRepository(db).FindLinesByUser(ctx, other)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}
