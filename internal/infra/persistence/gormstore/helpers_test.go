package gormstore

import (
	"context"
	"strings"
	"testing"

	"cakeshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with foreign keys on and the schema migrated.
// A single connection keeps the in-memory database alive and serialises access.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:" + name + "-" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=1"

	db, err := OpenSQLite(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(context.Background(), db))

	return db
}

func seedProducts(t *testing.T, db *gorm.DB, products ...*entity.Product) {
	t.Helper()

	require.NoError(t, NewProductRepository(db).CreateBatch(context.Background(), products))
}

func newProduct(name, price, image string) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    decimal.RequireFromString(price),
		ImageURL: image,
	}
}
