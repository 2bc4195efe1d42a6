package gormstore

import (
	"context"

	"cakeshop/internal/errors"
	"cakeshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the shop needs.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
