package gormstore

import (
	"strings"

	"cakeshop/internal/errors"

	"gorm.io/gorm"
)

// The gorm dialects translate driver codes into these sentinels when TranslateError is on.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	// sqlite reports FK failures without a translated sentinel.
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint failed")
}
