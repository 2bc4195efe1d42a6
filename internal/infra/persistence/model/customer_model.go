package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(50);not null"`
	Address      string    `gorm:"type:varchar(200)"`
	Phone        string    `gorm:"type:varchar(20)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&CustomerModel{},
		&ProductModel{},
		&CartLineModel{},
		&OrderModel{},
		&OrderLineModel{},
	}
}
