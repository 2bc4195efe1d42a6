package model

import (
	"time"

	"github.com/google/uuid"
)

// CartLineModel is the GORM-specific struct for the 'cart_lines' table.
// The (user_id, product_id) pair is unique so repeated adds merge into one row.
type CartLineModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_cart_lines_user_product,priority:1"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_cart_lines_user_product,priority:2"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int           `gorm:"not null;check:chk_cart_lines_quantity,quantity >= 1 AND quantity <= 100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
