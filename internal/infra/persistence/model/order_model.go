package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index:idx_orders_user_created,priority:1"`
	Status          string           `gorm:"type:varchar(20);not null"`
	TotalAmount     decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	ShippingAddress string           `gorm:"type:varchar(200);not null"`
	RecipientName   string           `gorm:"type:varchar(50);not null"`
	RecipientPhone  string           `gorm:"type:varchar(20);not null"`
	Lines           []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time        `gorm:"index:idx_orders_user_created,priority:2,sort:desc"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM-specific struct for the 'order_lines' table.
// Product name and unit price are copies, so later catalog edits never reach placed orders.
type OrderLineModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_lines_order_no,priority:1"`
	LineNo      int             `gorm:"not null;uniqueIndex:idx_order_lines_order_no,priority:2"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(100);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
