package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is published once an order has been committed.
type OrderPlacedEvent struct {
	RequestID   string           `json:"request_id,omitempty"` // For distributed tracing
	EventType   string           `json:"event_type"`
	OrderID     string           `json:"order_id"`
	UserID      string           `json:"user_id"`
	TotalAmount string           `json:"total_amount"`
	Lines       []OrderEventLine `json:"lines"`
	PlacedAt    time.Time        `json:"placed_at"`
}

// OrderEventLine is one order line inside an OrderPlacedEvent.
type OrderEventLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order placed event for downstream fulfilment
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
