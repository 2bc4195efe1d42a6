package service

import "github.com/shopspring/decimal"

// MetricsRecorder records business metrics from the usecase layer.
type MetricsRecorder interface {
	// OrderPlaced counts a committed checkout and its amount.
	OrderPlaced(total decimal.Decimal)

	// CheckoutFailed counts a rejected or failed checkout by error code.
	CheckoutFailed(reason string)

	// CartMutation counts cart writes by operation (add, update, remove).
	CartMutation(operation string)

	// CacheLookup counts catalog cache hits and misses.
	CacheLookup(hit bool)
}
