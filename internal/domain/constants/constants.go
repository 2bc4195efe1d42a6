// Package constants defines configuration values shared across infrastructure packages.
package constants

// Event publisher providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Database drivers accepted in database.driver.
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

// Event types published after state changes.
const (
	EventTypeOrderPlaced = "order.placed"
)

// Catalog cache keys.
const (
	CacheKeyProductList = "catalog:products"
)
