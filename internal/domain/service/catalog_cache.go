package service

import (
	"context"
	"time"
)

// CatalogCache stores serialized catalog reads. A miss is reported as found == false with a nil error.
type CatalogCache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
