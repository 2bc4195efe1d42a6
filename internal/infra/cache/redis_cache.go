// Package cache provides the catalog read cache backed by Redis.
package cache

import (
	"context"
	"log/slog"
	"time"

	"cakeshop/config"
	"cakeshop/internal/domain/lifecycle"
	"cakeshop/internal/domain/service"
	"cakeshop/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type redisCatalogCache struct {
	client redis.UniversalClient
}

// NewRedisCatalogCache wraps an existing client
func NewRedisCatalogCache(client redis.UniversalClient) service.CatalogCache {
	return &redisCatalogCache{client: client}
}

func (c *redisCatalogCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	return val, true, nil
}

func (c *redisCatalogCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.WithStack(c.client.Set(ctx, key, value, ttl).Err())
}

func (c *redisCatalogCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return errors.WithStack(c.client.Del(ctx, keys...).Err())
}

// noopCatalogCache always misses
type noopCatalogCache struct{}

func (noopCatalogCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (noopCatalogCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (noopCatalogCache) Delete(context.Context, ...string) error { return nil }

// Params holds dependencies for the catalog cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis-backed cache when an address is configured and a no-op cache otherwise.
// An unreachable Redis at startup is logged, not fatal: every cache error degrades to a database read.
func New(params Params) service.CatalogCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, catalog cache disabled")

		return noopCatalogCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, catalog reads will fall back to the database",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)

				return nil
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisCatalogCache(client)
}
