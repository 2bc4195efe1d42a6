// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cakeshop/config"
	deliverycontext "cakeshop/internal/delivery/context"
	"cakeshop/internal/domain/constants"
	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/repository"
	"cakeshop/internal/domain/service"
	"cakeshop/internal/errors"
	"cakeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// defaultCakes is inserted by SeedCatalog into an empty catalog.
var defaultCakes = []struct {
	name        string
	description string
	price       string
	imageURL    string
}{
	{"漆黑可可樂章", "濃郁滑順的黑巧克力甘納許", "550.00", "/images/3.jpg"},
	{"荔枝茶語初夏風", "清爽荔枝搭配清香伯爵茶", "620.00", "/images/2.jpg"},
	{"翠玉脆語茉莉心", "開心果脆匠心搭配茉莉花奶餡", "680.00", "/images/6.jpg"},
	{"春日櫻語緋花境", "櫻花香緹與草莓奶凍交織", "580.00", "/images/1.jpg"},
	{"海洋之心藍夢境", "海鹽香草奶霜搭配藍莓果凍內餡", "660.00", "/images/4.jpg"},
}

type catalogService struct {
	txManager repository.TransactionManager
	cache     service.CatalogCache
	metrics   service.MetricsRecorder
	cfg       *config.Config
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     service.CatalogCache
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		cache:     params.Cache,
		metrics:   params.Metrics,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts reads through the catalog cache. Cache failures fall back to the database.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	if products, ok := srv.cachedProducts(ctx); ok {
		return products, nil
	}

	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to find products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to list products")
	}

	srv.storeProducts(ctx, products)

	return products, nil
}

func (srv *catalogService) cachedProducts(ctx context.Context) ([]*entity.Product, bool) {
	raw, found, err := srv.cache.Get(ctx, constants.CacheKeyProductList)
	if err != nil {
		srv.log(ctx).Warn("Catalog cache read failed", slog.Any("error", err))

		return nil, false
	}
	srv.metrics.CacheLookup(found)
	if !found {
		return nil, false
	}

	var products []*entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		srv.log(ctx).Warn("Discarding undecodable catalog cache entry", slog.Any("error", err))

		return nil, false
	}

	return products, true
}

func (srv *catalogService) storeProducts(ctx context.Context, products []*entity.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		srv.log(ctx).Warn("Failed to encode catalog for cache", slog.Any("error", err))

		return
	}
	if err := srv.cache.Set(ctx, constants.CacheKeyProductList, raw, srv.catalogTTL()); err != nil {
		srv.log(ctx).Warn("Catalog cache write failed", slog.Any("error", err))
	}
}

func (srv *catalogService) catalogTTL() time.Duration {
	if srv.cfg.Redis == nil {
		return 0
	}

	return srv.cfg.Redis.CatalogTTL
}

// GetProduct returns one product.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to get product")
	}

	return product, nil
}

// ListFeatured returns the home page carousel.
func (srv *catalogService) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = srv.cfg.Catalog.FeaturedLimit
	}

	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindFeatured(ctx, limit)
		if err != nil {
			return errors.Wrap(err, "failed to find featured products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to list featured products")
	}

	return products, nil
}

// SeedCatalog inserts the default cakes when the catalog is empty.
func (srv *catalogService) SeedCatalog(ctx context.Context) (int, error) {
	inserted := 0
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		count, err := productRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count products")
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		products := make([]*entity.Product, 0, len(defaultCakes))
		for _, cake := range defaultCakes {
			products = append(products, &entity.Product{
				ID:          uuid.New(),
				Name:        cake.name,
				Description: cake.description,
				Price:       decimal.RequireFromString(cake.price),
				ImageURL:    cake.imageURL,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
		if err := productRepo.CreateBatch(ctx, products); err != nil {
			return errors.Wrap(err, "failed to insert default products")
		}
		inserted = len(products)

		return nil
	})
	if err != nil {
		return 0, persistenceError(err, "failed to seed catalog")
	}

	if inserted > 0 {
		if err := srv.cache.Delete(ctx, constants.CacheKeyProductList); err != nil {
			srv.log(ctx).Warn("Catalog cache invalidation failed", slog.Any("error", err))
		}
		srv.log(ctx).Info("Catalog seeded", slog.Int("inserted", inserted))
	}

	return inserted, nil
}
