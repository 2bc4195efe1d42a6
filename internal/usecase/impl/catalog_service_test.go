package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cakeshop/config"
	"cakeshop/internal/domain/constants"
	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/repository"
	"cakeshop/internal/errors"
	mockRepo "cakeshop/internal/mocks/repository"
	mockService "cakeshop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	repos   *repoMocks
	cache   *mockService.MockCatalogCache
	metrics *mockService.MockMetricsRecorder
	cfg     *config.Config
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	return &catalogFixture{
		repos:   newRepoMocks(t),
		cache:   mockService.NewMockCatalogCache(t),
		metrics: mockService.NewMockMetricsRecorder(t),
		cfg:     testConfig(),
	}
}

func (f *catalogFixture) service(txManager repository.TransactionManager) *catalogService {
	return NewCatalogService(CatalogServiceParams{
		TxManager: txManager,
		Cache:     f.cache,
		Metrics:   f.metrics,
		Config:    f.cfg,
		Logger:    discardLogger(),
	}).(*catalogService)
}

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{ID: uuid.New(), Name: "漆黑可可樂章", Price: decimal.RequireFromString("550.00"), ImageURL: "/images/3.jpg"},
		{ID: uuid.New(), Name: "荔枝茶語初夏風", Price: decimal.RequireFromString("620.00"), ImageURL: "/images/2.jpg"},
	}
}

func TestCatalogService_ListProducts_CacheHit(t *testing.T) {
	f := newCatalogFixture(t)
	srv := f.service(mockRepo.NewMockTransactionManager(t))
	ctx := context.Background()

	raw, err := json.Marshal(sampleProducts())
	require.NoError(t, err)
	f.cache.EXPECT().Get(ctx, constants.CacheKeyProductList).Return(raw, true, nil)
	f.metrics.EXPECT().CacheLookup(true).Return()

	products, err := srv.ListProducts(ctx)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "漆黑可可樂章", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("550")))
}

func TestCatalogService_ListProducts_CacheMiss(t *testing.T) {
	f := newCatalogFixture(t)
	f.cfg.Redis = &config.RedisConfig{CatalogTTL: 5 * time.Minute}
	srv := f.service(f.repos.txManager(t))
	ctx := context.Background()
	products := sampleProducts()

	f.cache.EXPECT().Get(ctx, constants.CacheKeyProductList).Return(nil, false, nil)
	f.metrics.EXPECT().CacheLookup(false).Return()
	f.repos.products.EXPECT().FindAll(ctx).Return(products, nil)
	f.cache.EXPECT().Set(ctx, constants.CacheKeyProductList, mock.Anything, 5*time.Minute).Return(nil)

	got, err := srv.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_ListProducts_CacheErrorFallsBack(t *testing.T) {
	f := newCatalogFixture(t)
	srv := f.service(f.repos.txManager(t))
	ctx := context.Background()

	f.cache.EXPECT().Get(ctx, constants.CacheKeyProductList).Return(nil, false, errors.New("redis down"))
	f.repos.products.EXPECT().FindAll(ctx).Return(sampleProducts(), nil)
	f.cache.EXPECT().Set(ctx, constants.CacheKeyProductList, mock.Anything, time.Duration(0)).Return(errors.New("redis down"))

	got, err := srv.ListProducts(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_ListProducts_StorageFailure(t *testing.T) {
	f := newCatalogFixture(t)
	srv := f.service(f.repos.txManager(t))
	ctx := context.Background()

	f.cache.EXPECT().Get(ctx, constants.CacheKeyProductList).Return(nil, false, nil)
	f.metrics.EXPECT().CacheLookup(false).Return()
	f.repos.products.EXPECT().FindAll(ctx).Return(nil, errors.New("connection reset"))

	_, err := srv.ListProducts(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailure)
}

func TestCatalogService_GetProduct(t *testing.T) {
	f := newCatalogFixture(t)
	srv := f.service(f.repos.txManager(t))
	ctx := context.Background()
	product := sampleProducts()[0]
	missing := uuid.New()

	f.repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	f.repos.products.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrProductNotFound)

	got, err := srv.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product, got)

	_, err = srv.GetProduct(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListFeatured(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default limit", limit: 0, wantLimit: 5},
		{name: "explicit limit", limit: 3, wantLimit: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCatalogFixture(t)
			srv := f.service(f.repos.txManager(t))
			ctx := context.Background()

			f.repos.products.EXPECT().FindFeatured(ctx, tt.wantLimit).Return(sampleProducts(), nil)

			got, err := srv.ListFeatured(ctx, tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, 2)
		})
	}
}

func TestCatalogService_SeedCatalog_EmptyCatalog(t *testing.T) {
	f := newCatalogFixture(t)
	srv := f.service(f.repos.txManager(t))
	ctx := context.Background()

	f.repos.products.EXPECT().Count(ctx).Return(int64(0), nil)
	f.repos.products.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(products []*entity.Product) bool {
			if len(products) != 5 {
				return false
			}
			for _, p := range products {
				if p.ID == uuid.Nil || !p.HasImage() || !p.PriceInRange() {
					return false
				}
			}

			return products[0].Name == "漆黑可可樂章" && products[0].Price.Equal(decimal.NewFromInt(550))
		})).
		Return(nil)
	f.cache.EXPECT().Delete(ctx, constants.CacheKeyProductList).Return(nil)

	inserted, err := srv.SeedCatalog(ctx)

	require.NoError(t, err)
	assert.Equal(t, 5, inserted)
}

func TestCatalogService_SeedCatalog_AlreadySeeded(t *testing.T) {
	f := newCatalogFixture(t)
	srv := f.service(f.repos.txManager(t))
	ctx := context.Background()

	f.repos.products.EXPECT().Count(ctx).Return(int64(5), nil)

	inserted, err := srv.SeedCatalog(ctx)

	require.NoError(t, err)
	assert.Zero(t, inserted)
}
