package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cakeshop/config"
	"cakeshop/internal/domain/repository"
	mockRepo "cakeshop/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{FeaturedLimit: 5},
		Auth:    &config.AuthConfig{AccessTokenTTL: time.Hour, AdminEmails: []string{"owner@cakeshop.test"}},
	}
}

// repoMocks wires one mock per repository behind a mock factory.
type repoMocks struct {
	factory   *mockRepo.MockRepositoryFactory
	products  *mockRepo.MockProductRepository
	carts     *mockRepo.MockCartRepository
	orders    *mockRepo.MockOrderRepository
	customers *mockRepo.MockCustomerRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	m := &repoMocks{
		factory:   mockRepo.NewMockRepositoryFactory(t),
		products:  mockRepo.NewMockProductRepository(t),
		carts:     mockRepo.NewMockCartRepository(t),
		orders:    mockRepo.NewMockOrderRepository(t),
		customers: mockRepo.NewMockCustomerRepository(t),
	}
	m.factory.EXPECT().ProductRepo().Return(m.products).Maybe()
	m.factory.EXPECT().CartRepo().Return(m.carts).Maybe()
	m.factory.EXPECT().OrderRepo().Return(m.orders).Maybe()
	m.factory.EXPECT().CustomerRepo().Return(m.customers).Maybe()

	return m
}

// txManager returns a transaction manager mock that runs every unit of work against the mocks.
func (m *repoMocks) txManager(t *testing.T) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})

	return txManager
}
