package impl

import (
	"context"
	"testing"

	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/repository"
	"cakeshop/internal/errors"
	mockRepo "cakeshop/internal/mocks/repository"
	mockService "cakeshop/internal/mocks/service"
	"cakeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCartService(txManager repository.TransactionManager, metrics *mockService.MockMetricsRecorder) usecase.CartUsecase {
	return NewCartService(CartServiceParams{
		TxManager: txManager,
		Metrics:   metrics,
		Logger:    discardLogger(),
	})
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	srv := newTestCartService(mockRepo.NewMockTransactionManager(t), mockService.NewMockMetricsRecorder(t))

	for _, q := range []int{0, -1, 101} {
		_, err := srv.AddItem(context.Background(), uuid.New(), usecase.AddCartItemInput{ProductID: uuid.New(), Quantity: q})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity, "quantity %d", q)
	}
}

func TestCartService_AddItem_Unauthenticated(t *testing.T) {
	srv := newTestCartService(mockRepo.NewMockTransactionManager(t), mockService.NewMockMetricsRecorder(t))

	_, err := srv.AddItem(context.Background(), uuid.Nil, usecase.AddCartItemInput{ProductID: uuid.New(), Quantity: 1})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	repos := newRepoMocks(t)
	metrics := mockService.NewMockMetricsRecorder(t)
	srv := newTestCartService(repos.txManager(t), metrics)

	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()
	stored := &entity.CartLine{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 2}

	repos.products.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	repos.carts.EXPECT().LockLineByProduct(ctx, userID, productID).Return(nil, repository.ErrCartLineNotFound).Once()
	repos.carts.EXPECT().
		MergeLine(ctx, mock.MatchedBy(func(line *entity.CartLine) bool {
			return line.UserID == userID && line.ProductID == productID && line.Quantity == 2 && line.ID != uuid.Nil
		})).
		Return(nil)
	repos.carts.EXPECT().LockLineByProduct(ctx, userID, productID).Return(stored, nil).Once()
	metrics.EXPECT().CartMutation("add").Return()

	line, err := srv.AddItem(ctx, userID, usecase.AddCartItemInput{ProductID: productID, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, stored, line)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	repos := newRepoMocks(t)
	metrics := mockService.NewMockMetricsRecorder(t)
	srv := newTestCartService(repos.txManager(t), metrics)

	ctx := context.Background()
	userID, productID, lineID := uuid.New(), uuid.New(), uuid.New()
	existing := &entity.CartLine{ID: lineID, UserID: userID, ProductID: productID, Quantity: 3}
	merged := &entity.CartLine{ID: lineID, UserID: userID, ProductID: productID, Quantity: 5}

	repos.products.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	repos.carts.EXPECT().LockLineByProduct(ctx, userID, productID).Return(existing, nil).Once()
	repos.carts.EXPECT().MergeLine(ctx, mock.AnythingOfType("*entity.CartLine")).Return(nil)
	repos.carts.EXPECT().LockLineByProduct(ctx, userID, productID).Return(merged, nil).Once()
	metrics.EXPECT().CartMutation("add").Return()

	line, err := srv.AddItem(ctx, userID, usecase.AddCartItemInput{ProductID: productID, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, lineID, line.ID)
	assert.Equal(t, 5, line.Quantity)
}

func TestCartService_AddItem_MergeExceedsLimit(t *testing.T) {
	repos := newRepoMocks(t)
	srv := newTestCartService(repos.txManager(t), mockService.NewMockMetricsRecorder(t))

	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	repos.products.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	repos.carts.EXPECT().LockLineByProduct(ctx, userID, productID).
		Return(&entity.CartLine{ID: uuid.New(), Quantity: 99}, nil)

	_, err := srv.AddItem(ctx, userID, usecase.AddCartItemInput{ProductID: productID, Quantity: 2})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	repos := newRepoMocks(t)
	srv := newTestCartService(repos.txManager(t), mockService.NewMockMetricsRecorder(t))

	ctx := context.Background()
	productID := uuid.New()
	repos.products.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := srv.AddItem(ctx, uuid.New(), usecase.AddCartItemInput{ProductID: productID, Quantity: 1})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	userID, lineID := uuid.New(), uuid.New()

	t.Run("sets quantity", func(t *testing.T) {
		repos := newRepoMocks(t)
		metrics := mockService.NewMockMetricsRecorder(t)
		srv := newTestCartService(repos.txManager(t), metrics)

		repos.carts.EXPECT().UpdateQuantity(ctx, userID, lineID, 7).Return(nil)
		repos.carts.EXPECT().FindLine(ctx, userID, lineID).Return(&entity.CartLine{ID: lineID, Quantity: 7}, nil)
		metrics.EXPECT().CartMutation("update").Return()

		line, err := srv.UpdateQuantity(ctx, userID, lineID, usecase.UpdateCartItemInput{Quantity: 7})
		require.NoError(t, err)
		assert.Equal(t, 7, line.Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		repos := newRepoMocks(t)
		metrics := mockService.NewMockMetricsRecorder(t)
		srv := newTestCartService(repos.txManager(t), metrics)

		repos.carts.EXPECT().DeleteLine(ctx, userID, lineID).Return(nil)
		metrics.EXPECT().CartMutation("remove").Return()

		line, err := srv.UpdateQuantity(ctx, userID, lineID, usecase.UpdateCartItemInput{Quantity: 0})
		require.NoError(t, err)
		assert.Nil(t, line)
	})

	t.Run("above limit", func(t *testing.T) {
		srv := newTestCartService(mockRepo.NewMockTransactionManager(t), mockService.NewMockMetricsRecorder(t))

		_, err := srv.UpdateQuantity(ctx, userID, lineID, usecase.UpdateCartItemInput{Quantity: 101})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	})

	t.Run("foreign line", func(t *testing.T) {
		repos := newRepoMocks(t)
		srv := newTestCartService(repos.txManager(t), mockService.NewMockMetricsRecorder(t))

		repos.carts.EXPECT().UpdateQuantity(ctx, userID, lineID, 3).Return(repository.ErrCartLineNotFound)

		_, err := srv.UpdateQuantity(ctx, userID, lineID, usecase.UpdateCartItemInput{Quantity: 3})
		assert.ErrorIs(t, err, domainerrors.ErrLineNotFound)
	})
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	repos := newRepoMocks(t)
	srv := newTestCartService(repos.txManager(t), mockService.NewMockMetricsRecorder(t))

	ctx := context.Background()
	userID, lineID := uuid.New(), uuid.New()
	repos.carts.EXPECT().DeleteLine(ctx, userID, lineID).Return(repository.ErrCartLineNotFound)

	err := srv.RemoveItem(ctx, userID, lineID)

	assert.ErrorIs(t, err, domainerrors.ErrLineNotFound)
}

func TestCartService_RemoveItem_StorageFailure(t *testing.T) {
	repos := newRepoMocks(t)
	srv := newTestCartService(repos.txManager(t), mockService.NewMockMetricsRecorder(t))

	ctx := context.Background()
	userID, lineID := uuid.New(), uuid.New()
	repos.carts.EXPECT().DeleteLine(ctx, userID, lineID).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("deadlock"), "failed to delete cart line"))

	err := srv.RemoveItem(ctx, userID, lineID)

	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailure)
}

func TestCartService_ListItems(t *testing.T) {
	repos := newRepoMocks(t)
	srv := newTestCartService(repos.txManager(t), mockService.NewMockMetricsRecorder(t))

	ctx := context.Background()
	userID := uuid.New()
	cocoa := &entity.Product{ID: uuid.New(), Name: "漆黑可可樂章", Price: decimal.RequireFromString("550.00")}
	lychee := &entity.Product{ID: uuid.New(), Name: "荔枝茶語初夏風", Price: decimal.RequireFromString("620.00")}
	lines := []*entity.CartLine{
		{ID: uuid.New(), UserID: userID, ProductID: cocoa.ID, Quantity: 2},
		{ID: uuid.New(), UserID: userID, ProductID: lychee.ID, Quantity: 1},
	}

	repos.carts.EXPECT().FindLinesByUser(ctx, userID).Return(lines, nil)
	repos.products.EXPECT().FindByIDs(ctx, []uuid.UUID{cocoa.ID, lychee.ID}).
		Return(map[uuid.UUID]*entity.Product{cocoa.ID: cocoa, lychee.ID: lychee}, nil)

	cart, err := srv.ListItems(ctx, userID)

	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("1720.00")), cart.Total.String())
	assert.Equal(t, 3, cart.ItemCount)
	assert.Equal(t, cocoa, cart.Items[0].Product)
}

func TestCartService_ListItems_Empty(t *testing.T) {
	repos := newRepoMocks(t)
	srv := newTestCartService(repos.txManager(t), mockService.NewMockMetricsRecorder(t))

	ctx := context.Background()
	userID := uuid.New()
	repos.carts.EXPECT().FindLinesByUser(ctx, userID).Return([]*entity.CartLine{}, nil)

	cart, err := srv.ListItems(ctx, userID)

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total.IsZero())
}
