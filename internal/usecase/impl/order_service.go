package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cakeshop/internal/delivery/context"
	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/repository"
	"cakeshop/internal/domain/service"
	"cakeshop/internal/errors"
	"cakeshop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderService struct {
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns the user's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one of the user's orders with its lines.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByIDForUser(ctx, userID, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to get order")
	}

	return order, nil
}

// GenerateOrderQR renders the pickup code of an owned order.
func (srv *orderService) GenerateOrderQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// AdvanceStatus moves an order forward along its status machine.
func (srv *orderService) AdvanceStatus(ctx context.Context, orderID uuid.UUID, input usecase.AdvanceOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.NewValidationError(map[string]string{"status": "訂單狀態不正確"})
	}

	var order *entity.Order
	var previous entity.OrderStatus
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		locked, err := orderRepo.LockByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}

		if !locked.Status.CanTransitionTo(input.Status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
				"from": locked.Status.String(),
				"to":   input.Status.String(),
			})
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, input.Status); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		previous = locked.Status
		locked.Status = input.Status
		locked.UpdatedAt = time.Now().UTC()
		order = locked

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to advance order status")
	}

	srv.log(ctx).Info("Order status advanced",
		slog.Any("order_id", orderID),
		slog.String("from", previous.String()),
		slog.String("to", order.Status.String()),
	)

	return order, nil
}
