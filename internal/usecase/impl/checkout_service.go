package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "cakeshop/internal/delivery/context"
	"cakeshop/internal/domain/constants"
	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/repository"
	"cakeshop/internal/domain/service"
	"cakeshop/internal/errors"
	"cakeshop/internal/usecase"
	"cakeshop/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// checkoutLabels names the checkout form fields in validation messages.
var checkoutLabels = util.FieldLabels{
	"recipient_name":   "收件人姓名",
	"shipping_address": "收貨地址",
	"recipient_phone":  "聯絡電話",
}

type checkoutService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	validate  *validator.Validate
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		validate:  util.NewValidator(),
		logger:    params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PrepareCheckout returns the cart with recipient fields prefilled from the profile.
func (srv *checkoutService) PrepareCheckout(ctx context.Context, userID uuid.UUID) (*usecase.CheckoutPreview, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	preview := &usecase.CheckoutPreview{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		lines, err := repoFactory.CartRepo().FindLinesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find cart lines")
		}
		items, err := joinProducts(ctx, repoFactory.ProductRepo(), lines)
		if err != nil {
			return err
		}
		preview.Cart = entity.NewCart(userID, items)
		if preview.Cart.IsEmpty() {
			return domainerrors.ErrEmptyCart
		}

		// A customer without a profile row still gets an empty form.
		customer, err := repoFactory.CustomerRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find customer")
		}
		preview.Defaults = usecase.CheckoutInput{
			RecipientName:   customer.Name,
			ShippingAddress: customer.Address,
			RecipientPhone:  customer.Phone,
		}

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to prepare checkout")
	}

	return preview, nil
}

// PlaceOrder converts the cart into an order in a single transaction.
func (srv *checkoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, input usecase.CheckoutInput) (*entity.Order, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	input = usecase.CheckoutInput{
		RecipientName:   strings.TrimSpace(input.RecipientName),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		RecipientPhone:  strings.TrimSpace(input.RecipientPhone),
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		// 1. Lock the cart lines; concurrent checkouts of the same cart serialize here
		lines, err := cartRepo.LockLinesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to lock cart lines")
		}
		if len(lines) == 0 {
			return domainerrors.ErrEmptyCart
		}

		// 2. Recipient details
		if err := srv.validateInput(input); err != nil {
			return err
		}

		// 3. Price against the current catalog
		items, err := joinProducts(ctx, repoFactory.ProductRepo(), lines)
		if err != nil {
			return err
		}
		order = newPendingOrder(userID, input, items)

		// 4. Persist the snapshot
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// 5. Clear exactly the lines that were priced
		lineIDs := make([]uuid.UUID, 0, len(lines))
		for _, line := range lines {
			lineIDs = append(lineIDs, line.ID)
		}
		deleted, err := cartRepo.DeleteLines(ctx, userID, lineIDs)
		if err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}
		if deleted != int64(len(lineIDs)) {
			return domainerrors.NewDatabaseExecuteError(
				errors.Errorf("cleared %d of %d cart lines", deleted, len(lineIDs)),
				"cart changed during checkout",
			)
		}

		return nil
	})
	if err != nil {
		srv.recordFailure(ctx, userID, err)

		return nil, persistenceError(err, "failed to place order")
	}

	srv.metrics.OrderPlaced(order.TotalAmount)
	srv.log(ctx).Info("Order placed",
		slog.Any("user_id", userID),
		slog.Any("order_id", order.ID),
		slog.String("total_amount", order.TotalAmount.StringFixed(2)),
		slog.Int("lines", len(order.Lines)),
	)
	srv.publishOrderPlaced(ctx, order)

	return order, nil
}

func (srv *checkoutService) validateInput(input usecase.CheckoutInput) error {
	err := srv.validate.Struct(input)
	if err == nil {
		return nil
	}

	fields, ok := util.FieldMessages(err, checkoutLabels)
	if !ok {
		return errors.Wrap(err, "failed to validate checkout input")
	}

	return domainerrors.NewValidationError(fields)
}

func newPendingOrder(userID uuid.UUID, input usecase.CheckoutInput, items []*entity.CartItem) *entity.Order {
	now := time.Now().UTC()
	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Status:          entity.OrderStatusPending,
		TotalAmount:     decimal.Zero,
		ShippingAddress: input.ShippingAddress,
		RecipientName:   input.RecipientName,
		RecipientPhone:  input.RecipientPhone,
		Lines:           make([]*entity.OrderLine, 0, len(items)),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, item := range items {
		order.Lines = append(order.Lines, &entity.OrderLine{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Line.Quantity,
			UnitPrice:   item.Product.Price,
		})
	}
	order.TotalAmount = order.LinesTotal()

	return order
}

func (srv *checkoutService) recordFailure(ctx context.Context, userID uuid.UUID, err error) {
	reason := domainerrors.ErrPersistenceFailure.ErrorCode()
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		reason = appErr.ErrorCode()
	}
	srv.metrics.CheckoutFailed(reason)

	if reason == domainerrors.ErrPersistenceFailure.ErrorCode() {
		srv.log(ctx).Error("Checkout failed", slog.Any("user_id", userID), slog.Any("error", err))
	}
}

// publishOrderPlaced announces a committed order. The order stands even if publishing fails.
func (srv *checkoutService) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	event := &service.OrderPlacedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventType:   constants.EventTypeOrderPlaced,
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		TotalAmount: order.TotalAmount.StringFixed(2),
		Lines:       make([]service.OrderEventLine, 0, len(order.Lines)),
		PlacedAt:    order.CreatedAt,
	}
	for _, line := range order.Lines {
		event.Lines = append(event.Lines, service.OrderEventLine{
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
		})
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order placed event",
			slog.Any("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}
