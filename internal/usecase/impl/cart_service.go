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

// Cart mutation labels reported to metrics.
const (
	cartOpAdd    = "add"
	cartOpUpdate = "update"
	cartOpRemove = "remove"
)

type cartService struct {
	txManager repository.TransactionManager
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem adds quantity of a product to the cart, merging with an existing line for the same product.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input usecase.AddCartItemInput) (*entity.CartLine, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if !entity.ValidLineQuantity(input.Quantity) {
		return nil, domainerrors.ErrInvalidQuantity
	}

	var line *entity.CartLine
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		// 1. The product must exist
		if _, err := repoFactory.ProductRepo().FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 2. Lock the existing line so the merged quantity is checked against a stable value
		existing, err := cartRepo.LockLineByProduct(ctx, userID, input.ProductID)
		if err != nil && !errors.Is(err, repository.ErrCartLineNotFound) {
			return errors.Wrap(err, "failed to lock cart line")
		}
		if existing != nil && !entity.ValidLineQuantity(existing.Quantity+input.Quantity) {
			return domainerrors.ErrInvalidQuantity
		}

		// 3. Insert or merge
		now := time.Now().UTC()
		if err := cartRepo.MergeLine(ctx, &entity.CartLine{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			switch {
			case errors.Is(err, repository.ErrQuantityOutOfRange):
				return domainerrors.ErrInvalidQuantity
			case errors.Is(err, repository.ErrUnknownProduct):
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to merge cart line")
		}

		// 4. Read back the stored line, which keeps the original id when merged
		merged, err := cartRepo.LockLineByProduct(ctx, userID, input.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to reload cart line")
		}
		line = merged

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to add cart item")
	}

	srv.metrics.CartMutation(cartOpAdd)
	srv.log(ctx).Info("Cart item added",
		slog.Any("user_id", userID),
		slog.Any("product_id", input.ProductID),
		slog.Int("quantity", line.Quantity),
	)

	return line, nil
}

// UpdateQuantity sets the quantity of a line. Zero or negative removes it.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, input usecase.UpdateCartItemInput) (*entity.CartLine, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if input.Quantity <= 0 {
		return nil, srv.RemoveItem(ctx, userID, lineID)
	}
	if input.Quantity > entity.MaxLineQuantity {
		return nil, domainerrors.ErrInvalidQuantity
	}

	var line *entity.CartLine
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		if err := cartRepo.UpdateQuantity(ctx, userID, lineID, input.Quantity); err != nil {
			switch {
			case errors.Is(err, repository.ErrCartLineNotFound):
				return domainerrors.ErrLineNotFound
			case errors.Is(err, repository.ErrQuantityOutOfRange):
				return domainerrors.ErrInvalidQuantity
			}

			return errors.Wrap(err, "failed to update cart line")
		}

		updated, err := cartRepo.FindLine(ctx, userID, lineID)
		if err != nil {
			return errors.Wrap(err, "failed to reload cart line")
		}
		line = updated

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to update cart item")
	}

	srv.metrics.CartMutation(cartOpUpdate)

	return line, nil
}

// RemoveItem deletes one of the user's lines.
func (srv *cartService) RemoveItem(ctx context.Context, userID, lineID uuid.UUID) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CartRepo().DeleteLine(ctx, userID, lineID); err != nil {
			if errors.Is(err, repository.ErrCartLineNotFound) {
				return domainerrors.ErrLineNotFound
			}

			return errors.Wrap(err, "failed to delete cart line")
		}

		return nil
	})
	if err != nil {
		return persistenceError(err, "failed to remove cart item")
	}

	srv.metrics.CartMutation(cartOpRemove)

	return nil
}

// ListItems returns the cart priced at current product prices.
func (srv *cartService) ListItems(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		lines, err := repoFactory.CartRepo().FindLinesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find cart lines")
		}

		items, err := joinProducts(ctx, repoFactory.ProductRepo(), lines)
		if err != nil {
			return err
		}
		cart = entity.NewCart(userID, items)

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to list cart items")
	}

	return cart, nil
}

// joinProducts pairs each line with its product. A line whose product no longer exists yields ErrProductNotFound.
func joinProducts(ctx context.Context, productRepo repository.ProductRepository, lines []*entity.CartLine) ([]*entity.CartItem, error) {
	if len(lines) == 0 {
		return []*entity.CartItem{}, nil
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart products")
	}

	items := make([]*entity.CartItem, 0, len(lines))
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, domainerrors.ErrProductNotFound
		}
		items = append(items, &entity.CartItem{Line: line, Product: product})
	}

	return items, nil
}
