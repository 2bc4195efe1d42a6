package gormstore

import (
	"context"

	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/repository"
	"cakeshop/internal/errors"
	"cakeshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row, then its lines. Callers run it inside txManager.Execute
// so both inserts commit together.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	db := repo.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	if len(orderM.Lines) > 0 {
		if err := db.Create(&orderM.Lines).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create order lines")
		}
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByUser returns the user's orders without lines, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindByIDForUser returns the order with its lines when the user owns it.
// A foreign order is reported exactly like a missing one.
func (repo *orderRepository) FindByIDForUser(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no ASC")
		}).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// LockByID returns the order row under a FOR UPDATE lock.
func (repo *orderRepository) LockByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", orderID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateStatus sets the order status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          entity.OrderStatus(data.Status),
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		RecipientName:   data.RecipientName,
		RecipientPhone:  data.RecipientPhone,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if len(data.Lines) > 0 {
		order.Lines = make([]*entity.OrderLine, 0, len(data.Lines))
		for i := range data.Lines {
			lineM := &data.Lines[i]
			order.Lines = append(order.Lines, &entity.OrderLine{
				ID:          lineM.ID,
				OrderID:     lineM.OrderID,
				ProductID:   lineM.ProductID,
				ProductName: lineM.ProductName,
				Quantity:    lineM.Quantity,
				UnitPrice:   lineM.UnitPrice,
			})
		}
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          string(data.Status),
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		RecipientName:   data.RecipientName,
		RecipientPhone:  data.RecipientPhone,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Lines:           make([]model.OrderLineModel, 0, len(data.Lines)),
	}

	for i, line := range data.Lines {
		orderM.Lines = append(orderM.Lines, model.OrderLineModel{
			ID:          line.ID,
			OrderID:     data.ID,
			LineNo:      i + 1,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		})
	}

	return orderM
}
