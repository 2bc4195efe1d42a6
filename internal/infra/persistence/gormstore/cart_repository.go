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

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindLinesByUser returns the user's lines, oldest first.
func (repo *cartRepository) FindLinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	return repo.findLinesByUser(repo.db.WithContext(ctx), userID)
}

// LockLinesByUser returns the user's lines with FOR UPDATE row locks.
func (repo *cartRepository) LockLinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	return repo.findLinesByUser(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (repo *cartRepository) findLinesByUser(db *gorm.DB, userID uuid.UUID) ([]*entity.CartLine, error) {
	var lineModels []*model.CartLineModel

	if err := db.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&lineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cart lines by user")
	}

	lines := make([]*entity.CartLine, 0, len(lineModels))
	for _, lineM := range lineModels {
		lines = append(lines, toCartLineDomain(lineM))
	}

	return lines, nil
}

// LockLineByProduct returns the user's line for a product with a FOR UPDATE row lock.
func (repo *cartRepository) LockLineByProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartLine, error) {
	var lineM model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line by product")
	}

	return toCartLineDomain(&lineM), nil
}

// FindLine returns one of the user's lines.
func (repo *cartRepository) FindLine(ctx context.Context, userID, lineID uuid.UUID) (*entity.CartLine, error) {
	var lineM model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}

	return toCartLineDomain(&lineM), nil
}

// MergeLine inserts the line or, when the user already has the product, adds to its quantity.
func (repo *cartRepository) MergeLine(ctx context.Context, line *entity.CartLine) error {
	lineM := fromCartLineDomain(line)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_lines.quantity + excluded.quantity"),
				"updated_at": gorm.Expr("excluded.updated_at"),
			}),
		}).
		Create(lineM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return repository.ErrQuantityOutOfRange
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUnknownProduct
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to merge cart line")
	}

	return nil
}

// UpdateQuantity sets the quantity of one of the user's lines.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("id = ? AND user_id = ?", lineID, userID).
		Update("quantity", quantity)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrQuantityOutOfRange
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart line quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteLine removes one of the user's lines.
func (repo *cartRepository) DeleteLine(ctx context.Context, userID, lineID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		Delete(&model.CartLineModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteLines removes exactly the listed lines of the user.
func (repo *cartRepository) DeleteLines(ctx context.Context, userID uuid.UUID, lineIDs []uuid.UUID) (int64, error) {
	if len(lineIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, lineIDs).
		Delete(&model.CartLineModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart lines")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toCartLineDomain(data *model.CartLineModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	return &entity.CartLine{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartLineDomain(data *entity.CartLine) *model.CartLineModel {
	if data == nil {
		return nil
	}

	return &model.CartLineModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
