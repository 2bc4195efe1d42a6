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
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindAll returns every product ordered by name.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return toProductDomainList(productModels), nil
}

// FindByID returns one product or ErrProductNotFound.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs returns the existing products among ids, keyed by id.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	products := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	for _, productM := range productModels {
		products[productM.ID] = toProductDomain(productM)
	}

	return products, nil
}

// FindFeatured returns up to limit products that have an image, shuffled by the database.
func (repo *productRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	// RANDOM() exists in both PostgreSQL and SQLite.
	if err := repo.db.WithContext(ctx).
		Where("image_url IS NOT NULL AND image_url <> ''").
		Order("RANDOM()").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find featured products")
	}

	return toProductDomainList(productModels), nil
}

// Count returns the number of products.
func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// CreateBatch inserts products.
func (repo *productRepository) CreateBatch(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	productModels := make([]*model.ProductModel, 0, len(products))
	for _, product := range products {
		if !product.PriceInRange() {
			return errors.Wrapf(repository.ErrPriceOutOfRange, "product %q priced %s", product.Name, product.Price.String())
		}
		productModels = append(productModels, fromProductDomain(product))
	}

	if err := repo.db.WithContext(ctx).Create(&productModels).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return errors.WithStack(repository.ErrPriceOutOfRange)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create products")
	}

	for i, productM := range productModels {
		products[i].CreatedAt = productM.CreatedAt
		products[i].UpdatedAt = productM.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomainList(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
