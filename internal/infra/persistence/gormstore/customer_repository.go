package gormstore

import (
	"context"
	"strings"

	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/repository"
	"cakeshop/internal/errors"
	"cakeshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// Create persists a new customer. Emails are stored lower-cased.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)
	customerM.Email = normalizeEmail(customerM.Email)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.Email = customerM.Email
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindByID retrieves a customer by id.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByEmail retrieves a customer by email, case-insensitively.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)))
}

func (repo *customerRepository) findOne(query *gorm.DB) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := query.First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return toCustomerDomain(&customerM), nil
}

// UpdateProfile writes name, address and phone.
func (repo *customerRepository) UpdateProfile(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":    customer.Name,
			"address": customer.Address,
			"phone":   customer.Phone,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Address:      data.Address,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Address:      data.Address,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
