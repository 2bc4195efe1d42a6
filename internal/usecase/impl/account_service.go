package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"cakeshop/config"
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

const (
	tokenTypeBearer = "Bearer"

	// dummyPassword is hashed once so unknown emails pay the same hashing cost as wrong passwords.
	dummyPassword = "cakeshop-unknown-account"
)

type accountService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	cfg          *config.Config
	logger       *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		cfg:          params.Config,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Customer, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now().UTC()
	customer := &entity.Customer{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Name:         strings.TrimSpace(input.Name),
		Address:      strings.TrimSpace(input.Address),
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().Create(ctx, customer); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrCustomerAlreadyExists
			}

			return errors.Wrap(err, "failed to create customer")
		}

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to register customer")
	}

	srv.log(ctx).Info("Customer registered", slog.Any("user_id", customer.ID))

	return customer, nil
}

// Login verifies credentials and issues an access token.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	var customer *entity.Customer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerRepo().FindByEmail(ctx, strings.TrimSpace(input.Email))
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				srv.checkDummyPassword(ctx, input.Password)

				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find customer")
		}
		customer = found

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to log in")
	}

	if !srv.hasher.Check(input.Password, customer.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.Any("user_id", customer.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	roles := entity.Roles{entity.RoleCustomer}
	if srv.cfg.IsAdminEmail(customer.Email) {
		roles = append(roles, entity.RoleAdmin)
	}

	token, err := srv.tokenService.GenerateAccessToken(customer.ID, roles.Strings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.cfg.Auth.AccessTokenTTL.Seconds()),
		Customer:    customer,
	}, nil
}

// checkDummyPassword runs a hash comparison that always fails so the unknown-email
// path costs as much as a wrong password.
func (srv *accountService) checkDummyPassword(ctx context.Context, password string) {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to prepare login dummy hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})
	if srv.dummyHash == "" {
		return
	}

	srv.hasher.Check(password, srv.dummyHash)
}

// GetProfile returns the customer's profile.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var customer *entity.Customer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound
			}

			return errors.Wrap(err, "failed to find customer")
		}
		customer = found

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to get profile")
	}

	return customer, nil
}

// UpdateProfile replaces the editable profile fields.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Customer, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var customer *entity.Customer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		found, err := customerRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound
			}

			return errors.Wrap(err, "failed to find customer")
		}

		found.Name = strings.TrimSpace(input.Name)
		found.Address = strings.TrimSpace(input.Address)
		found.Phone = strings.TrimSpace(input.Phone)
		found.UpdatedAt = time.Now().UTC()

		if err := customerRepo.UpdateProfile(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update customer profile")
		}
		customer = found

		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "failed to update profile")
	}

	return customer, nil
}
