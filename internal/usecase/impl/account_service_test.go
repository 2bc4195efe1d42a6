package impl

import (
	"context"
	"testing"

	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/repository"
	mockService "cakeshop/internal/mocks/service"
	"cakeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	repos  *repoMocks
	hasher *mockService.MockPasswordHasher
	tokens *mockService.MockTokenService
	srv    usecase.AccountUsecase
}

func newAccountFixture(t *testing.T) *accountFixture {
	f := &accountFixture{
		repos:  newRepoMocks(t),
		hasher: mockService.NewMockPasswordHasher(t),
		tokens: mockService.NewMockTokenService(t),
	}
	f.srv = NewAccountService(AccountServiceParams{
		TxManager:    f.repos.txManager(t),
		Hasher:       f.hasher,
		TokenService: f.tokens,
		Config:       testConfig(),
		Logger:       discardLogger(),
	})

	return f
}

func TestAccountService_Register(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	f.repos.customers.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.Email == "amy@cakeshop.test" && c.PasswordHash == "hashed" && c.ID != uuid.Nil
		})).
		Return(nil)

	customer, err := f.srv.Register(ctx, usecase.RegisterInput{
		Email:    "  Amy@CakeShop.test ",
		Password: "s3cret-pass",
		Name:     "Amy",
	})

	require.NoError(t, err)
	assert.Equal(t, "amy@cakeshop.test", customer.Email)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	f.repos.customers.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := f.srv.Register(ctx, usecase.RegisterInput{Email: "amy@cakeshop.test", Password: "s3cret-pass", Name: "Amy"})

	assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)
}

func TestAccountService_Login(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		wantRoles []string
	}{
		{name: "customer", email: "amy@cakeshop.test", wantRoles: []string{"customer"}},
		{name: "admin", email: "owner@cakeshop.test", wantRoles: []string{"customer", "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t)
			ctx := context.Background()
			customer := &entity.Customer{ID: uuid.New(), Email: tt.email, PasswordHash: "hashed"}

			f.repos.customers.EXPECT().FindByEmail(ctx, tt.email).Return(customer, nil)
			f.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
			f.tokens.EXPECT().GenerateAccessToken(customer.ID, tt.wantRoles).Return("signed.jwt.token", nil)

			out, err := f.srv.Login(ctx, usecase.LoginInput{Email: tt.email, Password: "s3cret-pass"})

			require.NoError(t, err)
			assert.Equal(t, "signed.jwt.token", out.AccessToken)
			assert.Equal(t, "Bearer", out.TokenType)
			assert.EqualValues(t, 3600, out.ExpiresIn)
		})
	}
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		f := newAccountFixture(t)
		ctx := context.Background()
		f.repos.customers.EXPECT().FindByEmail(ctx, "ghost@cakeshop.test").Return(nil, repository.ErrCustomerNotFound)
		f.hasher.EXPECT().Hash(mock.Anything).Return("dummy-hash", nil)
		f.hasher.EXPECT().Check("whatever", "dummy-hash").Return(false)

		_, err := f.srv.Login(ctx, usecase.LoginInput{Email: "ghost@cakeshop.test", Password: "whatever"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email pays the hash cost with a dummy hash prepared once", func(t *testing.T) {
		f := newAccountFixture(t)
		ctx := context.Background()
		f.repos.customers.EXPECT().FindByEmail(ctx, "ghost@cakeshop.test").Return(nil, repository.ErrCustomerNotFound).Twice()
		f.hasher.EXPECT().Hash(mock.Anything).Return("dummy-hash", nil).Once()
		f.hasher.EXPECT().Check(mock.Anything, "dummy-hash").Return(false).Twice()

		for _, password := range []string{"first", "second"} {
			_, err := f.srv.Login(ctx, usecase.LoginInput{Email: "ghost@cakeshop.test", Password: password})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAccountFixture(t)
		ctx := context.Background()
		f.repos.customers.EXPECT().FindByEmail(ctx, "amy@cakeshop.test").
			Return(&entity.Customer{ID: uuid.New(), PasswordHash: "hashed"}, nil)
		f.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := f.srv.Login(ctx, usecase.LoginInput{Email: "amy@cakeshop.test", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.repos.customers.EXPECT().FindByID(ctx, userID).Return(&entity.Customer{ID: userID, Name: "Old"}, nil)
	f.repos.customers.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.Name == "王小明" && c.Address == "台北市信義區" && c.Phone == "0912345678"
		})).
		Return(nil)

	customer, err := f.srv.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{
		Name:    " 王小明 ",
		Address: "台北市信義區",
		Phone:   "0912345678",
	})

	require.NoError(t, err)
	assert.Equal(t, "王小明", customer.Name)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.repos.customers.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrCustomerNotFound)

	_, err := f.srv.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
