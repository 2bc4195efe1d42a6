package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	mockusecase "cakeshop/internal/mocks/usecase"
	"cakeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountServer(t *testing.T, userID uuid.UUID) (*testServer, *mockusecase.MockAccountUsecase) {
	t.Helper()

	accountUC := mockusecase.NewMockAccountUsecase(t)
	srv := newTestServer(t, userID)
	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC})

	srv.e.POST("/auth/register", h.Register)
	srv.e.POST("/auth/login", h.Login)
	profile := srv.e.Group("/api/v1/profile", srv.auth.Authenticate)
	profile.GET("", h.GetProfile)
	profile.PUT("", h.UpdateProfile)

	return srv, accountUC
}

func TestAccountHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mockusecase.MockAccountUsecase)
		wantStatus int
		wantCode   string
		wantFields []string
	}{
		{
			name: "registered",
			body: `{"email":"amy@example.com","password":"s3cretpass","name":"Amy"}`,
			setup: func(m *mockusecase.MockAccountUsecase) {
				m.EXPECT().Register(mock.Anything, usecase.RegisterInput{Email: "amy@example.com", Password: "s3cretpass", Name: "Amy"}).
					Return(&entity.Customer{ID: uuid.New(), Email: "amy@example.com", Name: "Amy"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "short password and bad email",
			body:       `{"email":"nope","password":"short","name":"Amy"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantFields: []string{"email", "password"},
		},
		{
			name:       "bad phone",
			body:       `{"email":"amy@example.com","password":"s3cretpass","name":"Amy","phone":"abc"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantFields: []string{"phone"},
		},
		{
			name: "duplicate email",
			body: `{"email":"amy@example.com","password":"s3cretpass","name":"Amy"}`,
			setup: func(m *mockusecase.MockAccountUsecase) {
				m.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrCustomerAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "CUSTOMER_ALREADY_EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, accountUC := newAccountServer(t, uuid.New())
			if tt.setup != nil {
				tt.setup(accountUC)
			}

			rec, env := srv.do(t, http.MethodPost, "/auth/register", "", tt.body)
			if tt.wantCode == "" {
				assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
				assert.NotContains(t, rec.Body.String(), "password")

				return
			}
			assertErrorCode(t, rec, env, tt.wantStatus, tt.wantCode)
			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, fieldNames(env))
			}
		})
	}
}

func TestAccountHandler_Login(t *testing.T) {
	t.Run("token issued", func(t *testing.T) {
		srv, accountUC := newAccountServer(t, uuid.New())
		accountUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "amy@example.com", Password: "s3cretpass"}).
			Return(&usecase.LoginOutput{AccessToken: "jwt", TokenType: "Bearer", ExpiresIn: 3600}, nil)

		rec, env := srv.do(t, http.MethodPost, "/auth/login", "", `{"email":"amy@example.com","password":"s3cretpass"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var out usecase.LoginOutput
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Equal(t, "jwt", out.AccessToken)
		assert.Equal(t, "Bearer", out.TokenType)
	})

	t.Run("wrong password", func(t *testing.T) {
		srv, accountUC := newAccountServer(t, uuid.New())
		accountUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec, env := srv.do(t, http.MethodPost, "/auth/login", "", `{"email":"amy@example.com","password":"wrong-pass"}`)
		assertErrorCode(t, rec, env, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	})
}

func TestAccountHandler_Profile(t *testing.T) {
	userID := uuid.New()

	t.Run("get", func(t *testing.T) {
		srv, accountUC := newAccountServer(t, userID)
		accountUC.EXPECT().GetProfile(mock.Anything, userID).Return(&entity.Customer{ID: userID, Name: "Amy"}, nil)

		rec, _ := srv.do(t, http.MethodGet, "/api/v1/profile", customerToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		srv, accountUC := newAccountServer(t, userID)
		input := usecase.UpdateProfileInput{Name: "Amy Lin", Address: "台中市西屯區", Phone: "+886 912-345-678"}
		accountUC.EXPECT().UpdateProfile(mock.Anything, userID, input).
			Return(&entity.Customer{ID: userID, Name: input.Name, Address: input.Address, Phone: input.Phone}, nil)

		rec, _ := srv.do(t, http.MethodPut, "/api/v1/profile", customerToken,
			`{"name":"Amy Lin","address":"台中市西屯區","phone":"+886 912-345-678"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update requires name", func(t *testing.T) {
		srv, _ := newAccountServer(t, userID)

		rec, env := srv.do(t, http.MethodPut, "/api/v1/profile", customerToken, `{"address":"台中市"}`)
		assertErrorCode(t, rec, env, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Equal(t, []string{"name"}, fieldNames(env))
	})
}
