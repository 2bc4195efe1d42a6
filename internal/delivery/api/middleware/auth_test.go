package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "cakeshop/internal/delivery/context"
	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/service"
	mockservice "cakeshop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		header    string
		setup     func(m *mockservice.MockTokenService)
		wantErr   error
		wantRoles entity.Roles
	}{
		{
			name:    "missing header",
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:    "not a bearer token",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(m *mockservice.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, assert.AnError)
			},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockservice.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"customer", "admin"}}, nil)
			},
			wantRoles: entity.Roles{entity.RoleCustomer, entity.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockservice.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			mw := NewAuthMiddleware(tokens, discardLogger)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			called := false
			err := mw.Authenticate(func(c echo.Context) error {
				called = true

				got, ok := GetUserID(c)
				require.True(t, ok)
				assert.Equal(t, userID, got)
				assert.Equal(t, userID, deliverycontext.GetUserIDFromContext(c.Request().Context()))
				assert.Equal(t, tt.wantRoles, GetRoles(c))

				return nil
			})(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	mw := NewAuthMiddleware(nil, discardLogger)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	tests := []struct {
		name    string
		roles   any
		wantErr error
	}{
		{name: "admin passes", roles: entity.Roles{entity.RoleCustomer, entity.RoleAdmin}},
		{name: "customer is forbidden", roles: entity.Roles{entity.RoleCustomer}, wantErr: domainerrors.ErrForbidden},
		{name: "no roles on context", roles: nil, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			if tt.roles != nil {
				c.Set(contextKeyRoles, tt.roles)
			}

			err := mw.RequireRole(entity.RoleAdmin)(next)(c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}
