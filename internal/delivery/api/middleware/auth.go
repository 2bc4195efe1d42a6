package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "cakeshop/internal/delivery/context"
	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
	bearerPrefix     = "Bearer "
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.UserID == uuid.Nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, entity.ParseRoles(claims.Roles))

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", claims.UserID.String()))
		ctx = deliverycontext.WithUserID(ctx, claims.UserID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds role.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !GetRoles(c).Contains(role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated caller's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated caller's roles.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(contextKeyRoles).(entity.Roles)

	return roles
}
