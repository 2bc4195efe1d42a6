package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "cakeshop/internal/delivery/api/middleware"
	"cakeshop/internal/delivery/api/validator"
	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/service"
	mockservice "cakeshop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	customerToken = "customer-token"
	adminToken    = "admin-token"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string                     `json:"code"`
		Message string                     `json:"message"`
		Details []domainerrors.FieldError `json:"details"`
	} `json:"error"`
}

// testServer is an echo instance wired like the real API with a stub token service.
type testServer struct {
	e    *echo.Echo
	auth *apimiddleware.AuthMiddleware
}

func newTestServer(t *testing.T, userID uuid.UUID) *testServer {
	t.Helper()

	tokens := mockservice.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(customerToken).
		Return(&service.Claims{UserID: userID, Roles: []string{string(entity.RoleCustomer)}}, nil).Maybe()
	tokens.EXPECT().ValidateToken(adminToken).
		Return(&service.Claims{UserID: userID, Roles: []string{string(entity.RoleCustomer), string(entity.RoleAdmin)}}, nil).Maybe()
	tokens.EXPECT().ValidateToken(mock.Anything).
		Return(nil, domainerrors.ErrUnauthenticated).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(discardLogger).HandleHTTPError

	return &testServer{e: e, auth: apimiddleware.NewAuthMiddleware(tokens, discardLogger)}
}

func (s *testServer) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, env envelope, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
}

func fieldNames(env envelope) []string {
	names := make([]string, 0, len(env.Error.Details))
	for _, d := range env.Error.Details {
		names = append(names, d.Field)
	}

	return names
}

