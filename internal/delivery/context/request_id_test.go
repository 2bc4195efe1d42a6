package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))
	assert.Equal(t, uuid.Nil, GetUserIDFromContext(ctx))

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	logger := slog.New(slog.DiscardHandler)
	userID := uuid.New()
	ctx = WithLogger(WithUserID(WithRequestID(ctx, "req-2"), userID), logger)

	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, fallback))
	assert.Equal(t, userID, GetUserIDFromContext(ctx))
}
