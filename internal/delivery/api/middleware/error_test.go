package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cakeshop/internal/delivery/api/response"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrEmptyCart, "checkout"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "EMPTY_CART",
		},
		{
			name:        "validation error keeps details",
			err:         domainerrors.NewValidationError(map[string]string{"recipient_name": "收件人姓名為必填項"}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:       "database error hides details",
			err:        domainerrors.NewDatabaseExecuteError(assert.AnError, "select orders"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "PERSISTENCE_FAILURE",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	mw := NewErrorMiddleware(discardLogger)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			mw.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
