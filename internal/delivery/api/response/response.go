// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "cakeshop/internal/delivery/context"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/errors"
	"cakeshop/internal/util"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-facing message
	Details any    `json:"details,omitempty"` // Only for 4xx errors
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details are never exposed for server or auth failures.
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BindingError returns a 400 for a body that could not be decoded
func BindingError(c echo.Context) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", "請求格式錯誤", nil)
}

// InvalidParam returns a 400 for a malformed path or query parameter
func InvalidParam(c echo.Context, name string) error {
	return ValidationFailed(c, domainerrors.NewValidationError(map[string]string{name: "格式不正確"}))
}

// ValidationFailed renders a ValidationError with its field list
func ValidationFailed(c echo.Context, verr *domainerrors.ValidationError) error {
	return Error(c, verr.HTTPCode(), verr.ErrorCode(), verr.Message(), verr.Details())
}

// HandleValidation converts an echo Validate error into a field-level 400.
// Errors that are not validation failures are passed on to the error handler.
func HandleValidation(c echo.Context, err error, labels util.FieldLabels) error {
	fields, ok := util.FieldMessages(err, labels)
	if !ok {
		return errors.WithStack(err)
	}

	return ValidationFailed(c, domainerrors.NewValidationError(fields))
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	// 5xx and unknown errors go to the central handler so they are logged.
	return errors.WithStack(err)
}
