// Package errors defines the application errors surfaced to API callers.
package errors

import (
	"net/http"
	"sort"

	"cakeshop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// Is matches any BaseError carrying the same business code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails returns a copy of the error carrying details
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Cart errors
	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"數量必須介於 1 到 100 之間",
	)

	ErrLineNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_LINE_NOT_FOUND",
		"找不到該購物車項目",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"您的購物車是空的",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"找不到訂單或您無權查看此訂單",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"訂單狀態無法變更",
	)

	// Customer errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"找不到該使用者",
	)

	ErrCustomerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CUSTOMER_ALREADY_EXISTS",
		"此電子郵件已被註冊",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"請先登入",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
	)

	// Storage errors. PersistenceFailure is the only retry-safe error.
	ErrPersistenceFailure = NewBaseError(
		http.StatusServiceUnavailable,
		"PERSISTENCE_FAILURE",
		"資料儲存失敗，請稍後再試",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
	)
)

// FieldError is a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports which input fields were rejected and why.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError builds a ValidationError from a field to message map.
// Fields are sorted so responses are stable.
func NewValidationError(fields map[string]string) *ValidationError {
	list := make([]FieldError, 0, len(fields))
	for field, msg := range fields {
		list = append(list, FieldError{Field: field, Message: msg})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Field < list[j].Field })

	return &ValidationError{fields: list}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "輸入資料驗證失敗"
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return e.Error()
}

// Details returns the rejected fields
func (e *ValidationError) Details() any {
	return e.fields
}

// Fields returns the rejected fields keyed by field name.
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.fields))
	for _, f := range e.fields {
		out[f.Field] = f.Message
	}

	return out
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Is makes errors.Is(err, ErrPersistenceFailure) hold for database errors.
func (e *DatabaseExecuteError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == ErrPersistenceFailure.errorCode
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return ErrPersistenceFailure.ErrorCode()
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return ErrPersistenceFailure.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
