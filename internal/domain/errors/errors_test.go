package errors

import (
	"net/http"
	"testing"

	"cakeshop/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrInvalidStatusTransition.WithDetails(map[string]string{"from": "shipped", "to": "pending"})

	assert.ErrorIs(t, detailed, ErrInvalidStatusTransition)
	assert.ErrorIs(t, errors.Wrap(detailed, "advance"), ErrInvalidStatusTransition)
	assert.NotErrorIs(t, detailed, ErrOrderNotFound)
	assert.Equal(t, map[string]string{"from": "shipped", "to": "pending"}, detailed.Details())
	assert.Nil(t, ErrInvalidStatusTransition.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert order")

	assert.ErrorIs(t, err, ErrPersistenceFailure)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "PERSISTENCE_FAILURE", err.ErrorCode())
	assert.Equal(t, ErrPersistenceFailure.Message(), err.Message())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(map[string]string{
		"recipient_phone": "請輸入有效的電話號碼",
		"recipient_name":  "收件人姓名為必填項",
	})

	var appErr AppError = err
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, []FieldError{
		{Field: "recipient_name", Message: "收件人姓名為必填項"},
		{Field: "recipient_phone", Message: "請輸入有效的電話號碼"},
	}, appErr.Details())
	assert.Equal(t, "收件人姓名為必填項", err.Fields()["recipient_name"])
}
