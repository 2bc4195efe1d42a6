// Package validator adapts go-playground/validator to echo.
package validator

import (
	"cakeshop/internal/util"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with the shared tag rules registered.
func New() *CustomValidator {
	return &CustomValidator{validate: util.NewValidator()}
}

// Validate runs struct validation. Errors are returned unwrapped so callers can inspect field errors.
//
//nolint:wrapcheck // field errors are consumed by response.ValidationFailed
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
