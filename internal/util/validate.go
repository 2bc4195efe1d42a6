// Package util holds small helpers shared by the usecase and delivery layers.
package util

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"cakeshop/internal/errors"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts an optional leading + followed by 7 to 20 digits, spaces, dashes or parentheses.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{6,19}$`)

// NewValidator returns a validator that reports fields by their json name and knows the phone rule.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return v
}

// FieldLabels maps json field names to display labels used in messages.
type FieldLabels map[string]string

// FieldMessages converts validator errors into json field name to message pairs.
// It returns false when err is not a validation error.
func FieldMessages(err error, labels FieldLabels) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		label := labels[field]
		if label == "" {
			label = field
		}
		out[field] = message(label, fe)
	}

	return out, true
}

func message(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label + "為必填項"
	case "max":
		return fmt.Sprintf("%s不可超過 %s 個字", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s至少需要 %s 個字", label, fe.Param())
	case "email":
		return "請輸入有效的電子郵件"
	case "phone":
		return "請輸入有效的電話號碼"
	case "gte", "lte":
		return label + "超出允許範圍"
	default:
		return label + "格式不正確"
	}
}
