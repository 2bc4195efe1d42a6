package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recipient struct {
	Name  string `json:"recipient_name" validate:"required,max=5"`
	Phone string `json:"recipient_phone" validate:"required,phone"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

func TestNewValidator_PhoneRule(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		phone string
		valid bool
	}{
		{"0912345678", true},
		{"+886 912-345-678", true},
		{"(02) 2345-6789", true},
		{"12345", false},
		{"phone", false},
		{"+886912345678901234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := v.Var(tt.phone, "phone")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFieldMessages(t *testing.T) {
	v := NewValidator()
	labels := FieldLabels{"recipient_name": "收件人姓名", "recipient_phone": "聯絡電話"}

	err := v.Struct(recipient{Name: "王小明王小明", Phone: "abc", Email: "nope"})
	require.Error(t, err)

	fields, ok := FieldMessages(err, labels)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"recipient_name":  "收件人姓名不可超過 5 個字",
		"recipient_phone": "請輸入有效的電話號碼",
		"email":           "請輸入有效的電子郵件",
	}, fields)

	fields, ok = FieldMessages(v.Struct(recipient{}), labels)
	require.True(t, ok)
	assert.Equal(t, "收件人姓名為必填項", fields["recipient_name"])
	assert.Equal(t, "聯絡電話為必填項", fields["recipient_phone"])
	assert.NotContains(t, fields, "email")
}

func TestFieldMessages_NotValidationError(t *testing.T) {
	_, ok := FieldMessages(assert.AnError, nil)
	assert.False(t, ok)
}
