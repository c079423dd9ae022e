package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/cardledger/internal/errors"
)

func TestPasswordLength(t *testing.T) {
	rule := PasswordLength{Min: 8, Max: 24}

	tests := []struct {
		name      string
		value     interface{}
		shouldErr bool
	}{
		{name: "minimum length", value: "12345678", shouldErr: false},
		{name: "maximum length", value: "123456789012345678901234", shouldErr: false},
		{name: "too short", value: "1234567", shouldErr: true},
		{name: "too long", value: "1234567890123456789012345", shouldErr: true},
		{name: "multibyte counted as characters", value: "ççççççççç", shouldErr: false},
		{name: "not a string", value: 12345678, shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPositiveAmount(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		shouldErr bool
	}{
		{name: "positive", value: decimal.RequireFromString("0.01"), shouldErr: false},
		{name: "pointer positive", value: decimalPtr("10"), shouldErr: false},
		{name: "zero", value: decimal.Zero, shouldErr: true},
		{name: "negative", value: decimal.RequireFromString("-5"), shouldErr: true},
		{name: "nil pointer", value: (*decimal.Decimal)(nil), shouldErr: true},
		{name: "wrong type", value: "10", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PositiveAmount.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaxDecimalPlaces(t *testing.T) {
	rule := MaxDecimalPlaces(2)

	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "integer", value: "100", shouldErr: false},
		{name: "one place", value: "1.5", shouldErr: false},
		{name: "two places", value: "1.25", shouldErr: false},
		{name: "trailing zeros", value: "1.2500", shouldErr: false},
		{name: "three places", value: "1.255", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(decimal.RequireFromString(tt.value))
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestStringRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    validation.Rule
		value   string
		wantErr bool
	}{
		{name: "email plain", rule: Email, value: "owner@example.com"},
		{name: "email plus and subdomain", rule: Email, value: "card.owner+1@mail.example.co"},
		{name: "email without at", rule: Email, value: "owner.example.com", wantErr: true},
		{name: "email without tld", rule: Email, value: "owner@example", wantErr: true},
		{name: "email with spaces", rule: Email, value: "owner @example.com", wantErr: true},
		{name: "email empty is left to Required", rule: Email, value: ""},
		{name: "not blank text", rule: NotBlank, value: "owner@example.com"},
		{name: "not blank only spaces", rule: NotBlank, value: "   ", wantErr: true},
		{name: "not blank tabs and newlines", rule: NotBlank, value: "\t\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(validation.Errors{"amount": PositiveAmount.Validate(decimal.Zero)})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "amount")
}
