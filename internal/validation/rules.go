// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	apperrors "github.com/allisson/cardledger/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordLength validates that a password length, counted in characters, is within bounds.
type PasswordLength struct {
	Min int
	Max int
}

// Validate checks the password against the configured bounds.
func (p PasswordLength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_type", "password must be a string")
	}
	n := utf8.RuneCountInString(s)
	if n < p.Min || n > p.Max {
		return validation.NewError(
			"validation_password_length",
			fmt.Sprintf("password must be between %d and %d characters", p.Min, p.Max),
		)
	}
	return nil
}

// PositiveAmount validates that a decimal amount is strictly greater than zero.
var PositiveAmount = validation.By(func(value interface{}) error {
	d, ok := toDecimal(value)
	if !ok {
		return validation.NewError("validation_amount_type", "must be a decimal amount")
	}
	if !d.IsPositive() {
		return validation.NewError("validation_amount_positive", "must be greater than zero")
	}
	return nil
})

// MaxDecimalPlaces validates that a decimal amount has at most places fractional digits.
func MaxDecimalPlaces(places int32) validation.Rule {
	return validation.By(func(value interface{}) error {
		d, ok := toDecimal(value)
		if !ok {
			return validation.NewError("validation_amount_type", "must be a decimal amount")
		}
		if !d.Equal(d.Truncate(places)) {
			return validation.NewError(
				"validation_amount_scale",
				fmt.Sprintf("must have at most %d decimal places", places),
			)
		}
		return nil
	})
}

func toDecimal(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}
		return *v, true
	default:
		return decimal.Zero, false
	}
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
