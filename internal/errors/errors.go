// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and mapped to appropriate HTTP status codes by handlers.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated user doesn't have permission.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState indicates a status transition or precondition on the current
	// state of a resource was violated.
	ErrInvalidState = errors.New("invalid state")

	// ErrInsufficientFunds indicates a debit larger than the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTransferIncomplete indicates a transfer failed after balances started to be
	// written. The transaction is rolled back, but the failure must be alerted on and
	// is never retried automatically.
	ErrTransferIncomplete = errors.New("transfer incomplete")

	// ErrRequestCancelled indicates the caller gave up before the operation started
	// changing state. Nothing was written.
	ErrRequestCancelled = errors.New("request cancelled")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message while preserving the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Cancelled marks a context error as ErrRequestCancelled, keeping the context error
// in the chain.
func Cancelled(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrRequestCancelled, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors, discarding nil values.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsRetryable reports whether a caller may retry the operation that returned err.
// Business rule violations are never retryable; unclassified (infrastructure)
// failures and cancelled requests are.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	for _, business := range []error{
		ErrNotFound,
		ErrConflict,
		ErrInvalidInput,
		ErrUnauthorized,
		ErrForbidden,
		ErrInvalidState,
		ErrInsufficientFunds,
		ErrTransferIncomplete,
	} {
		if errors.Is(err, business) {
			return false
		}
	}
	return true
}
