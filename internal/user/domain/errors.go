package domain

import (
	"github.com/allisson/cardledger/internal/errors"
)

// User errors.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrUserHasCards indicates a user cannot be deleted while owning cards.
	ErrUserHasCards = errors.Wrap(errors.ErrConflict, "user still owns cards")

	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidToken indicates a missing, malformed, expired or forged access token.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid access token")

	// ErrAdminRequired indicates an ADMIN-only operation called by a regular user.
	ErrAdminRequired = errors.Wrap(errors.ErrForbidden, "admin role required")

	// ErrInvalidRole indicates an unknown role name.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")

	// ErrInvalidPagination indicates a negative page or a size out of bounds.
	ErrInvalidPagination = errors.Wrap(errors.ErrInvalidInput, "invalid pagination")
)
