// Package http provides the identity HTTP surface: register and login handlers, user
// administration, and the authentication, role and rate limit middlewares.
package http

import (
	"context"

	userDomain "github.com/allisson/cardledger/internal/user/domain"
)

type principalKey struct{}

// WithPrincipal stores the authenticated caller in the context.
func WithPrincipal(ctx context.Context, principal *userDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the authenticated caller from the context.
func GetPrincipal(ctx context.Context) (*userDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*userDomain.Principal)
	return principal, ok && principal != nil
}
