// Package service provides the technical services behind user identity: password
// hashing and access token signing.
package service

import (
	"time"

	userDomain "github.com/allisson/cardledger/internal/user/domain"
)

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// Hash returns an encoded Argon2id hash of password.
	Hash(password string) (string, error)
	// Compare reports whether password matches hash. It never returns true on a malformed hash.
	Compare(password, hash string) bool
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	// Issue signs a token for user valid until the returned expiry.
	Issue(user *userDomain.User, now time.Time) (*userDomain.AccessToken, error)
	// Parse verifies token and returns the principal it was issued to.
	Parse(token string, now time.Time) (*userDomain.Principal, error)
}
