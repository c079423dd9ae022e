// Package domain defines the user identity model: accounts, roles and the
// authenticated principal carried through requests.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the authorization role of a user.
type Role string

const (
	// RoleUser can manage and move funds between their own cards.
	RoleUser Role = "USER"
	// RoleAdmin provisions, blocks, activates and deletes cards and manages users.
	RoleAdmin Role = "ADMIN"
)

// ParseRole converts s (case-insensitive) into a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleUser, RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// IsAdmin reports whether the principal holds the ADMIN role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// AccessToken is a signed bearer token issued on login.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// NormalizeEmail lowercases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
