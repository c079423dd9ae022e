package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	userDomain "github.com/allisson/cardledger/internal/user/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create inserts a user; a duplicate email yields ErrUserAlreadyExists.
	Create(ctx context.Context, user *userDomain.User) error
	Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role userDomain.Role, updatedAt time.Time) error
	List(ctx context.Context, offset, limit int) ([]*userDomain.User, error)
	// Delete removes a user; one still owning cards yields ErrUserHasCards.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UserUseCase defines the identity operations.
type UserUseCase interface {
	// Register creates a USER account.
	Register(ctx context.Context, email, password string) (*userDomain.User, error)
	// CreateUser creates an account with an explicit role.
	CreateUser(ctx context.Context, email, password string, role userDomain.Role) (*userDomain.User, error)
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, email, password string) (*userDomain.AccessToken, error)
	// Authenticate verifies an access token against the current state of its user.
	Authenticate(ctx context.Context, token string) (*userDomain.Principal, error)
	// ResolveIDByEmail resolves an email to a user id.
	ResolveIDByEmail(ctx context.Context, email string) (uuid.UUID, error)
	// GrantAdmin promotes the user owning email to ADMIN.
	GrantAdmin(ctx context.Context, email string) (*userDomain.User, error)
	ListUsers(ctx context.Context, page, size int) ([]*userDomain.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
