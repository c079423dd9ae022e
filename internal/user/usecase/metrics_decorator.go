package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/cardledger/internal/metrics"
	userDomain "github.com/allisson/cardledger/internal/user/domain"
)

const metricsDomain = "user"

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{next: useCase, metrics: m}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	u.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	u.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Register records metrics for registration.
func (u *userUseCaseWithMetrics) Register(ctx context.Context, email, password string) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Register(ctx, email, password)
	u.record(ctx, "user_register", start, err)
	return user, err
}

// CreateUser records metrics for account creation.
func (u *userUseCaseWithMetrics) CreateUser(
	ctx context.Context,
	email, password string,
	role userDomain.Role,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.CreateUser(ctx, email, password, role)
	u.record(ctx, "user_create", start, err)
	return user, err
}

// Login records metrics for logins.
func (u *userUseCaseWithMetrics) Login(ctx context.Context, email, password string) (*userDomain.AccessToken, error) {
	start := time.Now()
	token, err := u.next.Login(ctx, email, password)
	u.record(ctx, "user_login", start, err)
	return token, err
}

// Authenticate records metrics for token authentication.
func (u *userUseCaseWithMetrics) Authenticate(ctx context.Context, token string) (*userDomain.Principal, error) {
	start := time.Now()
	principal, err := u.next.Authenticate(ctx, token)
	u.record(ctx, "user_authenticate", start, err)
	return principal, err
}

// ResolveIDByEmail records metrics for email resolution.
func (u *userUseCaseWithMetrics) ResolveIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	start := time.Now()
	id, err := u.next.ResolveIDByEmail(ctx, email)
	u.record(ctx, "user_resolve_email", start, err)
	return id, err
}

// GrantAdmin records metrics for admin promotion.
func (u *userUseCaseWithMetrics) GrantAdmin(ctx context.Context, email string) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.GrantAdmin(ctx, email)
	u.record(ctx, "user_grant_admin", start, err)
	return user, err
}

// ListUsers records metrics for user listing.
func (u *userUseCaseWithMetrics) ListUsers(ctx context.Context, page, size int) ([]*userDomain.User, error) {
	start := time.Now()
	users, err := u.next.ListUsers(ctx, page, size)
	u.record(ctx, "user_list", start, err)
	return users, err
}

// DeleteUser records metrics for user deletion.
func (u *userUseCaseWithMetrics) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	start := time.Now()
	err := u.next.DeleteUser(ctx, userID)
	u.record(ctx, "user_delete", start, err)
	return err
}
