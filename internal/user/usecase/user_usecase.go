// Package usecase implements user identity: registration, login, token authentication,
// email resolution for the card ledger and user administration.
package usecase

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/cardledger/internal/database"
	apperrors "github.com/allisson/cardledger/internal/errors"
	userDomain "github.com/allisson/cardledger/internal/user/domain"
	userService "github.com/allisson/cardledger/internal/user/service"
	appValidation "github.com/allisson/cardledger/internal/validation"
)

// Password length bounds in characters.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 24
)

type userUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService userService.PasswordService
	tokenService    userService.TokenService
	logger          *slog.Logger
	maxPageSize     int
	now             func() time.Time
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService userService.PasswordService,
	tokenService userService.TokenService,
	logger *slog.Logger,
	maxPageSize int,
) UserUseCase {
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &userUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		logger:          logger,
		maxPageSize:     maxPageSize,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func validateCredentials(email, password string) error {
	err := validation.Errors{
		"email": validation.Validate(email,
			validation.Required,
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(3, 255),
		),
		"password": validation.Validate(password,
			validation.Required,
			appValidation.PasswordLength{Min: MinPasswordLength, Max: MaxPasswordLength},
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// Register creates a USER account.
func (u *userUseCase) Register(ctx context.Context, email, password string) (*userDomain.User, error) {
	return u.CreateUser(ctx, email, password, userDomain.RoleUser)
}

// CreateUser validates the credentials, hashes the password and stores the account.
func (u *userUseCase) CreateUser(
	ctx context.Context,
	email, password string,
	role userDomain.Role,
) (*userDomain.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	if _, err := userDomain.ParseRole(string(role)); err != nil {
		return nil, err
	}

	hash, err := u.passwordService.Hash(password)
	if err != nil {
		return nil, err
	}

	now := u.now()
	user := &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        userDomain.NormalizeEmail(email),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))
	return user, nil
}

// Login returns ErrInvalidCredentials for unknown emails and wrong passwords alike.
func (u *userUseCase) Login(ctx context.Context, email, password string) (*userDomain.AccessToken, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, userDomain.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByEmail(ctx, userDomain.NormalizeEmail(email))
	if err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			return nil, userDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.passwordService.Compare(password, user.PasswordHash) {
		u.logger.Debug("login failed: password mismatch", slog.String("user_id", user.ID.String()))
		return nil, userDomain.ErrInvalidCredentials
	}

	return u.tokenService.Issue(user, u.now())
}

// Authenticate parses token and reloads its user, so deleted users lose access and role
// changes apply immediately.
func (u *userUseCase) Authenticate(ctx context.Context, token string) (*userDomain.Principal, error) {
	principal, err := u.tokenService.Parse(token, u.now())
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.Get(ctx, principal.UserID)
	if err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			return nil, userDomain.ErrInvalidToken
		}
		return nil, err
	}

	return &userDomain.Principal{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// ResolveIDByEmail resolves email to a user id, or ErrUserNotFound.
func (u *userUseCase) ResolveIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	user, err := u.userRepo.GetByEmail(ctx, userDomain.NormalizeEmail(email))
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

// GrantAdmin promotes a user to ADMIN. Promoting an admin is a no-op.
func (u *userUseCase) GrantAdmin(ctx context.Context, email string) (*userDomain.User, error) {
	var user *userDomain.User
	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		found, err := u.userRepo.GetByEmail(ctx, userDomain.NormalizeEmail(email))
		if err != nil {
			return err
		}
		user = found
		if user.Role == userDomain.RoleAdmin {
			return nil
		}
		user.Role = userDomain.RoleAdmin
		user.UpdatedAt = u.now()
		return u.userRepo.UpdateRole(ctx, user.ID, user.Role, user.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("admin role granted", slog.String("user_id", user.ID.String()))
	return user, nil
}

// ListUsers returns a page of users ordered by id.
func (u *userUseCase) ListUsers(ctx context.Context, page, size int) ([]*userDomain.User, error) {
	err := validation.Errors{
		"size": validation.Validate(size, validation.Required, validation.Min(1), validation.Max(u.maxPageSize)),
	}.Filter()
	if err == nil {
		// The offset page*size must not overflow.
		err = validation.Errors{
			"page": validation.Validate(page, validation.Min(0), validation.Max(math.MaxInt/size)),
		}.Filter()
	}
	if err != nil {
		return nil, apperrors.Wrap(userDomain.ErrInvalidPagination, err.Error())
	}
	return u.userRepo.List(ctx, page*size, size)
}

// DeleteUser permanently removes a user that owns no cards.
func (u *userUseCase) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := u.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	u.logger.Info("user deleted", slog.String("user_id", userID.String()))
	return nil
}
