package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/cardledger/internal/database"
	apperrors "github.com/allisson/cardledger/internal/errors"
	userDomain "github.com/allisson/cardledger/internal/user/domain"
)

// MySQLUserRepository handles user persistence for MySQL using BINARY(16) ids.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user.
func (r *MySQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, r.db)

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return userDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Get retrieves a user by id.
func (r *MySQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

// GetByEmail retrieves a user by normalized email.
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *MySQLUserRepository) getOne(ctx context.Context, query string, arg any) (*userDomain.User, error) {
	querier := database.GetTx(ctx, r.db)

	user, err := scanMySQLUser(querier.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}
	return user, nil
}

// UpdateRole changes the role of a user.
func (r *MySQLUserRepository) UpdateRole(
	ctx context.Context,
	userID uuid.UUID,
	role userDomain.Role,
	updatedAt time.Time,
) error {
	querier := database.GetTx(ctx, r.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(
		ctx,
		`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`,
		string(role),
		updatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user role")
	}
	return requireAffected(result, userDomain.ErrUserNotFound)
}

// List returns a page of users ordered by id.
func (r *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(
		ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id ASC LIMIT ? OFFSET ?`,
		limit,
		offset,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer func() {
		_ = rows.Close()
	}()

	users := make([]*userDomain.User, 0)
	for rows.Next() {
		user, err := scanMySQLUser(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}
	return users, nil
}

// Delete removes a user. Users still referenced by cards cannot be removed.
func (r *MySQLUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return userDomain.ErrUserHasCards
		}
		return apperrors.Wrap(err, "failed to delete user")
	}
	return requireAffected(result, userDomain.ErrUserNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMySQLUser(row rowScanner) (*userDomain.User, error) {
	var user userDomain.User
	var idBytes []byte
	var role string
	if err := row.Scan(
		&idBytes,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}
	user.Role = userDomain.Role(role)
	return &user, nil
}
