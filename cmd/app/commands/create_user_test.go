package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userDomain "github.com/allisson/cardledger/internal/user/domain"
	userMocks "github.com/allisson/cardledger/internal/user/usecase/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	t.Run("text-user", func(t *testing.T) {
		users := userMocks.NewMockUserUseCase(t)
		users.On("CreateUser", ctx, "alice@example.com", "password123", userDomain.RoleUser).
			Return(&userDomain.User{ID: userID, Email: "alice@example.com", Role: userDomain.RoleUser}, nil).
			Once()

		var out bytes.Buffer
		err := RunCreateUser(ctx, users, discardLogger(), "alice@example.com", "password123", false, "text",
			IOTuple{Writer: &out})

		require.NoError(t, err)
		assert.Contains(t, out.String(), userID.String())
		assert.Contains(t, out.String(), "Role: USER")
	})

	t.Run("json-admin", func(t *testing.T) {
		users := userMocks.NewMockUserUseCase(t)
		users.On("CreateUser", ctx, "root@example.com", "password123", userDomain.RoleAdmin).
			Return(&userDomain.User{ID: userID, Email: "root@example.com", Role: userDomain.RoleAdmin}, nil).
			Once()

		var out bytes.Buffer
		err := RunCreateUser(ctx, users, discardLogger(), "root@example.com", "password123", true, "json",
			IOTuple{Writer: &out})

		require.NoError(t, err)
		var result map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, userID.String(), result["user_id"])
		assert.Equal(t, "ADMIN", result["role"])
	})

	t.Run("password-from-stdin", func(t *testing.T) {
		users := userMocks.NewMockUserUseCase(t)
		users.On("CreateUser", ctx, "bob@example.com", "from-stdin-pw", userDomain.RoleUser).
			Return(&userDomain.User{ID: userID, Email: "bob@example.com", Role: userDomain.RoleUser}, nil).
			Once()

		var out bytes.Buffer
		err := RunCreateUser(ctx, users, discardLogger(), "bob@example.com", "", false, "text",
			IOTuple{Reader: strings.NewReader("from-stdin-pw\n"), Writer: &out})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Password: ")
	})

	t.Run("empty-stdin-password", func(t *testing.T) {
		users := userMocks.NewMockUserUseCase(t)

		var out bytes.Buffer
		err := RunCreateUser(ctx, users, discardLogger(), "bob@example.com", "", false, "text",
			IOTuple{Reader: strings.NewReader("\n"), Writer: &out})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "password cannot be empty")
	})

	t.Run("use-case-error", func(t *testing.T) {
		users := userMocks.NewMockUserUseCase(t)
		users.On("CreateUser", ctx, "alice@example.com", "password123", userDomain.RoleUser).
			Return(nil, userDomain.ErrUserAlreadyExists).Once()

		err := RunCreateUser(ctx, users, discardLogger(), "alice@example.com", "password123", false, "text",
			IOTuple{Writer: io.Discard})

		require.Error(t, err)
		assert.ErrorIs(t, err, userDomain.ErrUserAlreadyExists)
	})
}

func TestRunGrantAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users := userMocks.NewMockUserUseCase(t)
		user := &userDomain.User{ID: uuid.Must(uuid.NewV7()), Email: "alice@example.com", Role: userDomain.RoleAdmin}
		users.On("GrantAdmin", ctx, "alice@example.com").Return(user, nil).Once()

		var out bytes.Buffer
		require.NoError(t, RunGrantAdmin(ctx, users, discardLogger(), &out, "alice@example.com"))
		assert.Contains(t, out.String(), "Role: ADMIN")
	})

	t.Run("unknown-user", func(t *testing.T) {
		users := userMocks.NewMockUserUseCase(t)
		users.On("GrantAdmin", ctx, "ghost@example.com").Return(nil, userDomain.ErrUserNotFound).Once()

		err := RunGrantAdmin(ctx, users, discardLogger(), io.Discard, "ghost@example.com")
		assert.ErrorIs(t, err, userDomain.ErrUserNotFound)
	})
}
