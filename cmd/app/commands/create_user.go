package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	userDomain "github.com/allisson/cardledger/internal/user/domain"
	userUseCase "github.com/allisson/cardledger/internal/user/usecase"
)

// RunCreateUser creates a user account, with the ADMIN role when admin is set.
// When password is empty it is read as one line from io.Reader.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	users userUseCase.UserUseCase,
	logger *slog.Logger,
	email string,
	password string,
	admin bool,
	format string,
	io IOTuple,
) error {
	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return err
		}
	}

	role := userDomain.RoleUser
	if admin {
		role = userDomain.RoleAdmin
	}

	logger.Info("creating user", slog.String("email", email), slog.String("role", string(role)))

	user, err := users.CreateUser(ctx, email, password, role)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		if err := writeJSON(io.Writer, userOutput(user)); err != nil {
			return err
		}
	} else {
		writeUserText(io.Writer, "User created successfully!", user)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)),
	)
	return nil
}

func promptForPassword(io IOTuple) (string, error) {
	if io.Reader == nil {
		return "", fmt.Errorf("password is required")
	}
	_, _ = fmt.Fprint(io.Writer, "Password: ")
	line, err := bufio.NewReader(io.Reader).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

func userOutput(user *userDomain.User) map[string]string {
	return map[string]string{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    string(user.Role),
	}
}

func writeUserText(writer io.Writer, headline string, user *userDomain.User) {
	_, _ = fmt.Fprintf(writer, "\n%s\n", headline)
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", user.ID.String())
	_, _ = fmt.Fprintf(writer, "Email: %s\n", user.Email)
	_, _ = fmt.Fprintf(writer, "Role: %s\n", user.Role)
}
