package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	userUseCase "github.com/allisson/cardledger/internal/user/usecase"
)

// RunGrantAdmin promotes the user owning email to ADMIN. Promoting an admin is a no-op.
func RunGrantAdmin(
	ctx context.Context,
	users userUseCase.UserUseCase,
	logger *slog.Logger,
	writer io.Writer,
	email string,
) error {
	user, err := users.GrantAdmin(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to grant admin role: %w", err)
	}

	writeUserText(writer, "Admin role granted.", user)
	logger.Info("admin role granted", slog.String("user_id", user.ID.String()))
	return nil
}
