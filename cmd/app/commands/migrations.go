package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/cardledger/internal/database"
)

// migrationSource returns the golang-migrate source URL and database URL for driver.
// MySQL DSNs in go-sql-driver format get the mysql:// scheme golang-migrate expects.
func migrationSource(driver, connectionString, dir string) (sourceURL, databaseURL string, err error) {
	switch driver {
	case database.DriverPostgres:
		return "file://" + filepath.Join(dir, "postgresql"), connectionString, nil
	case database.DriverMySQL:
		if !strings.HasPrefix(connectionString, "mysql://") {
			connectionString = "mysql://" + connectionString
		}
		return "file://" + filepath.Join(dir, "mysql"), connectionString, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// RunMigrations applies all pending migrations for the configured driver from dir.
// Returns nil when there is nothing to apply.
func RunMigrations(logger *slog.Logger, driver, connectionString, dir string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	sourceURL, databaseURL, err := migrationSource(driver, connectionString, dir)
	if err != nil {
		return err
	}

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
