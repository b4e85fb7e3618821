package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// migrator is the part of *migrate.Migrate used here.
type migrator interface {
	Up() error
	Version() (uint, bool, error)
}

// RunMigrations applies all pending migrations from migrationsPath.
func RunMigrations(dsn string, migrationsPath string, logger *slog.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	return applyMigrations(m, logger)
}

func applyMigrations(m migrator, logger *slog.Logger) error {
	err := m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	upToDate := errors.Is(err, migrate.ErrNoChange)

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Info("database: no migrations to apply")
		return nil
	case err != nil:
		return fmt.Errorf("migration version: %w", err)
	case dirty:
		return fmt.Errorf("migration version %d is dirty, fix the schema and force the version", version)
	}

	logger.Info("database: schema ready", "version", version, "already_up_to_date", upToDate)
	return nil
}
