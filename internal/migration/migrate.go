// Package migration applies the embedded schema migrations with golang-migrate.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Up applies all pending up migrations. An already current schema is not an error.
func Up(databaseURL string, logger *slog.Logger) error {
	return run(databaseURL, logger, func(m *migrate.Migrate) error { return m.Up() })
}

// Down rolls back the given number of migrations.
func Down(databaseURL string, steps int, logger *slog.Logger) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	return run(databaseURL, logger, func(m *migrate.Migrate) error { return m.Steps(-steps) })
}

func run(databaseURL string, logger *slog.Logger, apply func(*migrate.Migrate) error) (err error) {
	// Open a temporary standard sql.DB connection using the pgx stdlib driver
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	source, err := iofs.New(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(sourceErr, dbErr)
		}
	}()

	applyErr := apply(m)
	if errors.Is(applyErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
		return nil
	}
	if applyErr != nil {
		return fmt.Errorf("failed to apply migrations: %w", applyErr)
	}

	version, dirty, verr := m.Version()
	if verr == nil {
		logger.Info("Database migrations applied successfully.", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
