package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/invoice_management_app/internal/migration"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := migrationURL()
			if err != nil {
				return err
			}
			return migration.Up(url, slog.Default())
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := migrationURL()
			if err != nil {
				return err
			}
			return migration.Down(url, steps, slog.Default())
		},
	}
	down.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")
	cmd.AddCommand(down)

	return cmd
}

func migrationURL() (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return "", errors.New("PGSQL_URL is required for migrations")
	}
	return cfg.DatabaseURL, nil
}
