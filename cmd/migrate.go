package main

import (
	"context"
	"database/sql"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"CityNotes-App/internal/infrastructure/database"
)

func migrateCmd(envFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		migrateSubCmd(envFile, "up", "Apply all pending migrations", database.MigrateUp),
		migrateSubCmd(envFile, "down", "Roll back the most recent migration", database.MigrateDown),
		migrateSubCmd(envFile, "status", "Show applied and pending migrations", database.MigrationStatus),
	)
	return cmd
}

func migrateSubCmd(envFile *string, use, short string, run func(context.Context, *sql.DB, *zap.Logger) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			defer a.close()

			client, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			return run(cmd.Context(), client.DB, a.logger)
		},
	}
}
