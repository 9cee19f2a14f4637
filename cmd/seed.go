package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"CityNotes-App/internal/seed"
)

func seedCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the reference cities when the catalog is empty",
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

			citiesRepo, notesRepo := repositories(client)
			result, err := seed.NewSeeder(citiesRepo, notesRepo, a.logger).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("シードに失敗: %w", err)
			}

			if result.Skipped {
				fmt.Printf("Database already contains %d cities. Skipping seed.\n", result.Existing)
				return nil
			}
			fmt.Printf("✅ Seeded %d cities and %d notes\n", result.CitiesCreated, result.NotesCreated)
			return nil
		},
	}
}
