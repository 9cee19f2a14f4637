package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"CityNotes-App/internal/seed"
)

func importCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <boundaries.geojson>",
		Short: "Create cities from a GeoJSON boundary FeatureCollection",
		Long: `Reads a FeatureCollection of administrative boundaries (for example GADM level 1)
and creates one city per feature. The name comes from "name" or "NAME_1" and the
Arabic name from "name_ar" or "NL_NAME_1". Features without a name, with an invalid
geometry, or whose name already exists are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("ファイルを開けません: %w", err)
			}
			defer f.Close()

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

			citiesRepo, _ := repositories(client)
			result, err := seed.NewImporter(citiesRepo, a.logger).Import(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("境界データの取り込みに失敗: %w", err)
			}

			for _, s := range result.Skipped {
				fmt.Printf("⚠️  skipped feature %d %q: %s\n", s.Index, s.Name, s.Reason)
			}
			fmt.Printf("✅ Imported %d cities (%d skipped)\n", result.Created, len(result.Skipped))
			return nil
		},
	}
}
