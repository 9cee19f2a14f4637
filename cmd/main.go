package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "citynotes"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "City and note catalog backend",
		Long: `citynotes serves the city/note catalog behind the map CMS.

Subcommands:
- serve    start the HTTP API
- migrate  apply or roll back the database schema
- seed     insert the reference cities when the catalog is empty
- import   create cities from a GeoJSON boundary FeatureCollection`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", ".env file to load (default: ./.env)")

	cmd.AddCommand(
		serveCmd(&envFile),
		migrateCmd(&envFile),
		seedCmd(&envFile),
		importCmd(&envFile),
	)
	return cmd
}
