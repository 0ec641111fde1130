package main

import (
	"github.com/spf13/cobra"

	"github.com/njprem/StarWars_API_BackEnd/internal/logging"
	"github.com/njprem/StarWars_API_BackEnd/internal/repository/postgres"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			logging.Info().Msg("schema applied")
			return nil
		},
	}
}
