package main

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/njprem/StarWars_API_BackEnd/internal/logging"
	"github.com/njprem/StarWars_API_BackEnd/internal/repository/postgres"
	"github.com/njprem/StarWars_API_BackEnd/internal/service"
)

func newUserCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage API users",
	}
	cmd.AddCommand(newUserCreateCommand(a))
	return cmd
}

func newUserCreateCommand(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a user that can own favorites",
		Example: `  starwars-api user create --email luke@rebels.org`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			users := service.NewUserService(postgres.NewUserRepo(db))
			user, err := users.Create(cmd.Context(), email)
			if err != nil {
				return err
			}
			logging.Info().Int64("user_id", user.ID).Msg("user created")

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(user)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address of the new user")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
