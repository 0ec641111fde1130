package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/njprem/StarWars_API_BackEnd/docs"
	"github.com/njprem/StarWars_API_BackEnd/internal/logging"
	"github.com/njprem/StarWars_API_BackEnd/internal/repository/postgres"
	"github.com/njprem/StarWars_API_BackEnd/internal/service"
	transporthttp "github.com/njprem/StarWars_API_BackEnd/internal/transport/http"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if a.cfg.DBAutoMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		logging.Info().Msg("schema applied")
	}

	userRepo := postgres.NewUserRepo(db)
	planetRepo := postgres.NewPlanetRepo(db)
	peopleRepo := postgres.NewPeopleRepo(db)
	favoriteRepo := postgres.NewFavoriteRepo(db)

	userService := service.NewUserService(userRepo)
	planetService := service.NewPlanetService(planetRepo)
	peopleService := service.NewPeopleService(peopleRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, userRepo, planetRepo, peopleRepo)

	e := transporthttp.NewRouter(a.cfg.AllowOrigins)
	transporthttp.RegisterSitemap(e)
	transporthttp.RegisterHealth(e, db)
	transporthttp.RegisterMetrics(e)
	transporthttp.RegisterSwagger(e, docs.SwaggerYAML)
	transporthttp.RegisterUsers(e, userService, favoriteService)
	transporthttp.RegisterPlanets(e, planetService)
	transporthttp.RegisterPeople(e, peopleService)
	transporthttp.RegisterFavorites(e, favoriteService)

	for _, r := range e.Routes() {
		logging.Debug().Str("method", r.Method).Str("path", r.Path).Msg("route registered")
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("port", a.cfg.Port).Str("driver", a.cfg.DBDriver).Msg("listening")
		errCh <- e.Start(":" + a.cfg.Port)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Info().Dur("timeout", a.cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
