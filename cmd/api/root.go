package main

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/njprem/StarWars_API_BackEnd/internal/config"
	"github.com/njprem/StarWars_API_BackEnd/internal/logging"
	"github.com/njprem/StarWars_API_BackEnd/internal/repository/postgres"
)

type app struct {
	cfg      config.Config
	logstash *logging.LogstashWriter
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:                "starwars-api",
		Short:              "StarWars REST API",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	root.AddCommand(newServeCommand(a))
	root.AddCommand(newMigrateCommand(a))
	root.AddCommand(newUserCommand(a))
	return root
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	a.cfg = config.Load()

	logCfg := logging.Config{
		Level:  a.cfg.LogLevel,
		Format: a.cfg.LogFormat,
		Output: os.Stderr,
	}
	if a.cfg.LogstashTCPAddr != "" {
		w, err := logging.NewLogstashWriter(a.cfg.LogstashTCPAddr,
			logging.WithDialTimeout(a.cfg.LogstashDialTimeout),
			logging.WithWriteTimeout(a.cfg.LogstashWriteTimeout),
			logging.WithRetryInterval(a.cfg.LogstashRetryInterval),
		)
		if err != nil {
			return fmt.Errorf("logstash writer: %w", err)
		}
		a.logstash = w
		logCfg.Mirror = w
	}
	logging.Init(logCfg)
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.logstash == nil {
		return nil
	}
	if dropped := a.logstash.Dropped(); dropped > 0 {
		logging.Warn().Uint64("dropped", dropped).Msg("logstash records not delivered")
	}
	return a.logstash.Close()
}

func (a *app) openDB() (*sqlx.DB, error) {
	db, err := postgres.New(a.cfg.DBDriver, a.cfg.DatabaseURL, a.cfg.DBMaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
