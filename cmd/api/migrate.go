package main

import (
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/booktable/internal/config"
	dbpkg "github.com/BruksfildServices01/booktable/internal/db"
	"github.com/BruksfildServices01/booktable/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.New(cfg.LogLevel, cfg.LogFormat)

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}

			if err := dbpkg.Migrate(db, cfg.DefaultTimezone); err != nil {
				return err
			}

			log.Info().Msg("schema up to date")
			return nil
		},
	}
}
