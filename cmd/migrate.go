package main

import (
	"github.com/spf13/cobra"

	"onebot-ads/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the artifact store database migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		logger.Info("migrations applied successfully")
		return nil
	},
}
