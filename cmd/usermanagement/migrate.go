package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/data"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Apply every pending migration to the configured sqlite or postgres
database. The first migrations create the users and audit_logs tables and
install the fixture users.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd, func(db *bun.DB, logger *zap.Logger) error {
			if err := data.RunMigrations(cmd.Context(), db); err != nil {
				return err
			}
			logger.Info("Database migrations applied")
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the applied state of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd, func(db *bun.DB, logger *zap.Logger) error {
			return data.MigrationStatus(cmd.Context(), db)
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateStatusCmd)
}

func withDatabase(cmd *cobra.Command, fn func(db *bun.DB, logger *zap.Logger) error) error {
	logger := initLogger()
	defer func() { _ = logger.Sync() }()

	db, err := openDatabase(logger)
	if err != nil {
		return fmt.Errorf("migrations need the sqlite or postgres driver: %w", err)
	}
	defer func() { _ = db.Close() }()

	data.SetMigrationLogger(logger)
	return fn(db, logger)
}
