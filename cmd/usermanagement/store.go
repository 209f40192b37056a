package main

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/config"
	"github.com/somshrestha/inflo-tech-test/internal/data"
)

// openDatabase opens the configured SQL database. The memory driver has none.
func openDatabase(logger *zap.Logger) (*bun.DB, error) {
	dbConfig := config.Database()

	switch dbConfig.Driver {
	case config.DriverSQLite:
		logger.Info("Database configuration",
			zap.String("driver", dbConfig.Driver),
			zap.String("path", dbConfig.SQLitePath))
		return data.OpenSQLite(dbConfig.SQLitePath)
	case config.DriverPostgres:
		pg := dbConfig.Postgres
		logger.Info("Database configuration",
			zap.String("driver", dbConfig.Driver),
			zap.String("host", pg.Host),
			zap.Int("port", pg.Port),
			zap.String("database", pg.Database),
			zap.String("user", pg.User))
		return data.OpenPostgres(pg.DSN(), pg.MaxOpenConnections)
	default:
		return nil, fmt.Errorf("driver %q has no SQL database", dbConfig.Driver)
	}
}

// openStore returns the store for the configured driver, migrating SQL
// databases first when auto_migrate is set
func openStore(ctx context.Context, logger *zap.Logger) (data.Store, error) {
	dbConfig := config.Database()
	if dbConfig.Driver == config.DriverMemory {
		logger.Info("Using in-memory store with fixture users")
		return data.NewSeededMemoryStore(), nil
	}

	db, err := openDatabase(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dbConfig.AutoMigrate {
		data.SetMigrationLogger(logger)
		if err := data.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("Database migrations applied")
	}

	return data.NewBunStore(db), nil
}
