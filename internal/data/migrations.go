package data

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"go.uber.org/zap"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedMigrations embed.FS

func migrationTarget(db *bun.DB) (gooseDialect, dir string, err error) {
	switch db.Dialect().Name() {
	case dialect.PG:
		return "postgres", "migrations/postgres", nil
	case dialect.SQLite:
		return "sqlite3", "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("no migrations for dialect %s", db.Dialect().Name())
	}
}

// RunMigrations applies every pending goose migration for the database's dialect
func RunMigrations(ctx context.Context, db *bun.DB) error {
	gooseDialect, dir, err := migrationTarget(db)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db.DB, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// MigrationStatus logs the applied state of every migration through goose's logger
func MigrationStatus(ctx context.Context, db *bun.DB) error {
	gooseDialect, dir, err := migrationTarget(db)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.StatusContext(ctx, db.DB, dir); err != nil {
		return fmt.Errorf("goose status: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through zap
type gooseLogger struct {
	sugar *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.sugar.Infof(strings.TrimSuffix(format, "\n"), v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.sugar.Fatalf(strings.TrimSuffix(format, "\n"), v...)
}

// SetMigrationLogger sends goose's progress and status lines to logger
func SetMigrationLogger(logger *zap.Logger) {
	goose.SetLogger(gooseLogger{sugar: logger.Named("goose").Sugar()})
}
