//go:build integration

package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// TestDataContextPostgres runs the unit-of-work suite against a real PostgreSQL
func TestDataContextPostgres(t *testing.T) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("usermanagement"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	suite.Run(t, &DataContextSuite{
		newStore: func(t *testing.T) Store {
			db, err := OpenPostgres(dsn, 5)
			require.NoError(t, err)

			_, err = db.ExecContext(ctx, "DROP SCHEMA public CASCADE; CREATE SCHEMA public")
			require.NoError(t, err)
			require.NoError(t, RunMigrations(ctx, db))

			return NewBunStore(db)
		},
	})
}
