//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// skipIfShort skips the test in short mode or when SKIP_INTEGRATION is set
func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("SKIP_INTEGRATION") != "" {
		t.Skip("Skipping integration test (SKIP_INTEGRATION set)")
	}
}

func setupPostgres(t *testing.T) (sqlx.SqlConn, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("shortener"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithInitScripts(
			"../../services/migrations/000001_create_links.up.sql",
			"../../services/migrations/000002_create_click_events.up.sql",
		),
		postgres.BasicWaitStrategies(),
		postgres.WithSQLDriver("pgx"),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn := sqlx.NewSqlConn("pgx", connStr)

	cleanup := func() {
		container.Terminate(ctx)
	}

	return conn, cleanup
}
