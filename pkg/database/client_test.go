package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/devflow-ai/devflow/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (CI_DATABASE_URL set) it connects to an external
// PostgreSQL service container; locally it spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests instead of the SQL migration chain
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, CreateSearchIndexes(ctx, drv))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))
	createOutboxTable(t, client.DB())

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.True(t, health.OutboxReady)
	assert.Greater(t, health.Pool.MaxOpenConns, 0)
}

func TestHealth_ReportsMissingOutbox(t *testing.T) {
	// Auto-migrated schema without the SQL migration chain: the ent tables
	// exist but the outbox does not. The drop covers the CI path where the
	// database is shared across tests.
	client := newTestClient(t)
	ctx := context.Background()
	_, err := client.DB().ExecContext(ctx, "DROP TABLE IF EXISTS events")
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.ErrorIs(t, err, ErrOutboxMissing)
	assert.Equal(t, "unhealthy", health.Status)
	assert.False(t, health.OutboxReady)
}

func createOutboxTable(t *testing.T, db *stdsql.DB) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), `
		CREATE TABLE IF NOT EXISTS events (
			id BIGSERIAL PRIMARY KEY,
			task_id TEXT NOT NULL,
			channel TEXT NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	require.NoError(t, err)
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	task1, err := client.CodingTask.Create().
		SetID("task-1").
		SetUserID("user-1").
		SetTitle("Fix login crash").
		SetDescription("Production login endpoint crashes on empty password").
		Save(ctx)
	require.NoError(t, err)

	task2, err := client.CodingTask.Create().
		SetID("task-2").
		SetUserID("user-1").
		SetTitle("Add export feature").
		SetDescription("Users want CSV export of their dashboards").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT task_id FROM coding_tasks
		WHERE to_tsvector('english', title || ' ' || description) @@ to_tsquery('english', $1)`,
		"login & crash",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}

	require.Len(t, results, 1)
	assert.Equal(t, task1.ID, results[0])

	rows2, err := client.DB().QueryContext(ctx,
		`SELECT task_id FROM coding_tasks
		WHERE to_tsvector('english', title || ' ' || description) @@ to_tsquery('english', $1)`,
		"export",
	)
	require.NoError(t, err)
	defer rows2.Close()

	results = nil
	for rows2.Next() {
		var id string
		require.NoError(t, rows2.Scan(&id))
		results = append(results, id)
	}

	require.Len(t, results, 1)
	assert.Equal(t, task2.ID, results[0])
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	for _, key := range envKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	})

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "devflow", cfg.User)
	assert.Equal(t, "devflow", cfg.Database)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)

	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "production")
	cfg, err = LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, "production", cfg.Database)

	t.Setenv("DB_PORT", "invalid")
	_, err = LoadConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DB_PORT")
}
