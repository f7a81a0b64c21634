package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates the full-text search GIN index for PostgreSQL.
// It backs the `search` parameter of the task list endpoint, matching against
// title and description together.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_coding_tasks_search_gin
		ON coding_tasks USING gin(to_tsvector('english', title || ' ' || description))`)
	if err != nil {
		return fmt.Errorf("failed to create task search GIN index: %w", err)
	}

	return nil
}
