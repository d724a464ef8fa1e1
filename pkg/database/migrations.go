package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes back the question search in debate listings and cannot be
// expressed in the Ent schema.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_debates_question_gin
		ON debates USING gin(to_tsvector('english', question))`)
	if err != nil {
		return fmt.Errorf("failed to create question GIN index: %w", err)
	}

	return nil
}
