package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent and re-run on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS history_entries (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL,
		semester INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		payload TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_student ON history_entries(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_history_student_semester ON history_entries(student_id, semester)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
