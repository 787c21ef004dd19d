package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrate_Idempotent(t *testing.T) {
	database := openTestDB(t)

	// OpenDB already migrated; re-running must not error.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_CreatesHistoryTable(t *testing.T) {
	database := openTestDB(t)

	var name string
	err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='history_entries'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "history_entries", name)
}

func TestOpenDB_EnablesForeignKeys(t *testing.T) {
	database := openTestDB(t)

	var enabled int
	err := database.QueryRow(`PRAGMA foreign_keys`).Scan(&enabled)
	require.NoError(t, err)
	assert.Equal(t, 1, enabled)
}
