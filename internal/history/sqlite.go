package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ffcs-tools/ffcs/internal/db"
)

// SQLiteStore persists entries in a history_entries table: queryable keys
// as columns, the full entry as a JSON payload column.
type SQLiteStore struct {
	db db.DBTX
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(dbtx db.DBTX) *SQLiteStore {
	return &SQLiteStore{db: dbtx}
}

func (s *SQLiteStore) Append(ctx context.Context, entry Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}

	query := `INSERT INTO history_entries (id, student_id, semester, created_at, payload)
		VALUES (?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		entry.ID,
		entry.StudentID,
		entry.Semester,
		entry.CreatedAt.Format(time.RFC3339),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ForStudent(ctx context.Context, studentID string) ([]Entry, error) {
	query := `SELECT payload FROM history_entries
		WHERE student_id = ?
		ORDER BY created_at DESC, rowid DESC`
	rows, err := s.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing history for student: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (s *SQLiteStore) ForSemester(ctx context.Context, studentID string, semester int) ([]Entry, error) {
	query := `SELECT payload FROM history_entries
		WHERE student_id = ? AND semester = ?
		ORDER BY created_at DESC, rowid DESC`
	rows, err := s.db.QueryContext(ctx, query, studentID, semester)
	if err != nil {
		return nil, fmt.Errorf("listing history for semester: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (s *SQLiteStore) Latest(ctx context.Context, studentID string) (*Entry, error) {
	query := `SELECT payload FROM history_entries
		WHERE student_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`
	var payload string
	if err := s.db.QueryRowContext(ctx, query, studentID).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("student %s: %w", studentID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning history entry: %w", err)
	}
	return decodeEntry(payload)
}

func (s *SQLiteStore) Clear(ctx context.Context, studentID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM history_entries WHERE student_id = ?`, studentID)
	if err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entry, err := decodeEntry(payload)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}
	return entries, nil
}

func decodeEntry(payload string) (*Entry, error) {
	var entry Entry
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		return nil, fmt.Errorf("decoding history payload: %w", err)
	}
	return &entry, nil
}
