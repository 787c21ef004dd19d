package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore keeps all entries in one JSON file. Every write loads the
// file, modifies the slice, and rewrites it through a temp file + rename so
// a crash never leaves a half-written history behind.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return s.write(entries)
}

func (s *FileStore) ForStudent(ctx context.Context, studentID string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	var out []Entry
	for _, e := range entries {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *FileStore) ForSemester(ctx context.Context, studentID string, semester int) ([]Entry, error) {
	all, err := s.ForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var out []Entry
	for _, e := range all {
		if e.Semester == semester {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *FileStore) Latest(ctx context.Context, studentID string) (*Entry, error) {
	all, err := s.ForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("student %s: %w", studentID, ErrNotFound)
	}
	latest := all[0]
	return &latest, nil
}

func (s *FileStore) Clear(ctx context.Context, studentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.StudentID != studentID {
			kept = append(kept, e)
		}
	}
	return s.write(kept)
}

// load reads the whole history file. A missing file is an empty history,
// not an error.
func (s *FileStore) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("history file %s is corrupt: %w", s.path, err)
	}
	return entries, nil
}

func (s *FileStore) write(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("creating temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp history file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing history file: %w", err)
	}
	return nil
}

func sortNewestFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
