// Package store persists named collections as JSON documents in a
// local SQLite database. It is the planner's only I/O boundary.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Collection keys for the five persisted collections.
const (
	KeyEvents      = "events"
	KeyTimetable   = "timetable"
	KeyAssignments = "assignments"
	KeyStreaks     = "streaks"
	KeyBudget      = "budget"
)

// Store is a SQLite-backed key -> JSON document store. Each collection
// is saved as one whole document; a save replaces the previous document
// atomically, there is no merge.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the collection stored under key into out and reports
// whether it succeeded. Reads fail soft: a missing key, a read error,
// or a corrupt document all return false and leave out untouched, so
// the caller's default stands.
func (s *Store) Load(key string, out any) bool {
	var data string
	err := s.db.QueryRow("SELECT data FROM collections WHERE key = ?", key).Scan(&data)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), out) == nil
}

// Save serializes v as JSON and replaces the document stored under key.
// Writes fail hard: any error is returned to the caller.
func (s *Store) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT INTO collections (key, data, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		key, string(data), now)
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
