package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driven"
	"github.com/tripdeck-labs/tripdeck-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.KVStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS annotations (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Store is a SQLite-backed implementation of driven.KVStore. Every
// annotation collection lives in its own row, so one corrupt value
// can never affect another collection.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the store at the specified data
// directory. If dataDir is empty, defaults to ~/.tripdeck/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tripdeck", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "trip.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Get retrieves the raw value stored under key. Any read error is
// treated as an absent record: the caller's default takes over.
func (s *Store) Get(key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM annotations WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Warn("reading %q: %v", key, err)
		}
		return nil, false
	}
	return []byte(value), true
}

// Set stores the raw value under key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO annotations (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Missing keys are a no-op.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM annotations WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %q: %w", key, err)
	}
	return nil
}

// Keys returns all stored key names.
func (s *Store) Keys() []string {
	rows, err := s.db.Query("SELECT key FROM annotations ORDER BY key")
	if err != nil {
		logger.Warn("listing keys: %v", err)
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			logger.Warn("scanning key: %v", err)
			continue
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		logger.Warn("listing keys: %v", err)
	}
	return keys
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}
