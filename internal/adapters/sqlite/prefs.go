package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vimbridge/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

// PreferenceStore implements ports.PreferenceStore using SQLite
type PreferenceStore struct {
	db     *sql.DB
	dbPath string
}

// Ensure PreferenceStore implements ports.PreferenceStore
var _ ports.PreferenceStore = (*PreferenceStore)(nil)

// Open opens (creating if needed) the preference database at dbPath
func Open(dbPath string) (*PreferenceStore, error) {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &PreferenceStore{db: db, dbPath: dbPath}, nil
}

// Path returns the database file location
func (s *PreferenceStore) Path() string {
	return s.dbPath
}

// Get returns the stored value for key, or def when the key is absent
func (s *PreferenceStore) Get(key, def string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores value under key, replacing any previous value
func (s *PreferenceStore) Set(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Close closes the database connection
func (s *PreferenceStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
