package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Storage keys. The blob and preference keys keep the names the original
// browser version used in localStorage so an imported dump reads as-is.
const (
	KeyData       = "shopping-data"
	KeyLegacyList = "shopping-list-items"
	KeyLanguage   = "shopping-list-lang"
	KeyTheme      = "shopping-list-theme"
	KeySort       = "shopping-list-sort"
)

// Backend is a string key-value store. Get reports absence via the bool
// rather than an error; missing keys are an expected state, not a failure.
type Backend interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// SQLite is a Backend over the kv table.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
