// Package store persists the application snapshot in a local SQLite file.
// The in-memory state is the source of truth; Save rewrites the collections
// wholesale after each committed mutation, so the schema never needs to
// express partial updates.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultTimeout = 5 * time.Second

// Store wraps the SQLite handle.
type Store struct {
	DB *sql.DB
}

// Open opens (or creates) the database file and ensures the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}
	s := &Store{DB: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying handle.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}

func (s *Store) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS income_sources (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			kind TEXT DEFAULT '',
			owner TEXT DEFAULT '',
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS income_amounts (
			source_id TEXT NOT NULL,
			month TEXT NOT NULL,
			amount TEXT NOT NULL,
			PRIMARY KEY (source_id, month),
			FOREIGN KEY (source_id) REFERENCES income_sources(id)
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			month TEXT NOT NULL,
			amount TEXT NOT NULL,
			actual_amount TEXT,
			category TEXT NOT NULL,
			note TEXT DEFAULT '',
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			event_id TEXT,
			title TEXT NOT NULL,
			description TEXT DEFAULT '',
			assignee TEXT NOT NULL,
			budget TEXT NOT NULL,
			status TEXT NOT NULL,
			linked_event_id TEXT DEFAULT '',
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS checklist_items (
			id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL,
			text TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL,
			FOREIGN KEY (task_id) REFERENCES tasks(id)
		);`,
		`CREATE TABLE IF NOT EXISTS badminton_months (
			month TEXT PRIMARY KEY,
			is_selected INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS badminton_sessions (
			id TEXT PRIMARY KEY,
			month TEXT NOT NULL,
			hourly_rate TEXT NOT NULL,
			courts INTEGER NOT NULL,
			hours TEXT NOT NULL,
			position INTEGER NOT NULL
		);`,
	}

	ctx, cancel := s.withTimeout(ctx, defaultTimeout)
	defer cancel()
	for _, q := range queries {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// migrate handles older database shapes. The pre-session badminton schema
// stored a flat hours figure per month; there is no way to recover session
// rows from it, so the whole config is discarded and recreated empty.
// Column additions are best-effort, matching how the schema has grown.
func (s *Store) migrate(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx, defaultTimeout)
	defer cancel()

	hasMonths, err := s.tableExists(ctx, "badminton_months")
	if err != nil {
		return err
	}
	hasSessions, err := s.tableExists(ctx, "badminton_sessions")
	if err != nil {
		return err
	}
	if hasMonths && !hasSessions {
		if _, err := s.DB.ExecContext(ctx, "DROP TABLE badminton_months"); err != nil {
			return fmt.Errorf("reset legacy badminton config: %w", err)
		}
	}

	_, _ = s.DB.ExecContext(ctx, "ALTER TABLE events ADD COLUMN note TEXT DEFAULT ''")
	_, _ = s.DB.ExecContext(ctx, "ALTER TABLE tasks ADD COLUMN linked_event_id TEXT DEFAULT ''")
	_, _ = s.DB.ExecContext(ctx, "ALTER TABLE income_sources ADD COLUMN kind TEXT DEFAULT ''")
	_, _ = s.DB.ExecContext(ctx, "ALTER TABLE income_sources ADD COLUMN owner TEXT DEFAULT ''")
	return nil
}

func (s *Store) tableExists(ctx context.Context, name string) (bool, error) {
	var n int
	err := s.DB.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", name, err)
	}
	return n > 0, nil
}

// GetSetting reads one settings row.
func (s *Store) GetSetting(ctx context.Context, key string) (string, bool) {
	ctx, cancel := s.withTimeout(ctx, defaultTimeout)
	defer cancel()
	var value *string
	err := s.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil || value == nil {
		return "", false
	}
	return *value, true
}

// SetSetting upserts one settings row.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	ctx, cancel := s.withTimeout(ctx, defaultTimeout)
	defer cancel()
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}
