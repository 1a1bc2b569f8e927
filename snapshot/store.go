package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	subwayplanner "github.com/theoremus-urban-solutions/subway-planner"
)

// Store is a single-row SQLite cache for the fetched subway dataset.
type Store struct {
	conn *sql.DB
}

// Open opens the cache database at path, creating the schema if needed.
func Open(path string) (*Store, error) {
	dsn := path + "?_journal=WAL&_busy_timeout=5000"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	// SQLite supports one writer; a single connection avoids lock churn.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping cache database: %w", err)
	}
	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		fetched_at TEXT NOT NULL,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.conn.Close() }

// Save replaces the cached dataset with a fresh one.
func (s *Store) Save(ctx context.Context, ds *subwayplanner.Dataset) error {
	payload, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO snapshots (id, fetched_at, payload) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			fetched_at = excluded.fetched_at,
			payload = excluded.payload
	`, now, payload)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load returns the cached dataset when one exists and is younger than
// maxAge (maxAge <= 0 disables the staleness check). The second return
// reports whether a usable snapshot was found; unreadable or corrupt rows
// count as a miss, not an error, so the caller simply refetches.
func (s *Store) Load(ctx context.Context, maxAge time.Duration) (*subwayplanner.Dataset, bool, error) {
	var fetchedAt string
	var payload []byte
	err := s.conn.QueryRowContext(ctx,
		`SELECT fetched_at, payload FROM snapshots WHERE id = 1`).Scan(&fetchedAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}
	ts, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, false, nil
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return nil, false, nil
	}
	var ds subwayplanner.Dataset
	if err := json.Unmarshal(payload, &ds); err != nil {
		return nil, false, nil
	}
	return &ds, true, nil
}

// Clear drops the cached dataset.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, `DELETE FROM snapshots`)
	if err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
