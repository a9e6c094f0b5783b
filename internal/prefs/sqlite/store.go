// Package sqlite persists visitor display preferences in a local SQLite
// file, the portal's stand-in for the browser-local storage the service
// otherwise has no say over. It never stores booking data.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/roomportal/internal/prefs"
	_ "modernc.org/sqlite"
)

// Store implements prefs.Repository on a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the preference database at the given
// DSN, e.g. "file:portal.db?_foreign_keys=on".
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("prefs: open sqlite store: %w", err)
	}
	// modernc sqlite serialises writes itself, but a single connection keeps
	// "database is locked" errors out of the request path.
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// Migrate creates the schema when missing.
func (s *Store) Migrate(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS preferences (
			visitor_id    TEXT PRIMARY KEY,
			language      TEXT    NOT NULL,
			high_contrast INTEGER NOT NULL,
			font_size     INTEGER NOT NULL,
			updated_at    TEXT    NOT NULL
		)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("prefs: migrate schema: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get loads the preferences for a visitor.
func (s *Store) Get(ctx context.Context, visitorID string) (prefs.Preferences, bool, error) {
	const query = `
		SELECT language, high_contrast, font_size
		FROM preferences
		WHERE visitor_id = ?`

	var p prefs.Preferences
	var contrast int
	err := s.db.QueryRowContext(ctx, query, visitorID).Scan(&p.Language, &contrast, &p.FontSize)
	if errors.Is(err, sql.ErrNoRows) {
		return prefs.Preferences{}, false, nil
	}
	if err != nil {
		return prefs.Preferences{}, false, fmt.Errorf("prefs: load visitor %s: %w", visitorID, err)
	}
	p.HighContrast = contrast != 0
	return p, true, nil
}

// Put upserts the preferences for a visitor.
func (s *Store) Put(ctx context.Context, visitorID string, p prefs.Preferences) error {
	const query = `
		INSERT INTO preferences (visitor_id, language, high_contrast, font_size, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(visitor_id) DO UPDATE SET
			language      = excluded.language,
			high_contrast = excluded.high_contrast,
			font_size     = excluded.font_size,
			updated_at    = excluded.updated_at`

	contrast := 0
	if p.HighContrast {
		contrast = 1
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, query, visitorID, p.Language, contrast, p.FontSize, now); err != nil {
		return fmt.Errorf("prefs: store visitor %s: %w", visitorID, err)
	}
	return nil
}
