// Package readinglist answers whether an article has been saved to any of
// the user's reading lists. The game only uses this to annotate the day's
// articles; lookups are best effort and never block a load.
package readinglist

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Lookup reports reading-list membership for a page title.
type Lookup interface {
	IsSaved(ctx context.Context, title string) (bool, error)
}

// SQLiteLookup is a Lookup over a local sqlite reading-list database.
type SQLiteLookup struct {
	conn *sql.DB
}

// Open opens (or creates) the reading-list database at path.
func Open(path string) (*SQLiteLookup, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS reading_list_pages (
			title TEXT NOT NULL,
			list_name TEXT NOT NULL DEFAULT 'default',
			PRIMARY KEY (title, list_name)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating reading_list_pages table: %w", err)
	}

	return &SQLiteLookup{conn: db}, nil
}

// Close closes the underlying database.
func (l *SQLiteLookup) Close() error {
	return l.conn.Close()
}

// IsSaved reports whether the title appears in any reading list.
func (l *SQLiteLookup) IsSaved(ctx context.Context, title string) (bool, error) {
	var n int
	err := l.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reading_list_pages WHERE title = ?", title).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("querying reading lists: %w", err)
	}
	return n > 0, nil
}

// Save adds the title to a reading list.
func (l *SQLiteLookup) Save(ctx context.Context, title, listName string) error {
	if listName == "" {
		listName = "default"
	}
	_, err := l.conn.ExecContext(ctx,
		"INSERT OR IGNORE INTO reading_list_pages (title, list_name) VALUES (?, ?)",
		title, listName)
	if err != nil {
		return fmt.Errorf("saving page: %w", err)
	}
	return nil
}

// Remove drops the title from every reading list.
func (l *SQLiteLookup) Remove(ctx context.Context, title string) error {
	if _, err := l.conn.ExecContext(ctx,
		"DELETE FROM reading_list_pages WHERE title = ?", title); err != nil {
		return fmt.Errorf("removing page: %w", err)
	}
	return nil
}
