package indexcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens (or creates) the cache database.
// Use ":memory:" for an in-memory database, or a file path for persistence.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		path TEXT PRIMARY KEY,
		document_id TEXT NOT NULL,
		title TEXT NOT NULL,
		slug TEXT NOT NULL DEFAULT '',
		position INTEGER,
		fingerprint TEXT NOT NULL,
		last_modified INTEGER NOT NULL DEFAULT 0,
		last_author TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_document_id ON entries(document_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Put inserts or replaces the entry for its path.
func (s *SQLiteStore) Put(ctx context.Context, entry CachedEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var position sql.NullInt64
	if entry.Position != nil {
		position = sql.NullInt64{Int64: int64(*entry.Position), Valid: true}
	}

	var lastModified int64
	if !entry.LastModified.IsZero() {
		lastModified = entry.LastModified.Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO entries
		 (path, document_id, title, slug, position, fingerprint, last_modified, last_author)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Path, entry.DocumentID, entry.Title, entry.Slug, position,
		entry.Fingerprint, lastModified, entry.LastAuthor,
	)
	if err != nil {
		return fmt.Errorf("put entry: %w", err)
	}
	return nil
}

// Get retrieves the entry for a path.
func (s *SQLiteStore) Get(ctx context.Context, path string) (CachedEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT path, document_id, title, slug, position, fingerprint, last_modified, last_author
		 FROM entries WHERE path = ?`, path)

	var entry CachedEntry
	var position sql.NullInt64
	var lastModified int64
	err := row.Scan(&entry.Path, &entry.DocumentID, &entry.Title, &entry.Slug,
		&position, &entry.Fingerprint, &lastModified, &entry.LastAuthor)
	if errors.Is(err, sql.ErrNoRows) {
		return CachedEntry{}, false, nil
	}
	if err != nil {
		return CachedEntry{}, false, fmt.Errorf("get entry: %w", err)
	}

	if position.Valid {
		p := int(position.Int64)
		entry.Position = &p
	}
	if lastModified > 0 {
		entry.LastModified = time.Unix(lastModified, 0).UTC()
	}
	return entry, true, nil
}

// Delete removes the entry for a path.
func (s *SQLiteStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE path = ?", path); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// Paths lists all cached paths in lexical order.
func (s *SQLiteStore) Paths(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT path FROM entries ORDER BY path")
	if err != nil {
		return nil, fmt.Errorf("list paths: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
