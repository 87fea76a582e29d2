// Package indexcache persists document-index entries between runs so watch
// mode can skip re-parsing files whose content fingerprint is unchanged.
package indexcache

import (
	"context"
	"time"
)

// CachedEntry is the persisted subset of a document-index entry.
type CachedEntry struct {
	Path         string
	DocumentID   string
	Title        string
	Slug         string
	Position     *int
	Fingerprint  string
	LastModified time.Time
	LastAuthor   string
}

// Store defines the persistence interface for cached index entries.
type Store interface {
	// Put inserts or replaces the entry for its path.
	Put(ctx context.Context, entry CachedEntry) error

	// Get retrieves the entry for a path; ok is false when absent.
	Get(ctx context.Context, path string) (CachedEntry, bool, error)

	// Delete removes the entry for a path.
	Delete(ctx context.Context, path string) error

	// Paths lists all cached paths.
	Paths(ctx context.Context) ([]string, error)

	// Close closes the store and releases resources.
	Close() error
}
