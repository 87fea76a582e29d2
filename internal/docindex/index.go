// Package docindex builds the document index: the content-scanning
// collaborator supplying document existence, titles, and ordering hints to
// sidebar validation and resolution.
package docindex

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Entry describes one indexed content page.
type Entry struct {
	ID          string // slash-separated relative path without extension
	Title       string
	Slug        string // optional front matter slug override for hrefs
	Position    *int   // sidebar_position hint, nil when absent
	Path        string // path relative to the content root
	Fingerprint string // mdfp content fingerprint

	// Best-effort git metadata, zero when the content root is not a work tree.
	LastModified time.Time
	LastAuthor   string
}

// Index is an immutable snapshot of the scanned content tree.
type Index struct {
	entries map[string]*Entry
	order   []string            // all document IDs in rendering order
	dirs    map[string][]string // directory -> ordered descendant doc IDs
	dirSet  map[string]struct{} // every content subdirectory, documents or not
}

// NewIndex builds an index from scanned entries. dirs names the content
// subdirectories that exist on disk, so directories without any markdown (or
// holding only an index file) are still known. Rendering order is ascending
// position hint (absent hints last), ties broken by collated document ID so
// numeric segments sort naturally (doc2 before doc10).
func NewIndex(entries []*Entry, dirs ...string) *Index {
	ix := &Index{
		entries: make(map[string]*Entry, len(entries)),
		dirs:    make(map[string][]string),
		dirSet:  make(map[string]struct{}, len(dirs)),
	}
	for _, d := range dirs {
		for ; d != ""; d = parentDir(d) {
			ix.dirSet[d] = struct{}{}
		}
	}

	sorted := append([]*Entry(nil), entries...)
	col := collate.New(language.Und, collate.Numeric)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j], col)
	})

	for _, e := range sorted {
		if _, dup := ix.entries[e.ID]; dup {
			continue
		}
		ix.entries[e.ID] = e
		ix.order = append(ix.order, e.ID)
		for dir := parentDir(e.ID); dir != ""; dir = parentDir(dir) {
			ix.dirs[dir] = append(ix.dirs[dir], e.ID)
			ix.dirSet[dir] = struct{}{}
		}
	}
	return ix
}

func less(a, b *Entry, col *collate.Collator) bool {
	switch {
	case a.Position != nil && b.Position != nil:
		if *a.Position != *b.Position {
			return *a.Position < *b.Position
		}
	case a.Position != nil:
		return true
	case b.Position != nil:
		return false
	}
	return col.CompareString(a.ID, b.ID) < 0
}

func parentDir(id string) string {
	idx := strings.LastIndex(id, "/")
	if idx < 0 {
		return ""
	}
	return id[:idx]
}

// HasDocument reports whether the given document ID is indexed.
func (ix *Index) HasDocument(id string) bool {
	_, ok := ix.entries[id]
	return ok
}

// HasDirectory reports whether dir is a known content subdirectory. A
// directory holding no documents exists all the same.
func (ix *Index) HasDirectory(dir string) bool {
	_, ok := ix.dirSet[dir]
	return ok
}

// InDirectory returns the IDs of all documents under dir in rendering order.
// A known but empty directory yields an empty list.
func (ix *Index) InDirectory(dir string) []string {
	return append([]string(nil), ix.dirs[dir]...)
}

// Lookup returns the entry for a document ID.
func (ix *Index) Lookup(id string) (*Entry, bool) {
	e, ok := ix.entries[id]
	return e, ok
}

// Documents returns all document IDs in rendering order.
func (ix *Index) Documents() []string {
	return append([]string(nil), ix.order...)
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int { return len(ix.order) }
