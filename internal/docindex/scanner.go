package docindex

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inful/mdfp"

	navErrors "git.home.luguber.info/inful/navbuilder/internal/errors"
	"git.home.luguber.info/inful/navbuilder/internal/frontmatter"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
)

// Front matter keys consulted by the scanner.
const (
	fieldTitle    = "title"
	fieldSlug     = "slug"
	fieldPosition = "sidebar_position"
)

// Scanner walks a content root and produces the document index.
type Scanner struct {
	root string
	git  *gitMeta
}

// NewScanner creates a scanner for the given content root. Git metadata is
// attached when the root lives inside a git work tree.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root, git: openGitMeta(root)}
}

// Scan walks the content root once and returns an immutable index snapshot.
func (s *Scanner) Scan() (*Index, error) {
	start := time.Now()

	info, err := os.Stat(s.root)
	if err != nil {
		return nil, navErrors.Wrap(err, navErrors.CategoryFileSystem, navErrors.SeverityFatal,
			fmt.Sprintf("content root %q not accessible", s.root))
	}
	if !info.IsDir() {
		return nil, navErrors.New(navErrors.CategoryFileSystem, navErrors.SeverityFatal,
			fmt.Sprintf("content root %q is not a directory", s.root))
	}

	var entries []*Entry
	var dirs []string
	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path == s.root {
				return nil
			}
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
			rel, err := filepath.Rel(s.root, path)
			if err != nil {
				return err
			}
			dirs = append(dirs, filepath.ToSlash(rel))
			return nil
		}
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || !isMarkdownFile(name) {
			return nil
		}

		entry, err := s.scanFile(path)
		if err != nil {
			slog.Warn("Skipping unreadable document", logfields.Path(path), logfields.Error(err))
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, navErrors.Wrap(err, navErrors.CategoryIndex, navErrors.SeverityFatal, "content walk failed")
	}

	ix := NewIndex(entries, dirs...)
	slog.Info("Content indexed",
		logfields.Path(s.root),
		logfields.Count(ix.Len()),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return ix, nil
}

func (s *Scanner) scanFile(path string) (*Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	meta, body, _, err := frontmatter.Split(content)
	if err != nil {
		return nil, fmt.Errorf("split frontmatter: %w", err)
	}
	fields, err := frontmatter.Parse(meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	entry := &Entry{
		ID:          documentID(rel),
		Path:        rel,
		Fingerprint: mdfp.CalculateFingerprintFromParts(string(meta), string(body)),
	}

	if title, ok := fields[fieldTitle].(string); ok && title != "" {
		entry.Title = title
	} else if heading := firstHeading(body); heading != "" {
		entry.Title = heading
	} else {
		entry.Title = fallbackTitle(entry.ID)
	}

	if slug, ok := fields[fieldSlug].(string); ok {
		entry.Slug = slug
	}
	if pos, ok := positionHint(fields[fieldPosition]); ok {
		entry.Position = &pos
	}

	if s.git != nil {
		if when, author, ok := s.git.lastChange(path); ok {
			entry.LastModified = when
			entry.LastAuthor = author
		}
	}

	return entry, nil
}

// documentID derives the stable identifier from the relative path: slashes,
// no extension. An index file stands for its directory.
func documentID(rel string) string {
	id := strings.TrimSuffix(rel, filepath.Ext(rel))
	if strings.HasSuffix(id, "/index") {
		return strings.TrimSuffix(id, "/index")
	}
	return id
}

func fallbackTitle(id string) string {
	base := id
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		base = id[idx+1:]
	}
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	return strings.TrimSpace(base)
}

func positionHint(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func isMarkdownFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx", ".markdown":
		return true
	}
	return false
}
