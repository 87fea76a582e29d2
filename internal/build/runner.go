// Package build orchestrates one resolve run: scan the content tree,
// validate the sidebar specification against the index, expand autogenerated
// groups, emit the renderer contract, and record a manifest.
package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	"git.home.luguber.info/inful/navbuilder/internal/docindex"
	navErrors "git.home.luguber.info/inful/navbuilder/internal/errors"
	"git.home.luguber.info/inful/navbuilder/internal/indexcache"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/manifest"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
	"git.home.luguber.info/inful/navbuilder/internal/navaudit"
	"git.home.luguber.info/inful/navbuilder/internal/render"
	"git.home.luguber.info/inful/navbuilder/internal/sidebar"
)

// Output file names under the configured output directory.
const (
	NavJSONFile  = "nav.json"
	NavHTMLFile  = "nav.html"
	ManifestFile = "manifest.json"
)

// Runner executes resolve runs for a fixed configuration.
type Runner struct {
	cfg   *config.Config
	rec   metrics.Recorder
	cache indexcache.Store // optional
}

// Result carries the artifacts of a successful run.
type Result struct {
	Manifest *manifest.ResolveManifest
	Index    *docindex.Index
	Resolved *sidebar.Set
}

// NewRunner creates a runner. rec may be nil (no metrics); cache may be nil
// (no fingerprint persistence).
func NewRunner(cfg *config.Config, rec metrics.Recorder, cache indexcache.Store) *Runner {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Runner{cfg: cfg, rec: rec, cache: cache}
}

// Validate parses the spec, scans the content tree, and runs validation only.
func (r *Runner) Validate(ctx context.Context) error {
	data, err := os.ReadFile(r.cfg.SpecPath)
	if err != nil {
		return navErrors.Wrap(err, navErrors.CategorySpec, navErrors.SeverityFatal, "read sidebar spec")
	}
	set, err := sidebar.ParseSpec(data)
	if err != nil {
		return navErrors.Wrap(err, navErrors.CategorySpec, navErrors.SeverityFatal, "parse sidebar spec")
	}

	index, err := r.scan()
	if err != nil {
		return err
	}
	return r.validate(set, index)
}

// Run executes a full resolve run and writes all artifacts.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	started := time.Now()

	data, err := os.ReadFile(r.cfg.SpecPath)
	if err != nil {
		return nil, navErrors.Wrap(err, navErrors.CategorySpec, navErrors.SeverityFatal, "read sidebar spec")
	}
	m := manifest.New(r.cfg.SpecPath, data)

	result, err := r.run(ctx, data, m)
	if err != nil {
		m.Complete(manifest.StatusFailed, started, err)
		r.rec.IncRunResult(metrics.ResultFailed)
		if werr := m.WriteFile(filepath.Join(r.cfg.Output.Directory, ManifestFile)); werr != nil {
			slog.Warn("Failed to persist failure manifest", logfields.Error(werr))
		}
		return nil, err
	}

	m.Complete(manifest.StatusSuccess, started, nil)
	if err := m.WriteFile(filepath.Join(r.cfg.Output.Directory, ManifestFile)); err != nil {
		return nil, navErrors.Wrap(err, navErrors.CategoryFileSystem, navErrors.SeverityFatal, "write manifest")
	}

	r.rec.IncRunResult(metrics.ResultSuccess)
	r.rec.ObserveResolveDuration(time.Since(started))
	slog.Info("Resolve run complete",
		logfields.RunID(m.ID),
		logfields.Count(result.Resolved.Len()),
		logfields.DurationMS(float64(m.DurationMS)))
	result.Manifest = m
	return result, nil
}

func (r *Runner) run(ctx context.Context, specData []byte, m *manifest.ResolveManifest) (*Result, error) {
	set, err := sidebar.ParseSpec(specData)
	if err != nil {
		return nil, navErrors.Wrap(err, navErrors.CategorySpec, navErrors.SeverityFatal, "parse sidebar spec")
	}

	index, err := r.scan()
	if err != nil {
		return nil, err
	}
	m.Documents = index.Len()
	m.Sidebars = set.Len()

	if err := r.validate(set, index); err != nil {
		return nil, err
	}

	resolved := sidebar.Resolve(set, index)
	r.rec.SetSidebars(resolved.Len())

	doc, err := render.Build(resolved, index)
	if err != nil {
		return nil, err
	}
	if err := r.emit(doc, index); err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.syncCache(ctx, index); err != nil {
			slog.Warn("Index cache sync failed", logfields.Error(err))
		}
	}

	return &Result{Index: index, Resolved: resolved}, nil
}

func (r *Runner) scan() (*docindex.Index, error) {
	start := time.Now()
	index, err := docindex.NewScanner(r.cfg.ContentDir).Scan()
	if err != nil {
		return nil, err
	}
	r.rec.ObserveScanDuration(time.Since(start))
	r.rec.SetDocumentsIndexed(index.Len())
	return index, nil
}

func (r *Runner) validate(set *sidebar.Set, index *docindex.Index) error {
	if err := sidebar.Validate(set, index); err != nil {
		r.rec.IncValidationFailure(failureKind(err))
		return navErrors.Wrap(err, navErrors.CategorySpec, navErrors.SeverityFatal, "sidebar validation failed")
	}
	return nil
}

func (r *Runner) emit(doc *render.Document, index *docindex.Index) error {
	outDir := r.cfg.Output.Directory
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return navErrors.Wrap(err, navErrors.CategoryFileSystem, navErrors.SeverityFatal, "create output directory")
	}

	jsonOut, err := doc.JSON()
	if err != nil {
		return navErrors.Wrap(err, navErrors.CategoryRender, navErrors.SeverityFatal, "marshal navigation document")
	}
	if err := os.WriteFile(filepath.Join(outDir, NavJSONFile), jsonOut, 0o644); err != nil {
		return navErrors.Wrap(err, navErrors.CategoryFileSystem, navErrors.SeverityFatal, "write navigation document")
	}

	if !r.cfg.Output.WriteHTML {
		return nil
	}

	fragment := doc.HTML()
	issues, err := navaudit.Audit(fragment, index)
	if err != nil {
		return navErrors.Wrap(err, navErrors.CategoryRender, navErrors.SeverityFatal, "audit nav fragment")
	}
	if len(issues) > 0 {
		return navErrors.New(navErrors.CategoryRender, navErrors.SeverityFatal,
			fmt.Sprintf("nav audit found %d dangling anchors (first: %s)", len(issues), issues[0]))
	}
	if err := os.WriteFile(filepath.Join(outDir, NavHTMLFile), []byte(fragment), 0o644); err != nil {
		return navErrors.Wrap(err, navErrors.CategoryFileSystem, navErrors.SeverityFatal, "write nav fragment")
	}
	return nil
}

// syncCache reconciles the cache with the scanned snapshot: upserts changed
// fingerprints and drops entries whose files are gone.
func (r *Runner) syncCache(ctx context.Context, index *docindex.Index) error {
	seen := make(map[string]struct{})
	for _, id := range index.Documents() {
		entry, _ := index.Lookup(id)
		seen[entry.Path] = struct{}{}

		cached, ok, err := r.cache.Get(ctx, entry.Path)
		if err != nil {
			return err
		}
		if ok && cached.Fingerprint == entry.Fingerprint {
			continue
		}
		if err := r.cache.Put(ctx, indexcache.CachedEntry{
			Path:         entry.Path,
			DocumentID:   entry.ID,
			Title:        entry.Title,
			Slug:         entry.Slug,
			Position:     entry.Position,
			Fingerprint:  entry.Fingerprint,
			LastModified: entry.LastModified,
			LastAuthor:   entry.LastAuthor,
		}); err != nil {
			return err
		}
	}

	paths, err := r.cache.Paths(ctx)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if _, ok := seen[p]; !ok {
			if err := r.cache.Delete(ctx, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// failureKind maps validation errors onto metric label values.
func failureKind(err error) string {
	var unknownDoc *sidebar.UnknownDocumentError
	var unknownDir *sidebar.UnknownDirectoryError
	var dupName *sidebar.DuplicateSidebarNameError
	var collapse *sidebar.ConflictingCollapseError
	switch {
	case errors.As(err, &unknownDoc):
		return "unknown_document"
	case errors.As(err, &unknownDir):
		return "unknown_directory"
	case errors.As(err, &dupName):
		return "duplicate_sidebar"
	case errors.As(err, &collapse):
		return "conflicting_collapse"
	}
	return "other"
}
