// Package watch keeps the navigation output current: it re-runs the resolve
// pipeline when the sidebar specification or content tree changes, with a
// periodic full rescan as a safety net against missed filesystem events.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/navbuilder/internal/build"
	"git.home.luguber.info/inful/navbuilder/internal/config"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
)

// Watcher drives resolve runs from filesystem events and a periodic schedule.
type Watcher struct {
	cfg      *config.Config
	runner   *build.Runner
	notifier *Notifier // optional
}

// New creates a watcher. notifier may be nil.
func New(cfg *config.Config, runner *build.Runner, notifier *Notifier) *Watcher {
	return &Watcher{cfg: cfg, runner: runner, notifier: notifier}
}

// Run blocks until ctx is canceled. One resolve run happens immediately so
// the output exists before the first change arrives.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.cfg.SpecPath)); err != nil {
		return fmt.Errorf("watch spec dir: %w", err)
	}
	if err := addRecursive(fsw, w.cfg.ContentDir); err != nil {
		return fmt.Errorf("watch content dir: %w", err)
	}

	// Periodic full rescan catches anything fsnotify missed (editors doing
	// atomic renames, network filesystems).
	rescan := make(chan struct{}, 1)
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(w.cfg.RescanIntervalDuration()),
		gocron.NewTask(func() {
			select {
			case rescan <- struct{}{}:
			default:
			}
		}),
		gocron.WithName("periodic-rescan"),
	)
	if err != nil {
		return fmt.Errorf("schedule periodic rescan: %w", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			slog.Warn("Scheduler shutdown failed", logfields.Error(err))
		}
	}()

	w.runOnce(ctx)

	debounce := w.cfg.DebounceDuration()
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			slog.Info("Watch mode stopping")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				// New subdirectories must be watched too.
				_ = addRecursive(fsw, event.Name)
			}
			slog.Debug("Change detected", logfields.Path(event.Name), "op", event.Op.String())
			if pending {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer.Reset(debounce)
			pending = true

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))

		case <-timer.C:
			pending = false
			w.runOnce(ctx)

		case <-rescan:
			slog.Debug("Periodic rescan")
			w.runOnce(ctx)
		}
	}
}

// runOnce executes one resolve run; failures are logged, not fatal, so a bad
// edit can be corrected without restarting the watcher.
func (w *Watcher) runOnce(ctx context.Context) {
	result, err := w.runner.Run(ctx)
	if err != nil {
		slog.Error("Resolve run failed", logfields.Error(err))
		return
	}
	if w.notifier != nil {
		if err := w.notifier.PublishResolve(result.Manifest); err != nil {
			slog.Warn("Failed to publish resolve event", logfields.Error(err))
		}
	}
}

// relevant filters events down to the spec file, markdown content, and
// directory-level changes.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return false
	}
	if sameFile(event.Name, w.cfg.SpecPath) {
		return true
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx", ".markdown", "":
		return true
	}
	return false
}

func sameFile(a, b string) bool {
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	return err1 == nil && err2 == nil && aa == bb
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
