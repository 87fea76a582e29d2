package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/navbuilder/internal/build"
	"git.home.luguber.info/inful/navbuilder/internal/config"
	"git.home.luguber.info/inful/navbuilder/internal/indexcache"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
	"git.home.luguber.info/inful/navbuilder/internal/watch"
)

const cacheFileName = ".index-cache.db"

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"navbuilder.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file and starter sidebar spec"`

	Validate struct{} `cmd:"" help:"Validate the sidebar specification against the content tree"`

	Build struct{} `cmd:"" help:"Resolve sidebars and write the navigation output"`

	Watch struct{} `cmd:"" help:"Watch the spec and content tree, re-resolving on change"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Configuration created", "path", CLI.Config)

	case "validate":
		cfg := mustLoadConfig()
		runner := build.NewRunner(cfg, nil, nil)
		if err := runner.Validate(context.Background()); err != nil {
			slog.Error("Validation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Sidebar specification is valid")

	case "build":
		cfg := mustLoadConfig()
		cache := openCache(cfg)
		if cache != nil {
			defer cache.Close()
		}
		runner := build.NewRunner(cfg, nil, cache)
		if _, err := runner.Run(context.Background()); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}

	case "watch":
		cfg := mustLoadConfig()
		if err := runWatch(cfg); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
	}
}

func mustLoadConfig() *config.Config {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// openCache opens the index cache under the output directory. A cache failure
// degrades to uncached runs rather than aborting.
func openCache(cfg *config.Config) indexcache.Store {
	if err := os.MkdirAll(cfg.Output.Directory, 0o755); err != nil {
		slog.Warn("Cannot create output directory for cache", "error", err)
		return nil
	}
	cache, err := indexcache.NewSQLiteStore(filepath.Join(cfg.Output.Directory, cacheFileName))
	if err != nil {
		slog.Warn("Index cache unavailable", "error", err)
		return nil
	}
	return cache
}

func runWatch(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var rec metrics.Recorder
	if cfg.Metrics.Enabled {
		reg := prom.NewRegistry()
		rec = metrics.NewPrometheusRecorder(reg)
		srv := metrics.NewServer(cfg.Metrics.Listen, reg)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	var notifier *watch.Notifier
	if cfg.Events.Enabled {
		n, err := watch.NewNotifier(cfg.Events.URL, cfg.Events.Subject)
		if err != nil {
			return err
		}
		notifier = n
		defer notifier.Close()
	}

	cache := openCache(cfg)
	if cache != nil {
		defer cache.Close()
	}

	runner := build.NewRunner(cfg, rec, cache)
	return watch.New(cfg, runner, notifier).Run(ctx)
}
