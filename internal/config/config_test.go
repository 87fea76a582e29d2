package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "navbuilder.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "content_dir: docs\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.SpecPath != "sidebars.yaml" {
		t.Errorf("spec_path default wrong: %q", cfg.SpecPath)
	}
	if cfg.Output.Directory != "./site/nav" {
		t.Errorf("output default wrong: %q", cfg.Output.Directory)
	}
	if cfg.DebounceDuration() != 300*time.Millisecond {
		t.Errorf("debounce default wrong: %v", cfg.DebounceDuration())
	}
	if cfg.RescanIntervalDuration() != 10*time.Minute {
		t.Errorf("rescan default wrong: %v", cfg.RescanIntervalDuration())
	}
	if cfg.Metrics.Listen != ":9464" {
		t.Errorf("metrics listen default wrong: %q", cfg.Metrics.Listen)
	}
	if cfg.Events.Subject != "navbuilder.resolve" {
		t.Errorf("subject default wrong: %q", cfg.Events.Subject)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	path := writeConfig(t, `
title: My Docs
content_dir: content
spec_path: nav/sidebars.yaml
output:
  directory: ./out
  write_html: true
watch:
  debounce: 1s
  rescan_interval: 30m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Title != "My Docs" || cfg.ContentDir != "content" || cfg.SpecPath != "nav/sidebars.yaml" {
		t.Errorf("explicit values lost: %+v", cfg)
	}
	if !cfg.Output.WriteHTML {
		t.Error("write_html lost")
	}
	if cfg.DebounceDuration() != time.Second {
		t.Errorf("debounce = %v", cfg.DebounceDuration())
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	path := writeConfig(t, "watch:\n  debounce: soon\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(envNATSURL, "nats://override:4222")
	path := writeConfig(t, "events:\n  enabled: true\n  url: nats://file:4222\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Events.URL != "nats://override:4222" {
		t.Errorf("env override not applied: %q", cfg.Events.URL)
	}
}

func TestLoadEnvExpansion(t *testing.T) {
	t.Setenv("TEST_CONTENT_DIR", "expanded-docs")
	path := writeConfig(t, "content_dir: ${TEST_CONTENT_DIR}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ContentDir != "expanded-docs" {
		t.Errorf("env expansion not applied: %q", cfg.ContentDir)
	}
}

func TestEventsEnabledRequiresURL(t *testing.T) {
	path := writeConfig(t, "events:\n  enabled: true\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error when events enabled without url")
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	path := filepath.Join(dir, "navbuilder.yaml")
	if err := Init(path, false); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := Init(path, false); err == nil {
		t.Fatal("expected error without --force")
	}
	if err := Init(path, true); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.ContentDir != "docs" {
		t.Errorf("generated config unexpected: %+v", cfg)
	}
}
