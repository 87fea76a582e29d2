// Package config loads and normalizes the navbuilder configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Title      string        `yaml:"title,omitempty"`
	ContentDir string        `yaml:"content_dir"`
	SpecPath   string        `yaml:"spec_path"`
	Output     OutputConfig  `yaml:"output"`
	Watch      WatchConfig   `yaml:"watch,omitempty"`
	Metrics    MetricsConfig `yaml:"metrics,omitempty"`
	Events     EventsConfig  `yaml:"events,omitempty"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	WriteHTML bool   `yaml:"write_html,omitempty"` // also emit the HTML nav fragment
}

// WatchConfig holds watch-mode tuning knobs. Durations are YAML strings
// (e.g. "300ms", "10m") validated during normalization.
type WatchConfig struct {
	Debounce       string `yaml:"debounce,omitempty"`
	RescanInterval string `yaml:"rescan_interval,omitempty"`
}

// MetricsConfig controls the Prometheus exposition endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Listen  string `yaml:"listen,omitempty"`
}

// EventsConfig controls NATS publication of resolve events in watch mode.
type EventsConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	URL     string `yaml:"url,omitempty"`
	Subject string `yaml:"subject,omitempty"`
}

// Environment variable overrides applied after the .env overlay.
const (
	envNATSURL       = "NAVBUILDER_NATS_URL"
	envMetricsListen = "NAVBUILDER_METRICS_LISTEN"
)

// Load loads configuration from the specified file, overlaying .env files and
// environment overrides, then applies defaults.
func Load(configPath string) (*Config, error) {
	// Overlay .env files without overriding the process environment.
	_ = godotenv.Load(".env", ".env.local")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand ${VAR} references so secrets stay out of the file.
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if url := os.Getenv(envNATSURL); url != "" {
		cfg.Events.URL = url
	}
	if listen := os.Getenv(envMetricsListen); listen != "" {
		cfg.Metrics.Listen = listen
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize applies defaults and validates duration strings.
func (c *Config) normalize() error {
	if c.Title == "" {
		c.Title = "Documentation"
	}
	if c.ContentDir == "" {
		c.ContentDir = "docs"
	}
	if c.SpecPath == "" {
		c.SpecPath = "sidebars.yaml"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./site/nav"
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = "300ms"
	}
	if c.Watch.RescanInterval == "" {
		c.Watch.RescanInterval = "10m"
	}
	if c.Metrics.Listen == "" {
		c.Metrics.Listen = ":9464"
	}
	if c.Events.Subject == "" {
		c.Events.Subject = "navbuilder.resolve"
	}

	if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
		return fmt.Errorf("invalid watch.debounce %q: %w", c.Watch.Debounce, err)
	}
	if _, err := time.ParseDuration(c.Watch.RescanInterval); err != nil {
		return fmt.Errorf("invalid watch.rescan_interval %q: %w", c.Watch.RescanInterval, err)
	}
	if c.Events.Enabled && c.Events.URL == "" {
		return fmt.Errorf("events.enabled requires events.url (or %s)", envNATSURL)
	}
	return nil
}

// DebounceDuration returns the parsed watch debounce.
func (c *Config) DebounceDuration() time.Duration {
	d, _ := time.ParseDuration(c.Watch.Debounce)
	return d
}

// RescanIntervalDuration returns the parsed periodic rescan interval.
func (c *Config) RescanIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.Watch.RescanInterval)
	return d
}
