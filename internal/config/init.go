package config

import (
	"fmt"
	"os"
)

const exampleConfig = `# navbuilder configuration
title: Documentation
content_dir: docs
spec_path: sidebars.yaml

output:
  directory: ./site/nav
  write_html: true

watch:
  debounce: 300ms
  rescan_interval: 10m

metrics:
  enabled: false
  listen: ":9464"

events:
  enabled: false
  # url: nats://localhost:4222   # or NAVBUILDER_NATS_URL
  subject: navbuilder.resolve
`

const exampleSpec = `# Sidebar specification: named sidebars mapping to item trees.
docs:
  - intro
  - label: Guides
    collapsible: true
    items:
      - autogenerated: guides
  - label: GitHub
    url: https://github.com/example/project
`

// Init creates a starter configuration file and, when missing, a starter
// sidebar specification next to it.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	if _, err := os.Stat("sidebars.yaml"); os.IsNotExist(err) {
		if err := os.WriteFile("sidebars.yaml", []byte(exampleSpec), 0o644); err != nil {
			return fmt.Errorf("write sidebar spec: %w", err)
		}
	}
	return nil
}
