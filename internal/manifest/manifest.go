// Package manifest records one resolve run: what went in, what came out, and
// how it ended. The manifest is written next to the rendered output so
// operators can correlate a deployed navigation document with its inputs.
package manifest

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Status values for a resolve run.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ResolveManifest captures the inputs and outcome of one resolve run.
type ResolveManifest struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	SpecPath   string    `json:"spec_path"`
	SpecHash   string    `json:"spec_hash"`
	Sidebars   int       `json:"sidebars"`
	Documents  int       `json:"documents"`
	DurationMS int64     `json:"duration_ms"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
}

// New creates a manifest with a fresh run ID and the current timestamp.
func New(specPath string, specData []byte) *ResolveManifest {
	return &ResolveManifest{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		SpecPath:  specPath,
		SpecHash:  HashBytes(specData),
	}
}

// HashBytes returns the hex sha256 of data, prefixed with the algorithm.
func HashBytes(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}

// Complete marks the run finished and records its duration.
func (m *ResolveManifest) Complete(status string, started time.Time, err error) {
	m.Status = status
	m.DurationMS = time.Since(started).Milliseconds()
	if err != nil {
		m.Error = err.Error()
	}
}

// ToJSON serializes the manifest with stable indentation.
func (m *ResolveManifest) ToJSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// FromJSON deserializes a manifest.
func FromJSON(data []byte) (*ResolveManifest, error) {
	var m ResolveManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// FromJSONFile reads and deserializes a manifest file.
func FromJSONFile(path string) (*ResolveManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return FromJSON(data)
}

// WriteFile persists the manifest to path, creating parent directories.
func (m *ResolveManifest) WriteFile(path string) error {
	data, err := m.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
