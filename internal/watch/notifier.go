package watch

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/manifest"
)

// Notifier publishes resolve events to NATS so downstream renderers can pick
// up fresh navigation documents without polling.
type Notifier struct {
	conn    *nats.Conn
	subject string
}

// NewNotifier connects to NATS. Callers own Close.
func NewNotifier(url, subject string) (*Notifier, error) {
	conn, err := nats.Connect(url, nats.Name("navbuilder"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	slog.Info("Event notifier connected", logfields.Subject(subject), "url", url)
	return &Notifier{conn: conn, subject: subject}, nil
}

// PublishResolve publishes the manifest of a completed run.
func (n *Notifier) PublishResolve(m *manifest.ResolveManifest) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal resolve event: %w", err)
	}
	if err := n.conn.Publish(n.subject, payload); err != nil {
		return fmt.Errorf("publish resolve event: %w", err)
	}
	slog.Debug("Resolve event published", logfields.Subject(n.subject), logfields.RunID(m.ID))
	return nil
}

// Close drains and closes the connection.
func (n *Notifier) Close() {
	if err := n.conn.Drain(); err != nil {
		slog.Warn("NATS drain failed", logfields.Error(err))
	}
}
