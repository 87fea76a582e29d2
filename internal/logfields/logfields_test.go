package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Sidebar", KeySidebar, "docs", Sidebar("docs")},
		{"Document", KeyDocument, "guides/setup", Document("guides/setup")},
		{"Directory", KeyDirectory, "guides", Directory("guides")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"File", KeyFile, "intro.md", File("intro.md")},
		{"RunID", KeyRunID, "run-1", RunID("run-1")},
		{"Stage", KeyStage, "scan", Stage("scan")},
		{"Subject", KeySubject, "navbuilder.resolve", Subject("navbuilder.resolve")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if a := Count(7); a.Key != KeyCount || a.Value.Int64() != 7 {
		t.Errorf("Count wrong: %v", a)
	}
	if a := DurationMS(12.5); a.Key != KeyDurationMS || a.Value.Float64() != 12.5 {
		t.Errorf("DurationMS wrong: %v", a)
	}
}

func TestErrorHelper(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Errorf("nil error should produce empty value: %v", a)
	}
	if a := Error(errors.New("boom")); a.Value.String() != "boom" {
		t.Errorf("error value wrong: %v", a)
	}
}
