package sidebar

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNodeDecodeShapes(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want Node
	}{
		{"scalar shorthand", `"intro"`, Doc("intro")},
		{"doc mapping", `{doc: guides/setup}`, Doc("guides/setup")},
		{"external link", `{label: GitHub, url: "https://github.com/x"}`, Link("GitHub", "https://github.com/x")},
		{"autogenerated", `{autogenerated: guides}`, Autogenerated("guides")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Node
			if err := yaml.Unmarshal([]byte(tc.yaml), &got); err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if got.Kind != tc.want.Kind || got.DocumentID != tc.want.DocumentID ||
				got.Label != tc.want.Label || got.URL != tc.want.URL || got.Directory != tc.want.Directory {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestNodeDecodeCategory(t *testing.T) {
	src := `
label: Build
collapsed: true
items:
  - intro
  - doc: guides/setup
`
	var got Node
	if err := yaml.Unmarshal([]byte(src), &got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Kind != KindCategory {
		t.Fatalf("expected category, got %s", got.Kind)
	}
	if !got.Collapsible {
		t.Error("collapsible should default to true")
	}
	if !got.Collapsed {
		t.Error("collapsed not honoured")
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	if got.Items[0].DocumentID != "intro" || got.Items[1].DocumentID != "guides/setup" {
		t.Errorf("item order not preserved: %+v", got.Items)
	}
}

func TestNodeDecodeInvalidShapes(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"empty scalar", `""`, "empty document id"},
		{"doc with url", `{doc: a, url: "https://x"}`, "cannot be combined"},
		{"url without label", `{url: "https://x"}`, "requires a label"},
		{"items without label", `{items: [a]}`, "requires a label"},
		{"declared kind", `{doc: a, kind: doc}`, "must not be set"},
		{"collapsed non-collapsible", `{label: L, collapsible: false, collapsed: true, items: [a]}`, "not collapsible"},
		{"sequence node", `[a, b]`, "must be a string or a mapping"},
		{"bare mapping", `{label: L}`, "unrecognized sidebar node shape"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Node
			err := yaml.Unmarshal([]byte(tc.yaml), &got)
			if err == nil {
				t.Fatalf("expected decode error, got %+v", got)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestNodeMarshalRoundTrip(t *testing.T) {
	orig := Category("Build", Doc("intro"), Link("GitHub", "https://github.com/x"), Autogenerated("guides"))

	data, err := yaml.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Node
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Kind != KindCategory || back.Label != "Build" || len(back.Items) != 3 {
		t.Errorf("round trip lost structure: %+v", back)
	}
	if back.Items[2].Directory != "guides" {
		t.Errorf("autogenerated directory lost: %+v", back.Items[2])
	}
}

func TestSetDecodePreservesOrder(t *testing.T) {
	src := `
zeta:
  - intro
alpha:
  - doc: other
`
	set, err := ParseSpec([]byte(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	names := set.Names()
	if len(names) != 2 || names[0] != "zeta" || names[1] != "alpha" {
		t.Errorf("declaration order not preserved: %v", names)
	}
}

func TestSetDecodeRecordsDuplicates(t *testing.T) {
	src := `
docs:
  - intro
docs:
  - other
`
	set, err := ParseSpec([]byte(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(set.duplicates) != 1 || set.duplicates[0] != "docs" {
		t.Errorf("duplicate not recorded: %v", set.duplicates)
	}
}

func TestSetAddRejectsDuplicate(t *testing.T) {
	set := NewSet()
	if err := set.Add("docs", []Node{Doc("intro")}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	err := set.Add("docs", []Node{Doc("other")})
	if err == nil {
		t.Fatal("expected duplicate error")
	}
	dup, ok := err.(*DuplicateSidebarNameError)
	if !ok || dup.Name != "docs" {
		t.Errorf("unexpected error: %v", err)
	}
}
