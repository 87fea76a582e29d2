package docindex

import "testing"

func TestFirstHeading(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"plain heading", "# Getting Started\n\nBody.\n", "Getting Started"},
		{"heading with emphasis", "# Getting *Started*\n", "Getting Started"},
		{"heading after text", "Intro paragraph.\n\n# Later Heading\n", "Later Heading"},
		{"level two only", "## Not a Title\n", ""},
		{"no heading", "just text\n", ""},
		{"empty body", "", ""},
		{"first of several", "# First\n\n# Second\n", "First"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := firstHeading([]byte(tc.body)); got != tc.want {
				t.Errorf("firstHeading(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

func TestPositionHint(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
		ok   bool
	}{
		{"int", 3, 3, true},
		{"float", 2.0, 2, true},
		{"string", "3", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := positionHint(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%s: positionHint(%v) = (%d, %v), want (%d, %v)", tc.name, tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFallbackTitle(t *testing.T) {
	cases := []struct{ id, want string }{
		{"guides/advanced-usage", "advanced usage"},
		{"intro", "intro"},
		{"a/b/snake_case", "snake case"},
	}
	for _, tc := range cases {
		if got := fallbackTitle(tc.id); got != tc.want {
			t.Errorf("fallbackTitle(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}
