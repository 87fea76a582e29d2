package sidebar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/navbuilder/internal/docindex"
)

// fakeIndex is a canned document index for validation and resolution tests.
// InDirectory returns IDs in their final rendering order, as the real index
// contract requires.
type fakeIndex struct {
	docs map[string]bool
	dirs map[string][]string
}

func (f *fakeIndex) HasDocument(id string) bool {
	return f.docs[id]
}

func (f *fakeIndex) HasDirectory(dir string) bool {
	_, ok := f.dirs[dir]
	return ok
}

func (f *fakeIndex) InDirectory(dir string) []string {
	return f.dirs[dir]
}

func indexWith(docs ...string) *fakeIndex {
	f := &fakeIndex{docs: make(map[string]bool), dirs: make(map[string][]string)}
	for _, d := range docs {
		f.docs[d] = true
	}
	return f
}

func mustSet(t *testing.T, name string, items ...Node) *Set {
	t.Helper()
	set := NewSet()
	if err := set.Add(name, items); err != nil {
		t.Fatalf("build set: %v", err)
	}
	return set
}

func TestValidateSuccess(t *testing.T) {
	// Spec scenario: {docs: [Category{Build, [intro]}]} with "intro" indexed.
	set := mustSet(t, "docs", Category("Build", Doc("intro")))
	if err := Validate(set, indexWith("intro")); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestValidateUnknownDocument(t *testing.T) {
	set := mustSet(t, "docs", Doc("missing-page"))
	err := Validate(set, indexWith("intro"))

	var unknown *UnknownDocumentError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownDocumentError, got %v", err)
	}
	if unknown.DocumentID != "missing-page" {
		t.Errorf("error should name the offending id, got %q", unknown.DocumentID)
	}
	if unknown.Sidebar != "docs" {
		t.Errorf("error should name the sidebar, got %q", unknown.Sidebar)
	}
}

func TestValidateUnknownDocumentNested(t *testing.T) {
	set := mustSet(t, "docs", Category("Build", Category("Deep", Doc("nested/missing"))))
	var unknown *UnknownDocumentError
	if err := Validate(set, indexWith()); !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownDocumentError, got %v", err)
	}
}

func TestValidateUnknownDirectory(t *testing.T) {
	set := mustSet(t, "docs", Autogenerated("no-such-dir"))
	err := Validate(set, indexWith("intro"))

	var unknown *UnknownDirectoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownDirectoryError, got %v", err)
	}
	if unknown.Directory != "no-such-dir" {
		t.Errorf("error should name the directory, got %q", unknown.Directory)
	}
}

func TestValidateAutogeneratedEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "intro.md"), []byte("# Intro\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "guides"), 0o755); err != nil {
		t.Fatal(err)
	}
	index, err := docindex.NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	set := mustSet(t, "docs", Doc("intro"), Autogenerated("guides"))
	if err := Validate(set, index); err != nil {
		t.Fatalf("existing empty directory must validate: %v", err)
	}

	resolved := Resolve(set, index)
	if items := resolved.Items("docs"); len(items) != 1 || items[0].Kind != KindDoc {
		t.Errorf("empty group should expand to nothing: %v", items)
	}
}

func TestValidateAutogeneratedIndexOnlyDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "guides"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "guides", "index.md"), []byte("---\ntitle: Guides\n---\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	index, err := docindex.NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	set := mustSet(t, "docs", Autogenerated("guides"))
	if err := Validate(set, index); err != nil {
		t.Fatalf("directory holding only an index file must validate: %v", err)
	}
}

func TestValidateDuplicateSidebarName(t *testing.T) {
	set, err := ParseSpec([]byte("docs:\n  - intro\ndocs:\n  - other\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	verr := Validate(set, indexWith("intro", "other"))
	var dup *DuplicateSidebarNameError
	if !errors.As(verr, &dup) {
		t.Fatalf("expected DuplicateSidebarNameError, got %v", verr)
	}
	if dup.Name != "docs" {
		t.Errorf("error should name the sidebar, got %q", dup.Name)
	}
}

func TestValidateConflictingCollapseDefaults(t *testing.T) {
	open := Category("Build", Doc("intro"))
	closed := Category("Build", Doc("other"))
	closed.Collapsed = true

	set := NewSet()
	if err := set.Add("a", []Node{open}); err != nil {
		t.Fatal(err)
	}
	if err := set.Add("b", []Node{closed}); err != nil {
		t.Fatal(err)
	}

	err := Validate(set, indexWith("intro", "other"))
	var conflict *ConflictingCollapseError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictingCollapseError, got %v", err)
	}
	if conflict.Label != "Build" {
		t.Errorf("error should name the category, got %q", conflict.Label)
	}
}

func TestValidateAgreeingCollapseDefaults(t *testing.T) {
	a := Category("Build", Doc("intro"))
	b := Category("Build", Doc("other"))

	set := NewSet()
	if err := set.Add("a", []Node{a}); err != nil {
		t.Fatal(err)
	}
	if err := set.Add("b", []Node{b}); err != nil {
		t.Fatal(err)
	}
	if err := Validate(set, indexWith("intro", "other")); err != nil {
		t.Fatalf("same defaults must not conflict: %v", err)
	}
}

func TestValidateIsPure(t *testing.T) {
	set := mustSet(t, "docs", Category("Build", Doc("intro"), Autogenerated("guides")))
	index := indexWith("intro")
	index.dirs["guides"] = []string{"guides/a"}
	index.docs["guides/a"] = true

	if err := Validate(set, index); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	items := set.Items("docs")
	if len(items) != 1 || len(items[0].Items) != 2 || items[0].Items[1].Kind != KindAutogenerated {
		t.Error("validate must not mutate the set")
	}
}
