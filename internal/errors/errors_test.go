package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CategorySpec, SeverityFatal, "bad spec")
	if got := err.Error(); !strings.Contains(got, "spec (fatal): bad spec") {
		t.Errorf("unexpected format: %q", got)
	}

	wrapped := Wrap(stderrors.New("root cause"), CategoryIndex, SeverityError, "scan failed")
	if got := wrapped.Error(); !strings.Contains(got, "root cause") {
		t.Errorf("cause not included: %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("io failure")
	err := Wrap(cause, CategoryFileSystem, SeverityFatal, "read failed")
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestWithContext(t *testing.T) {
	err := SpecError("dangling reference").
		WithContext("document", "missing-page").
		WithContext("sidebar", "docs")
	if err.Context["document"] != "missing-page" || err.Context["sidebar"] != "docs" {
		t.Errorf("context lost: %+v", err.Context)
	}
}

func TestCategoryHelpers(t *testing.T) {
	err := ConfigError("broken")
	if !IsCategory(err, CategoryConfig) {
		t.Error("IsCategory failed for NavError")
	}
	if IsCategory(stderrors.New("plain"), CategoryConfig) {
		t.Error("IsCategory matched a plain error")
	}
	if GetCategory(stderrors.New("plain")) != CategoryInternal {
		t.Error("plain errors should map to internal")
	}
	if GetCategory(err) != CategoryConfig {
		t.Error("GetCategory lost the category")
	}
}
