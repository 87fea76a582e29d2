package sidebar

import "fmt"

// UnknownDocumentError reports a doc link referencing a page the document
// index does not contain.
type UnknownDocumentError struct {
	DocumentID string
	Sidebar    string
}

func (e *UnknownDocumentError) Error() string {
	return fmt.Sprintf("sidebar %q references unknown document %q", e.Sidebar, e.DocumentID)
}

// UnknownDirectoryError reports an autogenerated group referencing a content
// directory that does not exist.
type UnknownDirectoryError struct {
	Directory string
	Sidebar   string
}

func (e *UnknownDirectoryError) Error() string {
	return fmt.Sprintf("sidebar %q references unknown content directory %q", e.Sidebar, e.Directory)
}

// DuplicateSidebarNameError reports two top-level sidebars sharing a name.
type DuplicateSidebarNameError struct {
	Name string
}

func (e *DuplicateSidebarNameError) Error() string {
	return fmt.Sprintf("duplicate sidebar name %q", e.Name)
}

// ConflictingCollapseError reports the same category label declared with
// different collapse defaults. No precedence order is defined, so the
// specification must be corrected rather than merged.
type ConflictingCollapseError struct {
	Label string
}

func (e *ConflictingCollapseError) Error() string {
	return fmt.Sprintf("category %q declares conflicting collapsed defaults", e.Label)
}
