package sidebar

// DocumentIndex is the content-scanning collaborator consulted during
// validation and resolution. Implementations must return InDirectory results
// in their final rendering order (position hints applied, deterministic for a
// fixed content snapshot).
type DocumentIndex interface {
	HasDocument(id string) bool
	HasDirectory(dir string) bool
	InDirectory(dir string) []string
}

// Validate checks a sidebar set against the document index. It is a pure
// check: no expansion happens and neither argument is mutated. All failures
// are fatal build-time configuration errors.
//
// Checks, in order: duplicate sidebar names, then per sidebar in declaration
// order a depth-first pass verifying every doc link resolves, every
// autogenerated directory exists, and category collapse defaults do not
// conflict across the whole set.
func Validate(set *Set, index DocumentIndex) error {
	if len(set.duplicates) > 0 {
		return &DuplicateSidebarNameError{Name: set.duplicates[0]}
	}

	collapsed := make(map[string]bool)
	for _, name := range set.names {
		for _, node := range set.items[name] {
			if err := validateNode(node, name, index, collapsed); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateNode(n Node, sidebar string, index DocumentIndex, collapsed map[string]bool) error {
	switch n.Kind {
	case KindDoc:
		if !index.HasDocument(n.DocumentID) {
			return &UnknownDocumentError{DocumentID: n.DocumentID, Sidebar: sidebar}
		}
	case KindAutogenerated:
		if !index.HasDirectory(n.Directory) {
			return &UnknownDirectoryError{Directory: n.Directory, Sidebar: sidebar}
		}
	case KindCategory:
		if prev, seen := collapsed[n.Label]; seen && prev != n.Collapsed {
			return &ConflictingCollapseError{Label: n.Label}
		}
		collapsed[n.Label] = n.Collapsed
		for _, item := range n.Items {
			if err := validateNode(item, sidebar, index, collapsed); err != nil {
				return err
			}
		}
	}
	return nil
}
