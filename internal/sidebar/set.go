package sidebar

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Set maps sidebar names to their top-level items. Declaration order of the
// names is preserved so emission stays diff-stable across runs.
type Set struct {
	names []string
	items map[string][]Node

	// duplicate names seen while decoding; surfaced by Validate rather than
	// silently letting a later mapping entry win.
	duplicates []string
}

// NewSet returns an empty sidebar set.
func NewSet() *Set {
	return &Set{items: make(map[string][]Node)}
}

// Add appends a named sidebar. Adding a name twice is an error.
func (s *Set) Add(name string, items []Node) error {
	if s.items == nil {
		s.items = make(map[string][]Node)
	}
	if _, exists := s.items[name]; exists {
		return &DuplicateSidebarNameError{Name: name}
	}
	s.names = append(s.names, name)
	s.items[name] = items
	return nil
}

// Names returns sidebar names in declaration order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Items returns the top-level items of the named sidebar (nil when absent).
func (s *Set) Items(name string) []Node {
	return s.items[name]
}

// Len returns the number of declared sidebars.
func (s *Set) Len() int { return len(s.names) }

// UnmarshalYAML decodes a mapping of sidebar name to item sequence,
// preserving declaration order. Duplicate names are recorded, not dropped;
// Validate reports them as configuration errors.
func (s *Set) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: sidebar specification must be a mapping of name to items", value.Line)
	}

	s.names = nil
	s.items = make(map[string][]Node)
	s.duplicates = nil

	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("line %d: sidebar name must be a string: %w", keyNode.Line, err)
		}

		var items []Node
		if err := valNode.Decode(&items); err != nil {
			return fmt.Errorf("sidebar %q: %w", name, err)
		}

		if _, exists := s.items[name]; exists {
			s.duplicates = append(s.duplicates, name)
			continue
		}
		s.names = append(s.names, name)
		s.items[name] = items
	}
	return nil
}

// MarshalYAML emits sidebars in declaration order.
func (s *Set) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range s.names {
		var keyNode yaml.Node
		if err := keyNode.Encode(name); err != nil {
			return nil, err
		}
		var valNode yaml.Node
		if err := valNode.Encode(s.items[name]); err != nil {
			return nil, err
		}
		root.Content = append(root.Content, &keyNode, &valNode)
	}
	return root, nil
}

// ParseSpec decodes a sidebar specification document.
func ParseSpec(data []byte) (*Set, error) {
	set := NewSet()
	if err := yaml.Unmarshal(data, set); err != nil {
		return nil, err
	}
	return set, nil
}
