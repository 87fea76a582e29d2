// Package sidebar models the declarative navigation specification of a
// documentation site: named sidebars containing doc links, external links,
// nested categories, and autogenerated groups expanded from content
// directories at build time.
package sidebar

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// NodeKind discriminates the sidebar node union (stringly for YAML/JSON compatibility).
type NodeKind string

const (
	KindDoc           NodeKind = "doc"
	KindLink          NodeKind = "link"
	KindCategory      NodeKind = "category"
	KindAutogenerated NodeKind = "autogenerated"
)

// Node is one entry in a sidebar tree. Exactly one variant is populated,
// selected by Kind. Categories nest strictly downward; the structure is a
// tree, never a graph.
type Node struct {
	Kind NodeKind `yaml:"-" json:"kind"`

	// KindDoc
	DocumentID string `yaml:"doc,omitempty" json:"doc,omitempty"`

	// KindLink and KindCategory
	Label string `yaml:"label,omitempty" json:"label,omitempty"`

	// KindLink
	URL string `yaml:"url,omitempty" json:"url,omitempty"`

	// KindCategory
	Collapsible bool   `yaml:"collapsible,omitempty" json:"collapsible,omitempty"`
	Collapsed   bool   `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items       []Node `yaml:"items,omitempty" json:"items,omitempty"`

	// KindAutogenerated
	Directory string `yaml:"autogenerated,omitempty" json:"directory,omitempty"`
}

// Doc constructs a doc-link node.
func Doc(documentID string) Node {
	return Node{Kind: KindDoc, DocumentID: documentID}
}

// Link constructs an external-link node.
func Link(label, url string) Node {
	return Node{Kind: KindLink, Label: label, URL: url}
}

// Category constructs a collapsible category node with the given items.
func Category(label string, items ...Node) Node {
	return Node{Kind: KindCategory, Label: label, Collapsible: true, Items: items}
}

// Autogenerated constructs a placeholder expanded from a content directory.
func Autogenerated(directory string) Node {
	return Node{Kind: KindAutogenerated, Directory: directory}
}

// nodeDoc mirrors the YAML mapping shapes a Node may take. Which variant a
// mapping denotes is decided by the keys present, so invalid shapes are
// rejected at decode time rather than at render time.
type nodeDoc struct {
	Doc           string    `yaml:"doc"`
	Label         string    `yaml:"label"`
	URL           string    `yaml:"url"`
	Collapsible   *bool     `yaml:"collapsible"`
	Collapsed     *bool     `yaml:"collapsed"`
	Items         []Node    `yaml:"items"`
	Autogenerated string    `yaml:"autogenerated"`
	Kind          yaml.Node `yaml:"kind"` // rejected: kind is derived, never declared
}

// UnmarshalYAML decodes one sidebar node. Supported shapes:
//
//	"intro"                          -> doc link (shorthand)
//	{doc: intro}                     -> doc link
//	{label: L, url: U}               -> external link
//	{label: L, items: [...]}         -> category (collapsible defaults true)
//	{autogenerated: dir}             -> autogenerated group
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var id string
		if err := value.Decode(&id); err != nil {
			return err
		}
		if id == "" {
			return fmt.Errorf("line %d: empty document id", value.Line)
		}
		*n = Doc(id)
		return nil
	}

	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: sidebar node must be a string or a mapping", value.Line)
	}

	var doc nodeDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	if !doc.Kind.IsZero() {
		return fmt.Errorf("line %d: 'kind' is derived from the node shape and must not be set", value.Line)
	}

	switch {
	case doc.Doc != "":
		if doc.URL != "" || doc.Autogenerated != "" || len(doc.Items) > 0 {
			return fmt.Errorf("line %d: 'doc' cannot be combined with url, items, or autogenerated", value.Line)
		}
		*n = Doc(doc.Doc)
		return nil

	case doc.Autogenerated != "":
		if doc.URL != "" || len(doc.Items) > 0 {
			return fmt.Errorf("line %d: 'autogenerated' cannot be combined with url or items", value.Line)
		}
		*n = Autogenerated(doc.Autogenerated)
		return nil

	case doc.URL != "":
		if doc.Label == "" {
			return fmt.Errorf("line %d: external link requires a label", value.Line)
		}
		if len(doc.Items) > 0 {
			return fmt.Errorf("line %d: external link cannot carry items", value.Line)
		}
		*n = Link(doc.Label, doc.URL)
		return nil

	case doc.Items != nil:
		if doc.Label == "" {
			return fmt.Errorf("line %d: category requires a label", value.Line)
		}
		cat := Category(doc.Label, doc.Items...)
		if doc.Collapsible != nil {
			cat.Collapsible = *doc.Collapsible
		}
		if doc.Collapsed != nil {
			cat.Collapsed = *doc.Collapsed
		}
		if cat.Collapsed && !cat.Collapsible {
			return fmt.Errorf("line %d: category %q is collapsed but not collapsible", value.Line, cat.Label)
		}
		*n = cat
		return nil
	}

	return fmt.Errorf("line %d: unrecognized sidebar node shape (need doc, url, items, or autogenerated)", value.Line)
}

// MarshalYAML emits the same shapes UnmarshalYAML accepts.
func (n Node) MarshalYAML() (any, error) {
	switch n.Kind {
	case KindDoc:
		return n.DocumentID, nil
	case KindLink:
		return map[string]string{"label": n.Label, "url": n.URL}, nil
	case KindAutogenerated:
		return map[string]string{"autogenerated": n.Directory}, nil
	case KindCategory:
		type cat struct {
			Label       string `yaml:"label"`
			Collapsible bool   `yaml:"collapsible"`
			Collapsed   bool   `yaml:"collapsed,omitempty"`
			Items       []Node `yaml:"items"`
		}
		return cat{Label: n.Label, Collapsible: n.Collapsible, Collapsed: n.Collapsed, Items: n.Items}, nil
	}
	return nil, fmt.Errorf("cannot marshal sidebar node of kind %q", n.Kind)
}

// Walk visits n and every descendant in document order. The visitor returning
// false stops descent into the current node's children but not its siblings.
func (n Node) Walk(visit func(Node) bool) {
	if !visit(n) {
		return
	}
	for _, item := range n.Items {
		item.Walk(visit)
	}
}
