// Package render serializes resolved sidebar sets into the renderer
// contract: a JSON navigation document and an HTML nav fragment for
// previews.
package render

import (
	"encoding/json"
	"fmt"

	"git.home.luguber.info/inful/navbuilder/internal/docindex"
	navErrors "git.home.luguber.info/inful/navbuilder/internal/errors"
	"git.home.luguber.info/inful/navbuilder/internal/sidebar"
)

// TitleLookup supplies per-document titles and slugs for emission.
type TitleLookup interface {
	Lookup(id string) (*docindex.Entry, bool)
}

// Item is the renderer-facing shape of one sidebar node.
type Item struct {
	Kind        sidebar.NodeKind `json:"kind"`
	Doc         string           `json:"doc,omitempty"`
	Title       string           `json:"title,omitempty"`
	Href        string           `json:"href,omitempty"`
	Label       string           `json:"label,omitempty"`
	URL         string           `json:"url,omitempty"`
	Collapsible bool             `json:"collapsible,omitempty"`
	Collapsed   bool             `json:"collapsed,omitempty"`
	Items       []Item           `json:"items,omitempty"`
}

// Sidebar is one named navigation tree in the output document.
type Sidebar struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Document is the complete navigation output handed to the renderer.
// Sidebars appear in declaration order.
type Document struct {
	Sidebars []Sidebar `json:"sidebars"`
}

// Build converts a fully resolved sidebar set into the renderer document.
// An autogenerated node surviving into this stage is an internal error.
func Build(set *sidebar.Set, titles TitleLookup) (*Document, error) {
	doc := &Document{}
	for _, name := range set.Names() {
		items, err := buildItems(set.Items(name), titles)
		if err != nil {
			return nil, navErrors.Wrap(err, navErrors.CategoryRender, navErrors.SeverityFatal,
				fmt.Sprintf("sidebar %q", name))
		}
		doc.Sidebars = append(doc.Sidebars, Sidebar{Name: name, Items: items})
	}
	return doc, nil
}

func buildItems(nodes []sidebar.Node, titles TitleLookup) ([]Item, error) {
	items := make([]Item, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case sidebar.KindDoc:
			item := Item{Kind: n.Kind, Doc: n.DocumentID, Href: "/" + n.DocumentID}
			if entry, ok := titles.Lookup(n.DocumentID); ok {
				item.Title = entry.Title
				if entry.Slug != "" {
					item.Href = entry.Slug
				}
			}
			items = append(items, item)
		case sidebar.KindLink:
			items = append(items, Item{Kind: n.Kind, Label: n.Label, URL: n.URL})
		case sidebar.KindCategory:
			children, err := buildItems(n.Items, titles)
			if err != nil {
				return nil, err
			}
			items = append(items, Item{
				Kind:        n.Kind,
				Label:       n.Label,
				Collapsible: n.Collapsible,
				Collapsed:   n.Collapsed,
				Items:       children,
			})
		default:
			return nil, fmt.Errorf("unresolved node of kind %q", n.Kind)
		}
	}
	return items, nil
}

// JSON renders the document as indented JSON with a trailing newline.
func (d *Document) JSON() ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
