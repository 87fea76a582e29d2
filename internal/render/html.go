package render

import (
	"html"
	"strings"
)

// HTML renders the navigation document as a standalone fragment: one <nav>
// per sidebar, categories as <details> when collapsible. Doc anchors carry a
// data-doc attribute so audits can map them back to document IDs regardless
// of slug overrides.
func (d *Document) HTML() string {
	var b strings.Builder
	for _, sb := range d.Sidebars {
		b.WriteString(`<nav class="sidebar" data-sidebar="` + html.EscapeString(sb.Name) + "\">\n")
		writeItems(&b, sb.Items, 1)
		b.WriteString("</nav>\n")
	}
	return b.String()
}

func writeItems(b *strings.Builder, items []Item, depth int) {
	pad := strings.Repeat("  ", depth)
	b.WriteString(pad + "<ul>\n")
	for _, item := range items {
		b.WriteString(pad + "  <li>")
		switch {
		case item.Doc != "":
			title := item.Title
			if title == "" {
				title = item.Doc
			}
			b.WriteString(`<a class="doc-link" data-doc="` + html.EscapeString(item.Doc) +
				`" href="` + html.EscapeString(item.Href) + `">` + html.EscapeString(title) + `</a>`)
		case item.URL != "":
			b.WriteString(`<a class="external-link" href="` + html.EscapeString(item.URL) +
				`" rel="noopener">` + html.EscapeString(item.Label) + `</a>`)
		default:
			if item.Collapsible {
				open := " open"
				if item.Collapsed {
					open = ""
				}
				b.WriteString("<details" + open + "><summary>" + html.EscapeString(item.Label) + "</summary>\n")
				writeItems(b, item.Items, depth+2)
				b.WriteString(pad + "  </details>")
			} else {
				b.WriteString(`<span class="category-label">` + html.EscapeString(item.Label) + "</span>\n")
				writeItems(b, item.Items, depth+2)
				b.WriteString(pad + "  ")
			}
		}
		b.WriteString("</li>\n")
	}
	b.WriteString(pad + "</ul>\n")
}
