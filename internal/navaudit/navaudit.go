// Package navaudit cross-checks a rendered navigation fragment against the
// document index. It guards the render path: every doc anchor in the emitted
// HTML must map back to an indexed document.
package navaudit

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// DocChecker answers document existence queries during an audit.
type DocChecker interface {
	HasDocument(id string) bool
}

// DocAnchor is one doc link extracted from the rendered fragment.
type DocAnchor struct {
	DocumentID string
	Href       string
	Text       string
}

// Issue reports a doc anchor whose document ID is not indexed.
type Issue struct {
	DocumentID string
	Href       string
}

func (i Issue) String() string {
	return fmt.Sprintf("nav anchor %q references unknown document %q", i.Href, i.DocumentID)
}

// ExtractDocAnchors parses an HTML nav fragment and returns every anchor
// carrying a data-doc attribute.
func ExtractDocAnchors(r io.Reader) ([]DocAnchor, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse nav fragment: %w", err)
	}

	var anchors []DocAnchor
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if id := getAttr(n, "data-doc"); id != "" {
				anchors = append(anchors, DocAnchor{
					DocumentID: id,
					Href:       getAttr(n, "href"),
					Text:       nodeText(n),
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return anchors, nil
}

// Audit extracts doc anchors from the fragment and reports every anchor whose
// document is missing from the index. An empty slice means the fragment is
// consistent with the index.
func Audit(fragment string, index DocChecker) ([]Issue, error) {
	anchors, err := ExtractDocAnchors(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, a := range anchors {
		if !index.HasDocument(a.DocumentID) {
			issues = append(issues, Issue{DocumentID: a.DocumentID, Href: a.Href})
		}
	}
	return issues, nil
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
