package scrape

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML reduces an HTML fragment to its visible text: tags dropped,
// entities decoded, whitespace collapsed, text nodes joined with single
// spaces.
func StripHTML(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return collapseSpace(fragment)
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if text := collapseSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, " ")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
