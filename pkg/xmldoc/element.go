package xmldoc

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Element is a single node returned by a query.
type Element struct {
	node *xmlquery.Node
}

// Name returns the local element name.
func (e *Element) Name() string {
	return e.node.Data
}

// Attr returns the value of the named attribute, or "" if it is absent.
func (e *Element) Attr(name string) string {
	return e.node.SelectAttr(name)
}

// Text returns the trimmed text content of the element.
func (e *Element) Text() string {
	return strings.TrimSpace(e.node.InnerText())
}

// Children returns the child elements, skipping text and comment nodes.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, &Element{node: c})
		}
	}
	return out
}

// Child returns the i-th child element, or nil if there are fewer children.
func (e *Element) Child(i int) *Element {
	children := e.Children()
	if i < 0 || i >= len(children) {
		return nil
	}
	return children[i]
}
