// Package xmldoc loads XML documents fully into memory and evaluates XPath
// queries over them.
package xmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Document is a parsed, read-only XML document.
type Document struct {
	path string
	root *xmlquery.Node
}

// Parse reads a whole document from r. name is used in error messages.
func Parse(name string, r io.Reader) (*Document, error) {
	root, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("xmldoc: %s: %w", name, err)
	}
	return &Document{path: name, root: root}, nil
}

// ParseString parses a document held in memory.
func ParseString(name, input string) (*Document, error) {
	return Parse(name, strings.NewReader(input))
}

// ParseFile opens and parses the document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xmldoc: failed to open file: %w", err)
	}
	defer f.Close()

	return Parse(path, f)
}

// Path returns the name the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Query evaluates expr against the whole document and returns the matching
// elements in document order.
func (d *Document) Query(expr string) ([]*Element, error) {
	nodes, err := xmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, fmt.Errorf("xmldoc: %s: query %q: %w", d.path, expr, err)
	}
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &Element{node: n})
	}
	return out, nil
}

// CompactQuery is Query with structurally identical results collapsed to
// their first occurrence. Vendor files repeat identical elements for pins
// that appear in several package variants.
func (d *Document) CompactQuery(expr string) ([]*Element, error) {
	elems, err := d.Query(expr)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(elems))
	out := elems[:0]
	for _, e := range elems {
		key := e.node.OutputXML(true)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out, nil
}
