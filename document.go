package svgdom

import (
	"io"

	"golang.org/x/net/html"
)

// Document wraps the root of a parsed host document. Like Element, it
// references the host tree without owning it.
type Document struct {
	root *html.Node
}

// Parse reads host markup from r and wraps the resulting document.
// Parse errors of the host parser surface unchanged.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// DocumentFor wraps an already-parsed document root.
func DocumentFor(root *html.Node) *Document {
	if root == nil {
		return nil
	}
	return &Document{root: root}
}

// Root returns the document's root node.
func (d *Document) Root() *html.Node {
	return d.root
}

// LocateUnique searches the whole document for the single node matching a
// CSS selector; see Element.LocateUnique.
func (d *Document) LocateUnique(selector string) (*Element, error) {
	return locateUnique(d.root, selector)
}

// SVGRoot locates the unique svg element of the document. Documents
// without SVG content, or with more than one svg island, produce a
// *SelectionError.
func (d *Document) SVGRoot() (*Element, error) {
	return d.LocateUnique("svg")
}

// Render serializes the document back to markup.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}
