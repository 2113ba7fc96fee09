package svgdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SVGNamespaceURI is the XML namespace all SVG content belongs to.
// It is written as an xmlns attribute on stand-alone svg roots.
const SVGNamespaceURI = "http://www.w3.org/2000/svg"

// svgNamespace is the namespace tag the x/net/html parser assigns to
// foreign SVG content. Nodes created by this package carry it, too, so
// created and parsed nodes are indistinguishable.
const svgNamespace = "svg"

// Element wraps a node of the host document tree. The host node is
// referenced, never owned: its lifecycle is managed by whoever built the
// document. An Element is a transient convenience value and may be
// re-created for the same host node at any time.
type Element struct {
	node *html.Node
}

// ElementFor wraps a host node into an Element. Wrapping is repeatable:
// two Elements for the same node are interchangeable.
// A nil node yields a nil Element.
func ElementFor(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{node: n}
}

// NewRoot creates a stand-alone svg element, detached from any document,
// with the SVG namespace declared on it. Optional attribute maps are
// applied in order.
func NewRoot(attrs ...AttrMap) *Element {
	root := ElementFor(createElement("svg"))
	root.SetAttributes(AttrMap{"xmlns": SVGNamespaceURI})
	for _, m := range attrs {
		root.SetAttributes(m)
	}
	return root
}

// HTMLNode gets the host node wrapped by this Element.
func (e *Element) HTMLNode() *html.Node {
	return e.node
}

// TagName returns the tag of the wrapped element node.
func (e *Element) TagName() string {
	return e.node.Data
}

// --- Attributes ------------------------------------------------------------

// SetAttributes sets every (key, value) pair of attrs on the element.
// A nil value removes the attribute. All other values are converted to
// their text form (see AttrMap). SetAttributes returns the element to
// permit chaining.
func (e *Element) SetAttributes(attrs AttrMap) *Element {
	for key, value := range attrs {
		if value == nil {
			e.removeAttr(key)
			continue
		}
		e.setAttr(key, attrValue(value))
	}
	return e
}

// Attr reads an attribute value back from the element. The second return
// value reports whether the attribute is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) setAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

func (e *Element) removeAttr(key string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Key != key {
			attrs = append(attrs, a)
		}
	}
	e.node.Attr = attrs
}

// --- Children --------------------------------------------------------------

// AppendChild creates a new element of the given tag in the SVG namespace,
// appends it as the last child of e and applies the optional attribute
// maps to it. It returns the new child, wrapped.
func (e *Element) AppendChild(tag string, attrs ...AttrMap) *Element {
	child := ElementFor(createElement(tag))
	e.node.AppendChild(child.node)
	for _, m := range attrs {
		child.SetAttributes(m)
	}
	return child
}

// PrependChild creates a new element of the given tag in the SVG namespace,
// inserts it as the first child of e and applies the optional attribute
// maps to it. It returns the new child, wrapped.
func (e *Element) PrependChild(tag string, attrs ...AttrMap) *Element {
	child := ElementFor(createElement(tag))
	e.node.InsertBefore(child.node, e.node.FirstChild)
	for _, m := range attrs {
		child.SetAttributes(m)
	}
	return child
}

// ChildrenByTag collects all descendants of e with the given tag in the
// SVG namespace, in document order, each wrapped. The result is a snapshot:
// later tree mutation does not change it.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var matches []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode && ch.Namespace == svgNamespace && ch.Data == tag {
				matches = append(matches, ElementFor(ch))
			}
			walk(ch)
		}
	}
	walk(e.node)
	return matches
}

func createElement(tag string) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		DataAtom:  atom.Lookup([]byte(tag)),
		Data:      tag,
		Namespace: svgNamespace,
	}
}

// --- Text content ----------------------------------------------------------

// SetText replaces the content of e with a single text node holding text.
// Children of e are detached from the host tree.
func (e *Element) SetText(text string) *Element {
	for ch := e.node.FirstChild; ch != nil; ch = e.node.FirstChild {
		e.node.RemoveChild(ch)
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return e
}

// AppendText appends text to the existing text content of e. If the last
// child already is a text node, it is extended in place.
func (e *Element) AppendText(text string) *Element {
	if lc := e.node.LastChild; lc != nil && lc.Type == html.TextNode {
		lc.Data += text
		return e
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return e
}

// Text returns the concatenated text content of e and all its descendants.
func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.TextNode {
				sb.WriteString(ch.Data)
			}
			walk(ch)
		}
	}
	walk(e.node)
	return sb.String()
}

// --- Ids -------------------------------------------------------------------

// EnsureID returns the element's id attribute, generating and setting a
// fresh one (see GenerateID) if the element does not have an id yet.
func (e *Element) EnsureID() string {
	if id, ok := e.Attr("id"); ok && id != "" {
		return id
	}
	id := GenerateID()
	tracer().Debugf("assigning generated id %s to <%s>", id, e.TagName())
	e.SetAttributes(AttrMap{"id": id})
	return id
}
