/*
Package domdbg implements helpers to debug a tree of SVG elements.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/svgdom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Print renders the subtree below an element as an indented text tree,
// one line per node. Attributes are listed inline, text content is quoted.
// Empty (whitespace-only) text nodes are suppressed.
func Print(e *svgdom.Element) string {
	p := tp.New()
	ppn(p, e.HTMLNode())
	return p.String()
}

// Dump is a helper for testing. It logs the tree below an element through
// t.Logf, using the format of Print.
func Dump(e *svgdom.Element, t *testing.T) {
	t.Logf("element tree =\n%s", Print(e))
}

func ppn(p tp.Tree, node *html.Node) {
	branch := p.AddBranch(label(node))
	for ch := node.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			ppn(branch, ch)
		case html.TextNode:
			if text := strings.TrimSpace(ch.Data); text != "" {
				branch.AddNode(strconv.Quote(text))
			}
		}
	}
}

func label(node *html.Node) string {
	var sb strings.Builder
	sb.WriteString(node.Data)
	for _, a := range node.Attr {
		sb.WriteString(fmt.Sprintf(" %s=%q", a.Key, a.Val))
	}
	return sb.String()
}
