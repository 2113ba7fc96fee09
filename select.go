package svgdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// SelectionError is returned when a selector does not resolve to exactly
// one node. Matches carries the number of nodes the selector did match.
type SelectionError struct {
	Selector string
	Matches  int
}

func (e *SelectionError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("selector %q matched no node", e.Selector)
	}
	return fmt.Sprintf("selector %q is ambiguous: matched %d nodes", e.Selector, e.Matches)
}

// LocateUnique searches the subtree below e for the single node matching a
// CSS selector. It fails with a *SelectionError if the selector matches no
// node or more than one. A syntactically invalid selector surfaces the
// selector engine's error unchanged.
func (e *Element) LocateUnique(selector string) (*Element, error) {
	return locateUnique(e.node, selector)
}

func locateUnique(root *html.Node, selector string) (*Element, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, err
	}
	matches := cascadia.QueryAll(root, sel)
	if len(matches) != 1 {
		tracer().Debugf("selector %q matched %d nodes", selector, len(matches))
		return nil, &SelectionError{Selector: selector, Matches: len(matches)}
	}
	return ElementFor(matches[0]), nil
}
