/*
Package svgdom provides a thin convenience layer over SVG content living in
an HTML parse tree.

Overview

SVG markup is hosted by a document tree which is owned by someone else:
usually the output of parsing with golang.org/x/net/html. This package does
not re-invent that tree. It wraps single nodes of it into a lightweight
Element value which exposes the handful of operations one needs all the
time when assembling or patching vector graphics: set a batch of
attributes, create a child in the SVG namespace, replace or extend text
content, collect descendants by tag, generate a fresh id.

All mutating operations return an Element to permit chaining:

    svg.AppendChild("g").
        AppendChild("circle", svgdom.AttrMap{"cx": 60, "cy": 60, "r": 50}).
        SetAttributes(svgdom.AttrMap{"fill": "none"})

Element is a wrapper, not a subclass: it holds a reference to the host node
and never owns it. Wrapping the same node twice yields equivalent wrappers,
so "augmenting" a node is repeatable without harm.

Selection of single nodes is done with CSS selectors (package cascadia).
LocateUnique succeeds only if a selector resolves to exactly one node and
fails with a SelectionError otherwise; this is the only error kind this
package introduces. Everything else passes the host API's errors through
unchanged.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package svgdom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'svgdom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("svgdom.dom")
}
