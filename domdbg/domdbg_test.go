package domdbg_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/svgdom"
	"github.com/npillmayer/svgdom/domdbg"
)

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	doc, err := svgdom.Parse(strings.NewReader(`<svg><g id="grp"><text>hi</text></g></svg>`))
	if err != nil {
		t.Fatalf("cannot parse fixture: %v", err)
	}
	svg, err := doc.SVGRoot()
	if err != nil {
		t.Fatalf("fixture has no unique svg root: %v", err)
	}
	out := domdbg.Print(svg)
	t.Logf("element tree =\n%s", out)
	if !strings.Contains(out, `g id="grp"`) {
		t.Error("expected the group and its id in the tree dump, missing")
	}
	if !strings.Contains(out, `"hi"`) {
		t.Error("expected the quoted text content in the tree dump, missing")
	}
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	svg := svgdom.NewRoot()
	svg.AppendChild("circle", svgdom.AttrMap{"r": 3})
	domdbg.Dump(svg, t)
}
