package resolve_test

import (
	"testing"

	"github.com/ActiveChai/vega-lite/internal/namescope"
)

func TestLayerScalesSharedByDefault(t *testing.T) {
	res := resolveSpec(t, `{
		"layer": [
			{"mark": "bar", "encoding": {"x": {"field": "a"}}},
			{"mark": "line", "encoding": {"x": {"field": "b"}}}
		]
	}`)

	root := res.Tree.Root()
	shared := res.Scales[root.ID]
	if shared["x"] != "view_x" {
		t.Fatalf("shared x scale = %q; want view_x", shared["x"])
	}
	for _, cid := range root.Children {
		child := res.Tree.Node(cid)
		own := res.Scales[cid]["x"]
		if got := child.Scope.Lookup(namescope.Scale, own); got != "view_x" {
			t.Fatalf("child scale %q resolves to %q; want view_x", own, got)
		}
	}
}

func TestConcatScalesIndependentByDefault(t *testing.T) {
	res := resolveSpec(t, `{
		"concat": [
			{"mark": "bar", "encoding": {"x": {"field": "a"}}},
			{"mark": "line", "encoding": {"x": {"field": "b"}}}
		]
	}`)

	root := res.Tree.Root()
	if _, ok := res.Scales[root.ID]; ok {
		t.Fatal("concat must not share scales by default")
	}
	for _, cid := range root.Children {
		own := res.Scales[cid]["x"]
		if got := res.Tree.Node(cid).Scope.Lookup(namescope.Scale, own); got != own {
			t.Fatalf("independent child scale was renamed to %q", got)
		}
	}
}

func TestConcatSharedResolveOverride(t *testing.T) {
	res := resolveSpec(t, `{
		"concat": [
			{"mark": "bar", "encoding": {"x": {"field": "a"}}},
			{"mark": "line", "encoding": {"x": {"field": "b"}}}
		],
		"resolve": {"scale": {"x": "shared"}}
	}`)

	if res.Scales[res.Tree.Root().ID]["x"] != "view_x" {
		t.Fatal("resolve override must share the x scale under concat")
	}
}

func TestGeoChannelsGetNoScales(t *testing.T) {
	res := resolveSpec(t, `{
		"mark": "circle", "data": {"name": "a"},
		"encoding": {
			"longitude": {"field": "lon"},
			"latitude": {"field": "lat"},
			"color": {"field": "group"}
		}
	}`)

	scales := res.Scales[res.Tree.Root().ID]
	if len(scales) != 1 || scales["color"] != "view_color" {
		t.Fatalf("scales = %v; want only view_color", scales)
	}
}

func TestGeoJSONShapeGetsNoScale(t *testing.T) {
	res := resolveSpec(t, `{
		"mark": "geoshape", "data": {"name": "a"},
		"encoding": {"shape": {"field": "geom", "type": "geojson"}}
	}`)
	if scales := res.Scales[res.Tree.Root().ID]; len(scales) != 0 {
		t.Fatalf("scales = %v; geometry-typed shape has no scale", scales)
	}
}

func TestShapeWithOrdinaryTypeGetsScale(t *testing.T) {
	res := resolveSpec(t, `{
		"mark": "point", "data": {"name": "a"},
		"encoding": {"shape": {"field": "kind", "type": "nominal"}}
	}`)
	scales := res.Scales[res.Tree.Root().ID]
	if scales["shape"] != "view_shape" {
		t.Fatalf("scales = %v; want view_shape", scales)
	}
}

func TestMixedChannelsSharePerChannel(t *testing.T) {
	// Only the x channel is declared shared-by-default on both sides;
	// the y channel exists on one child alone and still promotes.
	res := resolveSpec(t, `{
		"layer": [
			{"mark": "bar", "encoding": {"x": {"field": "a"}, "y": {"field": "v"}}},
			{"mark": "rule", "encoding": {"x": {"field": "b"}}}
		]
	}`)

	shared := res.Scales[res.Tree.Root().ID]
	if shared["x"] != "view_x" || shared["y"] != "view_y" {
		t.Fatalf("shared scales = %v", shared)
	}
}
