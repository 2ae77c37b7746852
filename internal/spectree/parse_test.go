package spectree_test

import (
	"testing"

	"github.com/ActiveChai/vega-lite/internal/diag"
	"github.com/ActiveChai/vega-lite/internal/namescope"
	"github.com/ActiveChai/vega-lite/internal/spectree"
)

func mustParse(t *testing.T, input string) *spectree.Tree {
	t.Helper()
	tree, err := spectree.Parse([]byte(input), diag.NopReporter{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return tree
}

func TestParseUnit(t *testing.T) {
	tree := mustParse(t, `{
		"mark": "geoshape",
		"data": {"name": "counties"},
		"projection": {"type": "albersUsa"},
		"encoding": {"shape": {"field": "geom", "type": "geojson"}}
	}`)

	root := tree.Root()
	if root.Kind != spectree.KindUnit {
		t.Fatalf("root kind = %v; want unit", root.Kind)
	}
	if root.Name != "view" {
		t.Fatalf("root name = %q; want view", root.Name)
	}
	if root.Unit.Data.Name != "counties" {
		t.Fatalf("data = %q; want counties", root.Unit.Data.Name)
	}
	field, ok := root.Unit.GeoShapeField()
	if !ok || field != "geom" {
		t.Fatalf("GeoShapeField = %q, %v; want geom, true", field, ok)
	}
}

func TestParseLayerChildNames(t *testing.T) {
	tree := mustParse(t, `{
		"layer": [
			{"mark": "geoshape"},
			{"mark": "circle"}
		]
	}`)

	root := tree.Root()
	if root.Kind != spectree.KindLayer || len(root.Children) != 2 {
		t.Fatalf("root = %v with %d children; want layer with 2", root.Kind, len(root.Children))
	}
	if got := tree.Node(root.Children[0]).Name; got != "view_0" {
		t.Fatalf("first child name = %q; want view_0", got)
	}
	if got := tree.Node(root.Children[1]).Name; got != "view_1" {
		t.Fatalf("second child name = %q; want view_1", got)
	}
}

func TestParseFacetSingleChild(t *testing.T) {
	tree := mustParse(t, `{
		"facet": {"field": "state"},
		"spec": {"mark": "geoshape"}
	}`)
	root := tree.Root()
	if root.Kind != spectree.KindFacet || len(root.Children) != 1 {
		t.Fatalf("root = %v with %d children; want facet with 1", root.Kind, len(root.Children))
	}
	if got := tree.Node(root.Children[0]).Name; got != "view_child" {
		t.Fatalf("facet child name = %q; want view_child", got)
	}
}

func TestParseEmptyCompositeFails(t *testing.T) {
	bag := diag.NewBag(10)
	_, err := spectree.Parse([]byte(`{"layer": []}`), diag.BagReporter{Bag: bag})
	if err == nil {
		t.Fatal("expected error for empty layer")
	}
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for empty layer")
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"with space", "with_space"},
		{"dots.and-dashes", "dots_and_dashes"},
		{"0leading", "_0leading"},
		{"", "_"},
	}
	for _, tc := range cases {
		if got := spectree.SanitizeName(tc.in); got != tc.want {
			t.Errorf("SanitizeName(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveNameWalksAncestors(t *testing.T) {
	tree := mustParse(t, `{
		"layer": [
			{"layer": [{"mark": "geoshape"}, {"mark": "geoshape"}]},
			{"mark": "geoshape"}
		]
	}`)

	inner := tree.Node(tree.Root().Children[0])
	leaf := tree.Node(inner.Children[0])

	// Simulate two stacked promotions: leaf renamed into the inner
	// layer, inner layer renamed into the root.
	leaf.Scope.Register(namescope.Projection, "view_0_0_projection")
	leaf.Scope.Rename(namescope.Projection, "view_0_0_projection", "view_0_projection")
	inner.Scope.Register(namescope.Projection, "view_0_projection")
	inner.Scope.Rename(namescope.Projection, "view_0_projection", "view_projection")

	got := tree.ResolveName(leaf.ID, namescope.Projection, "view_0_0_projection")
	if got != "view_projection" {
		t.Fatalf("ResolveName = %q; want view_projection", got)
	}

	// A never-renamed name resolves to itself.
	if got := tree.ResolveName(leaf.ID, namescope.Projection, "untouched"); got != "untouched" {
		t.Fatalf("ResolveName(untouched) = %q; want untouched", got)
	}
}
