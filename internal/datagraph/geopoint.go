package datagraph

import (
	"github.com/ActiveChai/vega-lite/internal/spectree"
	"github.com/ActiveChai/vega-lite/internal/vega"
)

// GeoPointNode projects a coordinate field pair into two numeric
// output fields. The projection is identified by its owning view; the
// assigned projection name is resolved at assembly time because the
// merge engine may still rewrite it after this node exists.
type GeoPointNode struct {
	link
	owner  spectree.NodeID
	fields []any // pair sides; an absent side stays nil
	as     [2]string
}

// NewGeoPoint constructs a projection node for one coordinate pair.
func NewGeoPoint(owner spectree.NodeID, fields []any, as [2]string) *GeoPointNode {
	return &GeoPointNode{owner: owner, fields: fields, as: as}
}

func (g *GeoPointNode) DependentFields() map[string]bool {
	out := noFields()
	for _, f := range g.fields {
		if s, ok := f.(string); ok {
			out[s] = true
		}
	}
	return out
}

func (g *GeoPointNode) ProducedFields() map[string]bool {
	return map[string]bool{g.as[0]: true, g.as[1]: true}
}

type geoPointParams struct {
	Owner  int32
	Fields []any
	As     [2]string
}

func (g *GeoPointNode) Hash() string {
	return paramHash("GeoPoint", geoPointParams{Owner: int32(g.owner), Fields: g.fields, As: g.as})
}

func (g *GeoPointNode) Clone() Node {
	fields := make([]any, len(g.fields))
	copy(fields, g.fields)
	return NewGeoPoint(g.owner, fields, g.as)
}

func (g *GeoPointNode) Assemble(ctx AssembleContext) []vega.Transform {
	return []vega.Transform{
		vega.NewGeoPoint(ctx.ProjectionName(g.owner), g.fields, []string{g.as[0], g.as[1]}),
	}
}

// BuildGeoPoint appends projection nodes for every encoded coordinate
// pair of a unit view that carries a projection. Primary and secondary
// pairs become independent instances with independent output fields.
func BuildGeoPoint(p *Pipeline, u *spectree.UnitSpec, owner spectree.NodeID, viewName string) {
	for i, pair := range coordinatePairs {
		sides := rawPairSides(u, pair)
		if sides == nil {
			continue
		}
		suffix := ""
		if i == 1 {
			suffix = "2"
		}
		as := [2]string{viewName + "_x" + suffix, viewName + "_y" + suffix}
		p.Add(NewGeoPoint(owner, sides, as))
	}
}

// rawPairSides keeps positional slots: an absent side stays nil so the
// emitted fields array preserves lon/lat positions. Returns nil when
// both sides are absent.
func rawPairSides(u *spectree.UnitSpec, pair [2]string) []any {
	sides := make([]any, 2)
	present := false
	for i, ch := range pair {
		def, ok := u.Channel(ch)
		if !ok || !def.Present() {
			continue
		}
		present = true
		switch {
		case def.HasField():
			sides[i] = def.Field
		case def.HasDatum:
			sides[i] = vega.ExprRef{Expr: literalExpr(def.Datum)}
		case def.HasValue:
			sides[i] = vega.ExprRef{Expr: literalExpr(def.Value)}
		}
	}
	if !present {
		return nil
	}
	return sides
}
