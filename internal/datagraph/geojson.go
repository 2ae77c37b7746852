package datagraph

import (
	"fmt"
	"strconv"

	"github.com/ActiveChai/vega-lite/internal/spectree"
	"github.com/ActiveChai/vega-lite/internal/vega"
)

// GeoJSONNode extracts geometry into an internal signal, from either a
// coordinate field pair or a single geometry-valued field. It is never
// constructed for an entirely absent role: callers only build it when
// at least one side of a pair, or the geometry field, is present.
type GeoJSONNode struct {
	link
	fields  []any  // pair sides: field name string or vega.ExprRef
	geoJSON string // geometry-valued field, "" for the pair form
	signal  string
}

// NewGeoJSON constructs a geometry-extraction node. Exactly one of
// fields and geoJSON is set.
func NewGeoJSON(fields []any, geoJSON, signal string) *GeoJSONNode {
	return &GeoJSONNode{fields: fields, geoJSON: geoJSON, signal: signal}
}

// Signal returns the name of the geometry signal the node produces.
func (g *GeoJSONNode) Signal() string { return g.signal }

func (g *GeoJSONNode) DependentFields() map[string]bool {
	out := noFields()
	for _, f := range g.fields {
		if s, ok := f.(string); ok {
			out[s] = true
		}
	}
	if g.geoJSON != "" {
		out[g.geoJSON] = true
	}
	return out
}

func (g *GeoJSONNode) ProducedFields() map[string]bool { return noFields() }

type geoJSONParams struct {
	Fields  []any
	GeoJSON string
	Signal  string
}

func (g *GeoJSONNode) Hash() string {
	return paramHash("GeoJSON", geoJSONParams{Fields: g.fields, GeoJSON: g.geoJSON, Signal: g.signal})
}

func (g *GeoJSONNode) Clone() Node {
	fields := make([]any, len(g.fields))
	copy(fields, g.fields)
	return NewGeoJSON(fields, g.geoJSON, g.signal)
}

// Assemble emits the extraction step. The geometry-field form is
// preceded by a filter discarding rows whose geometry value is not
// valid; the pair form has no such filter.
func (g *GeoJSONNode) Assemble(AssembleContext) []vega.Transform {
	var out []vega.Transform
	if g.geoJSON != "" {
		out = append(out, vega.NewFilter(fmt.Sprintf("isValid(datum[%q])", g.geoJSON)))
	}
	out = append(out, vega.NewGeoJSON(g.fields, g.geoJSON, g.signal))
	return out
}

// coordinatePairs lists the primary and secondary coordinate channel
// pairs in their fixed order.
var coordinatePairs = [2][2]string{
	{spectree.ChLongitude, spectree.ChLatitude},
	{spectree.ChLongitude2, spectree.ChLatitude2},
}

// pairSides collects the present sides of a coordinate pair as
// transform field entries: a field reference stays a field name, a
// datum or constant becomes an expression, an absent side contributes
// nothing.
func pairSides(u *spectree.UnitSpec, pair [2]string) []any {
	var sides []any
	for _, ch := range pair {
		def, ok := u.Channel(ch)
		if !ok || !def.Present() {
			continue
		}
		switch {
		case def.HasField():
			sides = append(sides, def.Field)
		case def.HasDatum:
			sides = append(sides, vega.ExprRef{Expr: literalExpr(def.Datum)})
		case def.HasValue:
			sides = append(sides, vega.ExprRef{Expr: literalExpr(def.Value)})
		}
	}
	return sides
}

func literalExpr(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// BuildGeoJSON appends the geometry-extraction nodes a fit-enabled
// unit view needs and returns their signal names in declaration order.
// Signal names derive from the view's path name plus an ordinal, so
// they are deterministic without a global counter.
func BuildGeoJSON(p *Pipeline, u *spectree.UnitSpec, viewName string) []string {
	var signals []string
	counter := 0
	for _, pair := range coordinatePairs {
		sides := pairSides(u, pair)
		if len(sides) == 0 {
			continue
		}
		signal := viewName + "_geojson_" + strconv.Itoa(counter)
		counter++
		p.Add(NewGeoJSON(sides, "", signal))
		signals = append(signals, signal)
	}
	if field, ok := u.GeoShapeField(); ok {
		signal := viewName + "_geojson_" + strconv.Itoa(counter)
		p.Add(NewGeoJSON(nil, field, signal))
		signals = append(signals, signal)
	}
	return signals
}
