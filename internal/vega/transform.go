package vega

// Transform is a primitive data transform descriptor. The concrete
// descriptor structs marshal with their "type" tag set by their
// constructors.
type Transform interface {
	transform()
}

// FilterTransform discards rows for which Expr is falsy.
type FilterTransform struct {
	Type string `json:"type"`
	Expr string `json:"expr"`
}

func (FilterTransform) transform() {}

// NewFilter returns a filter transform.
func NewFilter(expr string) FilterTransform {
	return FilterTransform{Type: "filter", Expr: expr}
}

// GeoJSONTransform collects geometry into a named signal, either from
// a coordinate field pair or from a geometry-valued field.
type GeoJSONTransform struct {
	Type    string `json:"type"`
	Fields  []any  `json:"fields,omitempty"`
	GeoJSON string `json:"geojson,omitempty"`
	Signal  string `json:"signal"`
}

func (GeoJSONTransform) transform() {}

// NewGeoJSON returns a geojson transform.
func NewGeoJSON(fields []any, geojson, signal string) GeoJSONTransform {
	return GeoJSONTransform{Type: "geojson", Fields: fields, GeoJSON: geojson, Signal: signal}
}

// GeoPointTransform projects a coordinate field pair through a named
// projection into two numeric output fields.
type GeoPointTransform struct {
	Type       string   `json:"type"`
	Projection string   `json:"projection"`
	Fields     []any    `json:"fields"`
	As         []string `json:"as"`
}

func (GeoPointTransform) transform() {}

// NewGeoPoint returns a geopoint transform.
func NewGeoPoint(projection string, fields []any, as []string) GeoPointTransform {
	return GeoPointTransform{Type: "geopoint", Projection: projection, Fields: fields, As: as}
}
