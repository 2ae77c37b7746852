package spectree

// Geographic and positional channels this compiler cares about. The
// full channel catalogue lives with the mark encoders, which are an
// external collaborator.
const (
	ChLongitude  = "longitude"
	ChLatitude   = "latitude"
	ChLongitude2 = "longitude2"
	ChLatitude2  = "latitude2"
	ChShape      = "shape"
)

// TypeGeoJSON marks a field whose values are geometry objects.
const TypeGeoJSON = "geojson"

// DataSource references the dataset backing a unit view by its
// logical name.
type DataSource struct {
	Name string `json:"name"`
}

// ChannelDef is one normalized channel encoding: exactly one of a
// field reference, a datum, or a constant value (or none, for an
// absent channel side).
type ChannelDef struct {
	Field    string
	Type     string
	Datum    any
	HasDatum bool
	Value    any
	HasValue bool
}

// HasField reports whether the channel carries a field reference.
func (c ChannelDef) HasField() bool { return c.Field != "" }

// Present reports whether the channel carries anything at all.
func (c ChannelDef) Present() bool {
	return c.HasField() || c.HasDatum || c.HasValue
}

// UnitSpec is the payload of a leaf view.
type UnitSpec struct {
	Mark       string
	Data       *DataSource
	Projection map[string]any // explicit projection properties, nil if absent
	Encoding   map[string]ChannelDef
}

// Channel returns the definition for a channel, if encoded.
func (u *UnitSpec) Channel(name string) (ChannelDef, bool) {
	c, ok := u.Encoding[name]
	return c, ok
}

// HasGeoChannel reports whether any geographic channel is encoded.
func (u *UnitSpec) HasGeoChannel() bool {
	for _, ch := range []string{ChLongitude, ChLatitude, ChLongitude2, ChLatitude2} {
		if c, ok := u.Encoding[ch]; ok && c.Present() {
			return true
		}
	}
	if c, ok := u.Encoding[ChShape]; ok && c.HasField() && c.Type == TypeGeoJSON {
		return true
	}
	return false
}

// GeoShapeField returns the geometry-valued shape field, if any.
func (u *UnitSpec) GeoShapeField() (string, bool) {
	c, ok := u.Encoding[ChShape]
	if ok && c.HasField() && c.Type == TypeGeoJSON {
		return c.Field, true
	}
	return "", false
}
