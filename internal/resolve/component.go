package resolve

import (
	"github.com/ActiveChai/vega-lite/internal/props"
	"github.com/ActiveChai/vega-lite/internal/vega"
)

// projectionProperties is the fixed property set the merge engine
// compares. Two sibling components conflict when any of these is
// explicit on both sides with unequal values.
var projectionProperties = []string{
	"center",
	"clipAngle",
	"clipExtent",
	"coefficient",
	"distance",
	"extent",
	"fit",
	"fraction",
	"lobes",
	"parallel",
	"parallels",
	"pointRadius",
	"precision",
	"radius",
	"ratio",
	"reflectX",
	"reflectY",
	"rotate",
	"scale",
	"size",
	"spacing",
	"tilt",
	"translate",
	"type",
}

// FitSource is one entry of a component's fit-data list: either a
// geometry signal or a logical dataset name whose concrete name is
// resolved at assembly time.
type FitSource struct {
	Signal string
	Data   string
}

// ProjectionComponent is the named, mergeable projection state of one
// view. Data preserves child declaration order across promotions and
// is never deduplicated: repeated identical sources each correspond to
// a distinct upstream computation.
type ProjectionComponent struct {
	*props.Split
	Name   string
	Size   []vega.SignalRef
	Data   []FitSource
	Merged bool
}

// IsFit reports whether the component carries auto-fit state.
func (c *ProjectionComponent) IsFit() bool { return len(c.Size) > 0 }
