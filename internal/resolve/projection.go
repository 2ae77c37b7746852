package resolve

import (
	"github.com/google/go-cmp/cmp"

	"github.com/ActiveChai/vega-lite/internal/config"
	"github.com/ActiveChai/vega-lite/internal/datagraph"
	"github.com/ActiveChai/vega-lite/internal/props"
	"github.com/ActiveChai/vega-lite/internal/spectree"
)

// projectionName derives a view's projection component name from its
// path-derived node name, so names are collision-free without a global
// counter.
func projectionName(n *spectree.Node) string {
	return n.Name + "_projection"
}

// resolveUnitProjection builds a leaf view's projection component and
// its transform pipeline. Views with no projection role (no explicit
// projection, no geographic channel, not a geoshape mark) get neither.
func (r *resolver) resolveUnitProjection(n *spectree.Node) {
	u := n.Unit
	if u == nil {
		return
	}
	if u.Projection == nil && !u.HasGeoChannel() && u.Mark != "geoshape" {
		return
	}

	split := props.NewSplit()
	for k, v := range r.cfg.FamilyDefaults("projection") {
		split.Set(k, v, false)
	}
	for k, v := range u.Projection {
		split.Set(k, v, true)
	}
	if _, ok := split.Get("type"); !ok {
		split.Set("type", config.DefaultProjectionType, false)
	}

	// Any explicit scale or translate anywhere in the bag disables
	// auto-fit entirely. This is an all-or-nothing switch.
	fit := !split.HasExplicit("scale") && !split.HasExplicit("translate")

	comp := &ProjectionComponent{Split: split, Name: projectionName(n)}
	pipe := datagraph.NewPipeline()
	if fit {
		shapeSignal := buildGeometryNodes(pipe, u, n.Name)
		comp.Size = sizeSignals(r.tree, n)
		comp.Data = fitSources(u, shapeSignal)
	}
	datagraph.BuildGeoPoint(pipe, u, n.ID, n.Name)
	pipe.Dedup()

	n.Scope.Register(nameKindProjection, comp.Name)
	r.res.Projections[n.ID] = comp
	r.res.Pipelines[n.ID] = pipe
}

// buildGeometryNodes appends the view's geometry-extraction nodes and
// returns the geometry-field signal, "" when the view has none.
func buildGeometryNodes(pipe *datagraph.Pipeline, u *spectree.UnitSpec, viewName string) string {
	signals := datagraph.BuildGeoJSON(pipe, u, viewName)
	if _, ok := u.GeoShapeField(); ok && len(signals) > 0 {
		return signals[len(signals)-1]
	}
	return ""
}

// fitSources collects the data sources that can back a fit
// computation: one dataset reference when a coordinate pair carries a
// field or datum, then the geometry-field signal. A view whose only
// backing is its dataset still contributes it, so fit fails only when
// there is truly nothing to fit against.
func fitSources(u *spectree.UnitSpec, shapeSignal string) []FitSource {
	var out []FitSource
	for _, pair := range [2][2]string{
		{spectree.ChLongitude, spectree.ChLatitude},
		{spectree.ChLongitude2, spectree.ChLatitude2},
	} {
		if pairHasFieldOrDatum(u, pair) {
			if u.Data != nil {
				out = append(out, FitSource{Data: u.Data.Name})
			}
			break
		}
	}
	if shapeSignal != "" {
		out = append(out, FitSource{Signal: shapeSignal})
	}
	if len(out) == 0 && u.Data != nil {
		out = append(out, FitSource{Data: u.Data.Name})
	}
	return out
}

func pairHasFieldOrDatum(u *spectree.UnitSpec, pair [2]string) bool {
	for _, ch := range pair {
		if def, ok := u.Channel(ch); ok && (def.HasField() || def.HasDatum) {
			return true
		}
	}
	return false
}

// mergeIfNoConflict merges two sibling components into a
// representative, or returns nil when they cannot share one
// definition. Components merge when their size descriptors are deeply
// equal and every property in the fixed set is either explicit on both
// sides with deeply equal values or explicit on neither. A side whose
// explicit layer is entirely empty can always fold into the other; the
// surviving side keeps its accumulated state, including its
// in-progress fit-data list.
func mergeIfNoConflict(a, b *ProjectionComponent) *ProjectionComponent {
	if !cmp.Equal(a.Size, b.Size) {
		return nil
	}
	mergeable := true
	for _, prop := range projectionProperties {
		_, aok := a.Explicit(prop)
		_, bok := b.Explicit(prop)
		switch {
		case !aok && !bok:
		case aok && bok:
			av, _ := a.Get(prop)
			bv, _ := b.Get(prop)
			if !cmp.Equal(av, bv) {
				mergeable = false
			}
		default:
			mergeable = false
		}
		if !mergeable {
			break
		}
	}
	if mergeable {
		return a
	}
	if a.ExplicitEmpty() {
		return b
	}
	if b.ExplicitEmpty() {
		return a
	}
	return nil
}

// resolveCompositeProjection reduces the children's components into
// one shared component when possible. A failed merge is ordinary
// control flow: the composite simply gets no shared component and each
// child keeps its own independently named one.
func (r *resolver) resolveCompositeProjection(n *spectree.Node) {
	var acc *ProjectionComponent
	for _, cid := range n.Children {
		child := r.res.Projections[cid]
		if child == nil {
			continue
		}
		if acc == nil {
			acc = child
			continue
		}
		merged := mergeIfNoConflict(acc, child)
		if merged == nil {
			return
		}
		acc = merged
	}
	if acc == nil {
		return
	}

	name := projectionName(n)
	promoted := &ProjectionComponent{
		Split: props.NewSplit(),
		Name:  name,
		Size:  acc.Size,
	}
	promoted.CopyExplicitFrom(acc.Split)

	// Renames must land before the merged flag so no reference ever
	// resolves through a tombstoned name.
	for _, cid := range n.Children {
		child := r.res.Projections[cid]
		if child == nil {
			continue
		}
		promoted.Data = append(promoted.Data, child.Data...)
		r.tree.Node(cid).Scope.Rename(nameKindProjection, child.Name, name)
		child.Merged = true
	}

	n.Scope.Register(nameKindProjection, name)
	r.res.Projections[n.ID] = promoted
}
