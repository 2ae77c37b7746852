package resolve

import (
	"github.com/ActiveChai/vega-lite/internal/datagraph"
	"github.com/ActiveChai/vega-lite/internal/spectree"
)

// Result is the fixed outcome of the resolve phase, consumed read-only
// by the assembler and by sibling subsystems (mark encoders, axis and
// legend assemblers).
type Result struct {
	Tree        *spectree.Tree
	Projections map[spectree.NodeID]*ProjectionComponent
	Pipelines   map[spectree.NodeID]*datagraph.Pipeline

	// Scales maps node → channel → assigned scale name after
	// shared/independent resolution.
	Scales map[spectree.NodeID]map[string]string

	// Axes and Legends map node → channel → assigned guide name. A
	// composite entry means the children's guides merged; merged
	// children's entries point at the promoted name.
	Axes    map[spectree.NodeID]map[string]string
	Legends map[spectree.NodeID]map[string]string
}

// Projection returns the node's resolved projection component, nil
// when the node has none for this family.
func (r *Result) Projection(id spectree.NodeID) *ProjectionComponent {
	return r.Projections[id]
}

// Pipeline returns the node's transform pipeline, nil for composites.
func (r *Result) Pipeline(id spectree.NodeID) *datagraph.Pipeline {
	return r.Pipelines[id]
}

// ProjectionName resolves the final assigned projection name for a
// view, following renames recorded by promotions.
func (r *Result) ProjectionName(id spectree.NodeID) string {
	comp := r.Projections[id]
	if comp == nil {
		return ""
	}
	return r.Tree.ResolveName(id, nameKindProjection, comp.Name)
}
