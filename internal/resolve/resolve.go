// Package resolve implements the component resolution and merge
// engine: a post-order walk that builds each leaf view's components,
// then attempts to promote compatible sibling components to their
// composite parent, keeping names consistent through promotions.
package resolve

import (
	"github.com/ActiveChai/vega-lite/internal/config"
	"github.com/ActiveChai/vega-lite/internal/datagraph"
	"github.com/ActiveChai/vega-lite/internal/diag"
	"github.com/ActiveChai/vega-lite/internal/namescope"
	"github.com/ActiveChai/vega-lite/internal/spectree"
)

const nameKindProjection = namescope.Projection

// Run executes the resolve phase over the whole tree. Composite nodes
// are processed strictly after all of their children, so a merge step
// never observes a partially resolved child.
func Run(tree *spectree.Tree, cfg *config.Config, rep diag.Reporter) *Result {
	r := &resolver{
		tree: tree,
		cfg:  cfg,
		rep:  rep,
		res: &Result{
			Tree:        tree,
			Projections: make(map[spectree.NodeID]*ProjectionComponent),
			Pipelines:   make(map[spectree.NodeID]*datagraph.Pipeline),
			Scales:      make(map[spectree.NodeID]map[string]string),
			Axes:        make(map[spectree.NodeID]map[string]string),
			Legends:     make(map[spectree.NodeID]map[string]string),
		},
	}
	r.resolveNode(tree.Root().ID)
	return r.res
}

// resolver holds context for the resolve walk.
type resolver struct {
	tree *spectree.Tree
	cfg  *config.Config
	rep  diag.Reporter
	res  *Result
}

func (r *resolver) resolveNode(id spectree.NodeID) {
	n := r.tree.Node(id)
	for _, c := range n.Children {
		r.resolveNode(c)
	}
	switch n.Kind {
	case spectree.KindUnit:
		r.resolveUnitProjection(n)
		r.resolveUnitScales(n)
		r.resolveUnitGuides(n)
	default:
		r.resolveCompositeProjection(n)
		r.resolveCompositeScales(n)
		r.resolveCompositeGuides(n)
	}
}
