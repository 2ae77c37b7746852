// Package datagraph builds the per-view chain of data-shaping
// operations a view's geographic encodings require. Pipelines are
// small and statically shaped by the input spec: each node has at most
// one upstream parent, supports hash-based deduplication, and
// assembles into primitive transform descriptors.
package datagraph

import (
	"github.com/ActiveChai/vega-lite/internal/spectree"
	"github.com/ActiveChai/vega-lite/internal/vega"
)

// AssembleContext resolves names that may still be rewritten by the
// merge engine after a node is constructed. Nodes must consult it at
// assembly time, never capture resolved names at construction.
type AssembleContext interface {
	// ProjectionName returns the final assigned projection name for
	// the view that owns the node.
	ProjectionName(owner spectree.NodeID) string
}

// Node is one unit of a view's data pipeline.
type Node interface {
	// DependentFields returns the set of input fields the node reads.
	DependentFields() map[string]bool

	// ProducedFields returns the set of output fields the node writes.
	ProducedFields() map[string]bool

	// Hash returns a stable fingerprint over every constructor
	// parameter, so two independently constructed but semantically
	// identical nodes collide.
	Hash() string

	// Clone returns a structural copy with no parent link, for reuse
	// along a different branch.
	Clone() Node

	// Assemble emits zero or more primitive transform descriptors.
	Assemble(ctx AssembleContext) []vega.Transform

	// Parent returns the upstream node, or nil at the head.
	Parent() Node

	setParent(Node)
}

// link is the shared parent slot embedded by concrete nodes.
type link struct {
	parent Node
}

func (l *link) Parent() Node     { return l.parent }
func (l *link) setParent(n Node) { l.parent = n }

func noFields() map[string]bool { return map[string]bool{} }
