// Package spectree models the normalized chart composition hierarchy:
// a tree of unit, layer, facet and concat views. Nodes are
// index-addressed — a node's parent relation is a NodeID lookup into
// the owning Tree, never a shared pointer — and each node owns exactly
// one name scope.
package spectree

import (
	"github.com/ActiveChai/vega-lite/internal/diag"
	"github.com/ActiveChai/vega-lite/internal/namescope"
)

// Kind tags the node variant.
type Kind uint8

const (
	KindUnit Kind = iota
	KindLayer
	KindFacet
	KindConcat
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindLayer:
		return "layer"
	case KindFacet:
		return "facet"
	case KindConcat:
		return "concat"
	}
	return "unknown"
}

// NodeID addresses a node within its Tree.
type NodeID int32

// NoNode is the parent of the root.
const NoNode NodeID = -1

// Node is one view in the composition hierarchy. Children is empty for
// KindUnit and ordered by declaration for composites.
type Node struct {
	ID       NodeID
	Parent   NodeID
	Kind     Kind
	Name     string
	Children []NodeID
	Scope    *namescope.Scope

	// Unit payload, nil unless Kind == KindUnit.
	Unit *UnitSpec

	// Resolve mixin for composites (shared/independent per channel).
	Resolve ResolveSpec

	// Facet definition, KindFacet only.
	FacetDef map[string]any
}

// ResolveSpec carries the per-channel shared/independent choices of a
// composite node.
type ResolveSpec struct {
	Scale  map[string]string
	Axis   map[string]string
	Legend map[string]string
}

// Tree owns all nodes of one compile invocation. Index 0 is the root.
type Tree struct {
	nodes []*Node
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.nodes[0] }

// Node returns the node with the given id, or nil when out of range.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Walk visits every node depth-first in declaration order, children
// after their parent when pre is true, before it otherwise.
func (t *Tree) Walk(id NodeID, pre bool, visit func(*Node)) {
	n := t.Node(id)
	if n == nil {
		return
	}
	if pre {
		visit(n)
	}
	for _, c := range n.Children {
		t.Walk(c, pre, visit)
	}
	if !pre {
		visit(n)
	}
}

// ResolveName resolves a logical name to its final assigned name by
// applying each scope's mapping from node to root. A name no scope has
// renamed resolves to itself.
func (t *Tree) ResolveName(id NodeID, k namescope.Kind, name string) string {
	cur := name
	for n := t.Node(id); n != nil; {
		cur = n.Scope.Lookup(k, cur)
		if n.Parent == NoNode {
			break
		}
		n = t.Node(n.Parent)
	}
	return cur
}

// Locus builds a diagnostic locus for a node.
func (t *Tree) Locus(id NodeID, detail string) diag.Locus {
	n := t.Node(id)
	if n == nil {
		return diag.Locus{Path: "?", Detail: detail}
	}
	return diag.Locus{Path: n.Name, Detail: detail}
}

func (t *Tree) add(n *Node) NodeID {
	n.ID = NodeID(len(t.nodes))
	n.Scope = namescope.New()
	t.nodes = append(t.nodes, n)
	return n.ID
}
