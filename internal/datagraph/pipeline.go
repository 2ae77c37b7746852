package datagraph

import "github.com/ActiveChai/vega-lite/internal/vega"

// Pipeline is the linearized per-view transform chain. Nodes are kept
// in parent-before-child order; Add links each new node to the current
// tail.
type Pipeline struct {
	nodes []Node
}

// NewPipeline returns an empty pipeline.
func NewPipeline() *Pipeline { return &Pipeline{} }

// Add appends a node, linking it to the current tail.
func (p *Pipeline) Add(n Node) {
	if len(p.nodes) > 0 {
		n.setParent(p.nodes[len(p.nodes)-1])
	}
	p.nodes = append(p.nodes, n)
}

// Nodes returns the nodes in pipeline order.
func (p *Pipeline) Nodes() []Node { return p.nodes }

// Len returns the node count.
func (p *Pipeline) Len() int { return len(p.nodes) }

// Dedup removes nodes whose hash repeats an earlier node's, relinking
// the survivors so the chain stays intact. The first occurrence wins.
func (p *Pipeline) Dedup() {
	seen := make(map[string]bool, len(p.nodes))
	kept := p.nodes[:0]
	for _, n := range p.nodes {
		h := n.Hash()
		if seen[h] {
			continue
		}
		seen[h] = true
		if len(kept) > 0 {
			n.setParent(kept[len(kept)-1])
		} else {
			n.setParent(nil)
		}
		kept = append(kept, n)
	}
	p.nodes = kept
}

// Assemble emits every node's transform descriptors in pipeline order.
func (p *Pipeline) Assemble(ctx AssembleContext) []vega.Transform {
	var out []vega.Transform
	for _, n := range p.nodes {
		out = append(out, n.Assemble(ctx)...)
	}
	return out
}
