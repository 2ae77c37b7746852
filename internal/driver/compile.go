// Package driver orchestrates the two compile phases: resolve
// (post-order, mutating) then assemble (top-down, read-only). A
// compile either runs to completion and returns a full specification
// or aborts with no partial output; nothing persists between
// invocations.
package driver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ActiveChai/vega-lite/internal/assemble"
	"github.com/ActiveChai/vega-lite/internal/config"
	"github.com/ActiveChai/vega-lite/internal/diag"
	"github.com/ActiveChai/vega-lite/internal/observ"
	"github.com/ActiveChai/vega-lite/internal/resolve"
	"github.com/ActiveChai/vega-lite/internal/spectree"
	"github.com/ActiveChai/vega-lite/internal/vega"
)

// Options control a single compile invocation.
type Options struct {
	MaxDiagnostics int
	EmitGraph      bool
}

// Output bundles everything a compile produced.
type Output struct {
	Spec  *vega.Spec
	JSON  []byte
	Bag   *diag.Bag
	Timer *observ.Timer
	Graph string
	Names *assemble.DataNames
}

// Compile lowers one normalized input spec to the output vocabulary.
func Compile(input []byte, cfg *config.Config, opts Options) (*Output, error) {
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = 100
	}
	out := &Output{
		Bag:   diag.NewBag(maxDiags),
		Timer: observ.NewTimer(),
	}
	rep := diag.BagReporter{Bag: out.Bag}

	idx := out.Timer.Begin("parse")
	tree, err := spectree.Parse(input, rep)
	out.Timer.End(idx, "")
	if err != nil {
		return out, err
	}

	idx = out.Timer.Begin("resolve")
	res := resolve.Run(tree, cfg, rep)
	out.Timer.End(idx, fmt.Sprintf("%d nodes", tree.Len()))

	idx = out.Timer.Begin("assemble")
	spec, names, err := assemble.Run(res, cfg, rep)
	out.Timer.End(idx, "")
	if err != nil {
		return out, err
	}
	out.Spec = spec
	out.Names = names

	if opts.EmitGraph {
		out.Graph = dumpGraph(res)
	}

	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return out, fmt.Errorf("encode output spec: %w", err)
	}
	out.JSON = append(data, '\n')
	return out, nil
}

// dumpGraph renders every unit view's linearized transform pipeline,
// one node per line, for the --emit-graph debug flag.
func dumpGraph(res *resolve.Result) string {
	var b strings.Builder
	tree := res.Tree
	tree.Walk(tree.Root().ID, true, func(n *spectree.Node) {
		pipe := res.Pipeline(n.ID)
		if pipe == nil || pipe.Len() == 0 {
			return
		}
		fmt.Fprintf(&b, "%s:\n", n.Name)
		for _, node := range pipe.Nodes() {
			fmt.Fprintf(&b, "  %s\n", node.Hash())
		}
	})
	return b.String()
}
