// Package assemble implements the output phase: a top-down, read-only
// walk over the resolved tree that emits the final rendering
// specification. It never mutates merge state or name scopes; its only
// side effect is the monotonic dataset reference counting.
package assemble

import (
	"github.com/ActiveChai/vega-lite/internal/config"
	"github.com/ActiveChai/vega-lite/internal/diag"
	"github.com/ActiveChai/vega-lite/internal/namescope"
	"github.com/ActiveChai/vega-lite/internal/resolve"
	"github.com/ActiveChai/vega-lite/internal/spectree"
	"github.com/ActiveChai/vega-lite/internal/vega"
)

const nameKindProjection = namescope.Projection

// SchemaURL identifies the output vocabulary version.
const SchemaURL = "https://vega.github.io/schema/vega/v5.json"

// Run assembles the final specification from the fixed resolve result.
// A fatal condition aborts the whole compile: there is no partial
// output.
func Run(res *resolve.Result, cfg *config.Config, rep diag.Reporter) (*vega.Spec, *DataNames, error) {
	a := &assembler{
		res:   res,
		cfg:   cfg,
		rep:   rep,
		names: NewDataNames(),
	}
	spec, err := a.assemble()
	if err != nil {
		return nil, nil, err
	}
	return spec, a.names, nil
}

type assembler struct {
	res            *resolve.Result
	cfg            *config.Config
	rep            diag.Reporter
	names          *DataNames
	emittedSources map[string]bool
}

// ProjectionName implements datagraph.AssembleContext. Lookups go
// through the name scopes so references into tombstoned components
// resolve to their promoted names.
func (a *assembler) ProjectionName(owner spectree.NodeID) string {
	return a.res.ProjectionName(owner)
}

func (a *assembler) assemble() (*vega.Spec, error) {
	w, h := a.cfg.View.Size()
	spec := &vega.Spec{
		Schema: SchemaURL,
		Signals: []vega.Signal{
			{Name: "width", Value: w},
			{Name: "height", Value: h},
		},
	}

	var walkErr error
	a.res.Tree.Walk(a.res.Tree.Root().ID, true, func(n *spectree.Node) {
		if walkErr != nil {
			return
		}
		// Tombstoned components are logically superseded; they stay
		// readable for provenance but never reach output.
		if comp := a.res.Projection(n.ID); comp != nil && !comp.Merged {
			proj, err := a.assembleProjection(n, comp)
			if err != nil {
				walkErr = err
				return
			}
			spec.Projections = append(spec.Projections, proj)
		}
		a.assembleData(spec, n)
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return spec, nil
}

// assembleData emits a unit view's dataset entries: the shared raw
// source on first consultation, then a per-view derived entry carrying
// the view's transform pipeline.
func (a *assembler) assembleData(spec *vega.Spec, n *spectree.Node) {
	if n.Kind != spectree.KindUnit || n.Unit == nil {
		return
	}
	pipe := a.res.Pipeline(n.ID)

	var source string
	if n.Unit.Data != nil {
		source = a.names.Lookup(n.Unit.Data.Name)
		if !a.emitted(source) {
			spec.Data = append(spec.Data, vega.Data{Name: source})
		}
	}
	if pipe == nil || pipe.Len() == 0 {
		// Nothing to compute: upstream data is forwarded unchanged.
		return
	}
	spec.Data = append(spec.Data, vega.Data{
		Name:      n.Name + "_main",
		Source:    source,
		Transform: pipe.Assemble(a),
	})
}

func (a *assembler) emitted(concrete string) bool {
	if a.emittedSources == nil {
		a.emittedSources = make(map[string]bool)
	}
	if a.emittedSources[concrete] {
		return true
	}
	a.emittedSources[concrete] = true
	return false
}
