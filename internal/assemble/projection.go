package assemble

import (
	"fmt"

	"github.com/ActiveChai/vega-lite/internal/diag"
	"github.com/ActiveChai/vega-lite/internal/resolve"
	"github.com/ActiveChai/vega-lite/internal/spectree"
	"github.com/ActiveChai/vega-lite/internal/vega"
)

// assembleProjection emits one projections-array entry for a live
// component. Fit components get {name, size, fit}; everything else
// gets a default center translate. The component's own properties are
// spread last so an explicit size or translate wins over the derived
// defaults.
func (a *assembler) assembleProjection(n *spectree.Node, comp *resolve.ProjectionComponent) (vega.Projection, error) {
	out := vega.Projection{
		Name:  a.res.Tree.ResolveName(n.ID, nameKindProjection, comp.Name),
		Props: make(map[string]any),
	}

	if comp.IsFit() {
		sources, err := a.fitSourceExprs(n, comp)
		if err != nil {
			return vega.Projection{}, err
		}
		out.Props["size"] = vega.SignalRef{
			Signal: "[" + comp.Size[0].Signal + ", " + comp.Size[1].Signal + "]",
		}
		out.Props["fit"] = vega.SignalRef{Signal: fitExpr(sources)}
	} else {
		out.Props["translate"] = vega.SignalRef{Signal: "[width / 2, height / 2]"}
	}

	for k, v := range comp.Combined() {
		out.Props[k] = v
	}
	return out, nil
}

// fitSourceExprs stringifies a component's fit-data list, consulting
// the data-name registry for dataset-backed entries. An empty list
// means the fit has nothing to compute against, which is fatal: it can
// only be detected here, after every merge across the tree has
// finished concatenating child lists.
func (a *assembler) fitSourceExprs(n *spectree.Node, comp *resolve.ProjectionComponent) ([]string, error) {
	if len(comp.Data) == 0 {
		msg := fmt.Sprintf("projection %q has auto-fit enabled but no geometry field and no backing dataset", comp.Name)
		diag.Error(a.rep, diag.AsmFitSourceMissing, a.res.Tree.Locus(n.ID, comp.Name), msg)
		return nil, fmt.Errorf("%s: %s", n.Name, msg)
	}
	out := make([]string, 0, len(comp.Data))
	for _, src := range comp.Data {
		if src.Signal != "" {
			out = append(out, src.Signal)
			continue
		}
		out = append(out, fmt.Sprintf("data('%s')", a.names.Lookup(src.Data)))
	}
	return out, nil
}
