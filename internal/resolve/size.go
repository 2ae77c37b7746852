package resolve

import (
	"github.com/ActiveChai/vega-lite/internal/namescope"
	"github.com/ActiveChai/vega-lite/internal/spectree"
	"github.com/ActiveChai/vega-lite/internal/vega"
)

// sizeSignals returns the rendered-extent signal pair for a view.
// Layer children share their parent's extent, the root uses the plain
// width and height signals, and any other nested view gets
// path-scoped signal names. Sibling views that share an extent thus
// get deeply equal size descriptors, which is what lets their
// components merge.
func sizeSignals(t *spectree.Tree, n *spectree.Node) []vega.SignalRef {
	if n.Parent != spectree.NoNode && t.Node(n.Parent).Kind == spectree.KindLayer {
		return sizeSignals(t, t.Node(n.Parent))
	}
	w, h := "width", "height"
	if n.Parent != spectree.NoNode {
		w, h = n.Name+"_width", n.Name+"_height"
	}
	n.Scope.Register(namescope.Signal, w)
	n.Scope.Register(namescope.Signal, h)
	return []vega.SignalRef{{Signal: w}, {Signal: h}}
}
