package resolve

import (
	"fmt"
	"sort"

	"github.com/ActiveChai/vega-lite/internal/diag"
	"github.com/ActiveChai/vega-lite/internal/spectree"
)

// channelFamily describes one channel-keyed property family the
// composite reduction drives. The reduction itself is
// family-independent; a descriptor only names the family for
// diagnostics and tells the reduction where the node's resolve mixin
// lives.
type channelFamily struct {
	name  string
	mixin func(spectree.ResolveSpec) map[string]string
}

var (
	scaleFamily = channelFamily{
		name:  "scale",
		mixin: func(rs spectree.ResolveSpec) map[string]string { return rs.Scale },
	}
	axisFamily = channelFamily{
		name:  "axis",
		mixin: func(rs spectree.ResolveSpec) map[string]string { return rs.Axis },
	}
	legendFamily = channelFamily{
		name:  "legend",
		mixin: func(rs spectree.ResolveSpec) map[string]string { return rs.Legend },
	}
)

// channelMode resolves one channel's shared/independent choice for a
// family: the node's mixin wins, layer and facet default to shared,
// concat to independent. An unknown mode warns and falls back to
// shared.
func (r *resolver) channelMode(n *spectree.Node, fam channelFamily, channel string) string {
	mode := fam.mixin(n.Resolve)[channel]
	if mode == "" {
		if n.Kind == spectree.KindConcat {
			return "independent"
		}
		return "shared"
	}
	switch mode {
	case "shared", "independent":
		return mode
	}
	diag.Warning(r.rep, diag.ResolveBadResolveMode, r.tree.Locus(n.ID, fam.name+" "+channel),
		fmt.Sprintf("unknown resolve mode %q, using \"shared\"", mode))
	return "shared"
}

// childChannels collects the sorted union of the channels the node's
// children resolved in one family's result map.
func (r *resolver) childChannels(n *spectree.Node, result map[spectree.NodeID]map[string]string) []string {
	set := make(map[string]bool)
	for _, cid := range n.Children {
		for channel := range result[cid] {
			set[channel] = true
		}
	}
	out := make([]string, 0, len(set))
	for channel := range set {
		out = append(out, channel)
	}
	sort.Strings(out)
	return out
}
