package resolve

import (
	"github.com/ActiveChai/vega-lite/internal/spectree"
)

// Axis channels annotate positional scales; legend channels annotate
// the mark-property scales. Channels outside both sets carry no guide.
func axisChannel(channel string) bool {
	return channel == "x" || channel == "y"
}

var legendChannels = map[string]bool{
	"color":   true,
	"fill":    true,
	"stroke":  true,
	"opacity": true,
	"shape":   true,
	"size":    true,
}

// resolveUnitGuides derives a guide entry for every scale-bearing
// channel that takes an axis or a legend. Guides are named after the
// view and channel the way scales are.
func (r *resolver) resolveUnitGuides(n *spectree.Node) {
	axes := make(map[string]string)
	legends := make(map[string]string)
	for channel := range r.res.Scales[n.ID] {
		switch {
		case axisChannel(channel):
			axes[channel] = n.Name + "_" + channel + "_axis"
		case legendChannels[channel]:
			legends[channel] = n.Name + "_" + channel + "_legend"
		}
	}
	if len(axes) > 0 {
		r.res.Axes[n.ID] = axes
	}
	if len(legends) > 0 {
		r.res.Legends[n.ID] = legends
	}
}

// resolveCompositeGuides merges children's guides per the axis and
// legend mixins. A guide can only merge where its channel's scale
// merged: an independent scale forces independent guides no matter
// what the mixin says. Runs strictly after resolveCompositeScales.
func (r *resolver) resolveCompositeGuides(n *spectree.Node) {
	r.resolveGuideFamily(n, axisFamily, r.res.Axes, "_axis")
	r.resolveGuideFamily(n, legendFamily, r.res.Legends, "_legend")
}

func (r *resolver) resolveGuideFamily(n *spectree.Node, fam channelFamily, result map[spectree.NodeID]map[string]string, suffix string) {
	shared := make(map[string]string)
	for _, channel := range r.childChannels(n, result) {
		if _, ok := r.res.Scales[n.ID][channel]; !ok {
			continue
		}
		if r.channelMode(n, fam, channel) != "shared" {
			continue
		}
		name := n.Name + "_" + channel + suffix
		for _, cid := range n.Children {
			if _, ok := result[cid][channel]; ok {
				result[cid][channel] = name
			}
		}
		shared[channel] = name
	}
	if len(shared) > 0 {
		result[n.ID] = shared
	}
}
