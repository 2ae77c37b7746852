package resolve

import (
	"github.com/ActiveChai/vega-lite/internal/namescope"
	"github.com/ActiveChai/vega-lite/internal/spectree"
)

// Geographic channels position through the projection, not through
// scales, and the shape channel's geometry form has no scale either.
func scaleChannel(channel string, def spectree.ChannelDef) bool {
	switch channel {
	case spectree.ChLongitude, spectree.ChLatitude,
		spectree.ChLongitude2, spectree.ChLatitude2:
		return false
	case spectree.ChShape:
		return def.HasField() && def.Type != spectree.TypeGeoJSON
	}
	return def.HasField()
}

// resolveUnitScales registers a scale name per scale-bearing channel.
// Scale domain inference happens in the scale collaborator; this
// engine only decides naming and sharing.
func (r *resolver) resolveUnitScales(n *spectree.Node) {
	u := n.Unit
	if u == nil {
		return
	}
	scales := make(map[string]string)
	for channel, def := range u.Encoding {
		if !scaleChannel(channel, def) {
			continue
		}
		name := n.Name + "_" + channel
		n.Scope.Register(namescope.Scale, name)
		scales[channel] = name
	}
	if len(scales) > 0 {
		r.res.Scales[n.ID] = scales
	}
}

// resolveCompositeScales applies the node's scale mixin: shared
// channels promote to one composite-level scale name, with every
// contributing child renamed to it; independent channels keep their
// per-child names.
func (r *resolver) resolveCompositeScales(n *spectree.Node) {
	shared := make(map[string]string)
	for _, channel := range r.childChannels(n, r.res.Scales) {
		if r.channelMode(n, scaleFamily, channel) != "shared" {
			continue
		}
		name := n.Name + "_" + channel
		for _, cid := range n.Children {
			if childName, ok := r.res.Scales[cid][channel]; ok {
				r.tree.Node(cid).Scope.Rename(namescope.Scale, childName, name)
			}
		}
		n.Scope.Register(namescope.Scale, name)
		shared[channel] = name
	}
	if len(shared) > 0 {
		r.res.Scales[n.ID] = shared
	}
}
