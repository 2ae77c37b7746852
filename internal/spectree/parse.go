package spectree

import (
	"encoding/json"
	"fmt"

	"github.com/ActiveChai/vega-lite/internal/diag"
)

// rawNode mirrors the normalized input JSON. The normalizer that
// expands shorthand and applies theme defaults runs upstream; by the
// time a spec reaches us every leaf carries concrete channel
// definitions.
type rawNode struct {
	Name       string                    `json:"name"`
	Mark       string                    `json:"mark"`
	Data       *DataSource               `json:"data"`
	Projection map[string]any            `json:"projection"`
	Encoding   map[string]map[string]any `json:"encoding"`
	Layer      []rawNode                 `json:"layer"`
	Concat     []rawNode                 `json:"concat"`
	Facet      map[string]any            `json:"facet"`
	Spec       *rawNode                  `json:"spec"`
	Resolve    *rawResolve               `json:"resolve"`
}

type rawResolve struct {
	Scale  map[string]string `json:"scale"`
	Axis   map[string]string `json:"axis"`
	Legend map[string]string `json:"legend"`
}

// Parse decodes a normalized spec into a Tree. Structural problems are
// reported through rep and returned as an error; a nil error means the
// tree is complete.
func Parse(data []byte, rep diag.Reporter) (*Tree, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		diag.Error(rep, diag.SpecBadJSON, diag.Locus{Path: "<input>"}, err.Error())
		return nil, fmt.Errorf("decode spec: %w", err)
	}

	rootName := "view"
	if raw.Name != "" {
		rootName = SanitizeName(raw.Name)
	}

	t := &Tree{}
	b := &treeBuilder{tree: t, rep: rep}
	if _, err := b.build(raw, NoNode, rootName); err != nil {
		return nil, err
	}
	return t, nil
}

type treeBuilder struct {
	tree *Tree
	rep  diag.Reporter
}

func (b *treeBuilder) build(raw rawNode, parent NodeID, name string) (NodeID, error) {
	kind, err := nodeKind(raw)
	if err != nil {
		diag.Error(b.rep, diag.SpecBadNodeKind, diag.Locus{Path: name}, err.Error())
		return NoNode, err
	}

	n := &Node{Parent: parent, Kind: kind, Name: name}
	if raw.Resolve != nil {
		n.Resolve = ResolveSpec{
			Scale:  raw.Resolve.Scale,
			Axis:   raw.Resolve.Axis,
			Legend: raw.Resolve.Legend,
		}
	}
	id := b.tree.add(n)

	switch kind {
	case KindUnit:
		unit, err := buildUnit(raw)
		if err != nil {
			diag.Error(b.rep, diag.SpecBadEncoding, diag.Locus{Path: name}, err.Error())
			return NoNode, err
		}
		n.Unit = unit

	case KindLayer, KindConcat:
		children := raw.Layer
		if kind == KindConcat {
			children = raw.Concat
		}
		if len(children) == 0 {
			err := fmt.Errorf("%s node has no children", kind)
			diag.Error(b.rep, diag.SpecEmptyComposite, diag.Locus{Path: name}, err.Error())
			return NoNode, err
		}
		for i, child := range children {
			cid, err := b.build(child, id, childName(name, i))
			if err != nil {
				return NoNode, err
			}
			n.Children = append(n.Children, cid)
		}

	case KindFacet:
		n.FacetDef = raw.Facet
		cid, err := b.build(*raw.Spec, id, name+"_child")
		if err != nil {
			return NoNode, err
		}
		n.Children = append(n.Children, cid)
	}
	return id, nil
}

func nodeKind(raw rawNode) (Kind, error) {
	switch {
	case raw.Layer != nil:
		return KindLayer, nil
	case raw.Concat != nil:
		return KindConcat, nil
	case raw.Facet != nil:
		if raw.Spec == nil {
			return KindFacet, fmt.Errorf("facet node missing spec")
		}
		return KindFacet, nil
	default:
		return KindUnit, nil
	}
}

func buildUnit(raw rawNode) (*UnitSpec, error) {
	u := &UnitSpec{
		Mark:       raw.Mark,
		Data:       raw.Data,
		Projection: raw.Projection,
		Encoding:   make(map[string]ChannelDef, len(raw.Encoding)),
	}
	for channel, def := range raw.Encoding {
		cd := ChannelDef{}
		if f, ok := def["field"]; ok {
			s, ok := f.(string)
			if !ok {
				return nil, fmt.Errorf("channel %q: field must be a string", channel)
			}
			cd.Field = s
		}
		if ty, ok := def["type"]; ok {
			if s, ok := ty.(string); ok {
				cd.Type = s
			}
		}
		if d, ok := def["datum"]; ok {
			cd.Datum = d
			cd.HasDatum = true
		}
		if v, ok := def["value"]; ok {
			cd.Value = v
			cd.HasValue = true
		}
		u.Encoding[channel] = cd
	}
	return u, nil
}
