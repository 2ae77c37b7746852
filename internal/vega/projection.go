package vega

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Projection is one entry of the output projections array. Name is
// required and always marshals first; the remaining properties marshal
// in sorted key order so output is reproducible byte for byte.
type Projection struct {
	Name  string
	Props map[string]any
}

func (p Projection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"name":`)
	name, err := json.Marshal(p.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(name)

	keys := make([]string, 0, len(p.Props))
	for k := range p.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf.WriteByte(',')
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p.Props[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
