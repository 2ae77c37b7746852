// Package vega defines the slice of the output rendering-spec
// vocabulary this compiler emits: signals, data sources with their
// transform pipelines, and projections. The full vocabulary belongs to
// the downstream scenegraph runtime.
package vega

// Spec is the assembled output specification.
type Spec struct {
	Schema      string       `json:"$schema,omitempty"`
	Signals     []Signal     `json:"signals,omitempty"`
	Data        []Data       `json:"data,omitempty"`
	Projections []Projection `json:"projections,omitempty"`
}

// Signal is a named runtime value.
type Signal struct {
	Name   string `json:"name"`
	Value  any    `json:"value,omitempty"`
	Update string `json:"update,omitempty"`
}

// SignalRef references a signal by name.
type SignalRef struct {
	Signal string `json:"signal"`
}

// ExprRef carries an inline expression.
type ExprRef struct {
	Expr string `json:"expr"`
}

// Data is one dataset entry with its transform pipeline.
type Data struct {
	Name      string      `json:"name"`
	Source    string      `json:"source,omitempty"`
	Values    any         `json:"values,omitempty"`
	Transform []Transform `json:"transform,omitempty"`
}
