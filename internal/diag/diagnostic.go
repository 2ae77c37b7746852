package diag

// Locus points at the spec tree position a diagnostic is about. Path
// is the slash-joined chain of node names from the root; Detail names
// the component or channel within that node, when one applies.
type Locus struct {
	Path   string
	Detail string
}

func (l Locus) String() string {
	if l.Detail == "" {
		return l.Path
	}
	return l.Path + " (" + l.Detail + ")"
}

type Note struct {
	Locus Locus
	Msg   string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Locus
	Notes    []Note
}
