package diag

// Reporter is the minimal contract phases use to emit diagnostics.
type Reporter interface {
	Report(code Code, sev Severity, primary Locus, msg string, notes []Note)
}

// BagReporter writes every reported diagnostic into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary Locus, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	})
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, Locus, string, []Note) {}

// Error is a convenience for SevError reports.
func Error(r Reporter, code Code, primary Locus, msg string) {
	if r != nil {
		r.Report(code, SevError, primary, msg, nil)
	}
}

// Warning is a convenience for SevWarning reports.
func Warning(r Reporter, code Code, primary Locus, msg string) {
	if r != nil {
		r.Report(code, SevWarning, primary, msg, nil)
	}
}
