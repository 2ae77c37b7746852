package diag

// Severity ranks how strongly a diagnostic should interrupt a compile.
// Anything below SevError never aborts on its own.
type Severity uint8

const (
	// SevInfo is advisory output about a compile.
	SevInfo Severity = iota
	// SevWarning flags suspect input that still compiles.
	SevWarning
	// SevError flags input the compiler cannot lower.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
