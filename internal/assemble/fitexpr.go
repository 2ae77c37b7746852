package assemble

import "strings"

// fitExpr renders the fit expression for a list of data-source
// expressions. A single source stays unbracketed; two or more join
// into a bracketed, comma-and-space-separated list. The exact format
// is a compatibility contract with the downstream runtime and must not
// change.
func fitExpr(sources []string) string {
	if len(sources) == 1 {
		return sources[0]
	}
	return "[" + strings.Join(sources, ", ") + "]"
}
