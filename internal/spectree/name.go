package spectree

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SanitizeName turns arbitrary path-derived text into an
// identifier-safe token: NFKC-normalized, non-identifier runes mapped
// to underscores, and a leading underscore added when the result would
// start with a digit.
func SanitizeName(s string) string {
	s = norm.NFKC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		return "_"
	}
	if unicode.IsDigit(rune(out[0])) {
		return "_" + out
	}
	return out
}

// childName derives a child's name from its parent's name and its
// declaration index. Names are a pure function of the path, so they
// are collision-free without any global registry.
func childName(parent string, index int) string {
	return parent + "_" + strconv.Itoa(index)
}
