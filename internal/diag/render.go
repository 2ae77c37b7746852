package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	pathColor = color.New(color.FgWhite, color.Bold)
)

func severityLabel(s Severity, colorize bool) string {
	label := strings.ToLower(s.String())
	if !colorize {
		return label
	}
	switch s {
	case SevError:
		return errColor.Sprint(label)
	case SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

// Render writes the bag's diagnostics to out, one per line, with notes
// indented under their diagnostic. Loci are padded to a common width
// so messages line up.
func Render(out io.Writer, b *Bag, colorize bool) {
	if out == nil || b == nil {
		return
	}
	width := 0
	for _, d := range b.Items() {
		if w := runewidth.StringWidth(d.Primary.String()); w > width {
			width = w
		}
	}
	for _, d := range b.Items() {
		locus := d.Primary.String()
		pad := strings.Repeat(" ", width-runewidth.StringWidth(locus))
		shown := locus
		if colorize {
			shown = pathColor.Sprint(locus)
		}
		fmt.Fprintf(out, "%s%s  %s[%s]: %s\n",
			shown, pad, severityLabel(d.Severity, colorize), d.Code, d.Message)
		for _, n := range d.Notes {
			fmt.Fprintf(out, "  note: %s: %s\n", n.Locus, n.Msg)
		}
	}
}
