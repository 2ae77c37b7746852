package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ActiveChai/vega-lite/internal/observ"
)

var (
	timingHeaderStyle = lipgloss.NewStyle().Bold(true)
	timingNoteStyle   = lipgloss.NewStyle().Faint(true)
)

func printTimings(out io.Writer, path string, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	fmt.Fprintln(out, timingHeaderStyle.Render(path))
	for _, p := range timer.Phases() {
		line := fmt.Sprintf("  %-10s %7.2f ms", p.Name, toMillis(p.Dur))
		if p.Note != "" {
			line += timingNoteStyle.Render("  // " + p.Note)
		}
		fmt.Fprintln(out, line)
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
