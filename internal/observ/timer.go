package observ

import (
	"fmt"
	"time"
)

// Phase records the duration and metadata of a compilation phase.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the execution time of the compile phases.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Phases returns the recorded phases in begin order.
func (t *Timer) Phases() []Phase { return t.phases }

// Summary returns a human-readable string summarizing all phases.
func (t *Timer) Summary() string {
	out := "timings:\n"
	for _, p := range t.phases {
		out += fmt.Sprintf("  %-12s %7.2f ms", p.Name, float64(p.Dur)/float64(time.Millisecond))
		if p.Note != "" {
			out += "  // " + p.Note
		}
		out += "\n"
	}
	return out
}
