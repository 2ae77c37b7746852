// Package namescope tracks per-node logical-to-assigned name mappings
// for signals, scales and projections. A scope starts empty; names are
// seeded with identity mappings when registered, and renames only ever
// overwrite an existing entry. Scopes are owned by exactly one spec
// tree node and are never shared.
package namescope

// Kind selects one of the three independent name maps.
type Kind uint8

const (
	Signal Kind = iota
	Scale
	Projection
)

func (k Kind) String() string {
	switch k {
	case Signal:
		return "signal"
	case Scale:
		return "scale"
	case Projection:
		return "projection"
	}
	return "unknown"
}

// Scope holds the three logical→assigned maps for one tree node.
type Scope struct {
	signals     map[string]string
	scales      map[string]string
	projections map[string]string
}

// New returns an empty Scope.
func New() *Scope {
	return &Scope{
		signals:     make(map[string]string),
		scales:      make(map[string]string),
		projections: make(map[string]string),
	}
}

func (s *Scope) table(k Kind) map[string]string {
	switch k {
	case Signal:
		return s.signals
	case Scale:
		return s.scales
	case Projection:
		return s.projections
	}
	return nil
}

// Register seeds name with an identity mapping. Registering an already
// registered name leaves its current mapping untouched.
func (s *Scope) Register(k Kind, name string) {
	t := s.table(k)
	if _, ok := t[name]; !ok {
		t[name] = name
	}
}

// Rename points old at next. It is a no-op if old was never
// registered, and idempotent: applying the same rename twice yields
// the same mapping as applying it once.
func (s *Scope) Rename(k Kind, old, next string) {
	t := s.table(k)
	if _, ok := t[old]; !ok {
		return
	}
	t[old] = next
}

// Get returns the current mapping for name, or "" and false if name
// was never registered in this scope.
func (s *Scope) Get(k Kind, name string) (string, bool) {
	v, ok := s.table(k)[name]
	return v, ok
}

// Lookup returns the current mapping for name, or name itself when it
// was never registered. An unrenamed name is treated as already
// correct.
func (s *Scope) Lookup(k Kind, name string) string {
	if v, ok := s.table(k)[name]; ok {
		return v
	}
	return name
}
