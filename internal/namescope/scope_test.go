package namescope_test

import (
	"testing"

	"github.com/ActiveChai/vega-lite/internal/namescope"
)

func TestRegisterSeedsIdentity(t *testing.T) {
	s := namescope.New()
	s.Register(namescope.Projection, "p0")
	got, ok := s.Get(namescope.Projection, "p0")
	if !ok || got != "p0" {
		t.Fatalf("Get(p0) = %q, %v; want p0, true", got, ok)
	}
}

func TestRenameIsIdempotent(t *testing.T) {
	s := namescope.New()
	s.Register(namescope.Projection, "a")
	s.Rename(namescope.Projection, "a", "b")
	s.Rename(namescope.Projection, "a", "b")
	got, _ := s.Get(namescope.Projection, "a")
	if got != "b" {
		t.Fatalf("Get(a) = %q after double rename; want b", got)
	}
}

func TestRenameUnregisteredIsNoOp(t *testing.T) {
	s := namescope.New()
	s.Rename(namescope.Scale, "ghost", "real")
	if _, ok := s.Get(namescope.Scale, "ghost"); ok {
		t.Fatal("rename of unregistered name created an entry")
	}
}

func TestLookupUnseededReturnsArgument(t *testing.T) {
	s := namescope.New()
	if got := s.Lookup(namescope.Signal, "width"); got != "width" {
		t.Fatalf("Lookup(width) = %q; want width", got)
	}
}

func TestKindsAreIndependent(t *testing.T) {
	s := namescope.New()
	s.Register(namescope.Scale, "x")
	s.Rename(namescope.Scale, "x", "shared_x")
	if _, ok := s.Get(namescope.Projection, "x"); ok {
		t.Fatal("scale rename leaked into projection map")
	}
	if got, _ := s.Get(namescope.Scale, "x"); got != "shared_x" {
		t.Fatalf("Get(scale, x) = %q; want shared_x", got)
	}
}
