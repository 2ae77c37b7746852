package props_test

import (
	"reflect"
	"testing"

	"github.com/ActiveChai/vega-lite/internal/props"
)

func TestSplitExplicitWinsRegardlessOfWriteOrder(t *testing.T) {
	s := props.NewSplit()
	s.Set("type", "mercator", true)
	s.Set("type", "equalEarth", false) // implicit write after explicit

	v, ok := s.Get("type")
	if !ok || v != "mercator" {
		t.Fatalf("Get(type) = %v, %v; want mercator, true", v, ok)
	}

	s2 := props.NewSplit()
	s2.Set("type", "equalEarth", false)
	s2.Set("type", "mercator", true) // explicit write after implicit
	if v, _ := s2.Get("type"); v != "mercator" {
		t.Fatalf("Get(type) = %v; want mercator", v)
	}
}

func TestSplitImplicitFallback(t *testing.T) {
	s := props.NewSplit()
	s.Set("precision", 0.5, false)
	v, ok := s.Get("precision")
	if !ok || v != 0.5 {
		t.Fatalf("Get(precision) = %v, %v; want 0.5, true", v, ok)
	}
	if _, ok := s.Explicit("precision"); ok {
		t.Fatal("implicit value reported as explicit")
	}
}

func TestSplitKeysDeterministic(t *testing.T) {
	s := props.NewSplit()
	s.Set("rotate", []any{0.0, 0.0}, true)
	s.Set("center", []any{0.0, 0.0}, false)
	s.Set("type", "albers", false)

	want := []string{"center", "rotate", "type"}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v; want %v", got, want)
	}
	if got := s.ExplicitKeys(); !reflect.DeepEqual(got, []string{"rotate"}) {
		t.Fatalf("ExplicitKeys() = %v; want [rotate]", got)
	}
}

func TestSplitCombined(t *testing.T) {
	s := props.NewSplit()
	s.Set("type", "albers", false)
	s.Set("type", "mercator", true)
	s.Set("precision", 0.5, false)

	got := s.Combined()
	want := map[string]any{"type": "mercator", "precision": 0.5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Combined() = %v; want %v", got, want)
	}
}
