package diag_test

import (
	"strings"
	"testing"

	"github.com/ActiveChai/vega-lite/internal/diag"
)

func d(code diag.Code, sev diag.Severity, path, msg string) diag.Diagnostic {
	return diag.Diagnostic{Severity: sev, Code: code, Message: msg, Primary: diag.Locus{Path: path}}
}

func TestBagCapsAtMax(t *testing.T) {
	b := diag.NewBag(2)
	if !b.Add(d(diag.SpecBadJSON, diag.SevError, "a", "x")) {
		t.Fatal("first add rejected")
	}
	b.Add(d(diag.SpecBadJSON, diag.SevError, "b", "y"))
	if b.Add(d(diag.SpecBadJSON, diag.SevError, "c", "z")) {
		t.Fatal("add past the cap must be rejected")
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d; want 2", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := diag.NewBag(10)
	b.Add(d(diag.ResolveBadResolveMode, diag.SevWarning, "view", "w"))
	if b.HasErrors() {
		t.Fatal("warnings alone must not count as errors")
	}
	b.Add(d(diag.AsmFitSourceMissing, diag.SevError, "view", "e"))
	if !b.HasErrors() {
		t.Fatal("error not detected")
	}
}

func TestBagSortOrdersByPathThenSeverity(t *testing.T) {
	b := diag.NewBag(10)
	b.Add(d(diag.SpecBadEncoding, diag.SevWarning, "view_1", "w"))
	b.Add(d(diag.SpecBadJSON, diag.SevError, "view_0", "e"))
	b.Add(d(diag.SpecBadNodeKind, diag.SevError, "view_1", "e"))
	b.Sort()

	items := b.Items()
	if items[0].Primary.Path != "view_0" {
		t.Fatalf("first = %v", items[0])
	}
	if items[1].Severity != diag.SevError || items[1].Primary.Path != "view_1" {
		t.Fatalf("second = %v; errors sort before warnings within a path", items[1])
	}
}

func TestBagDedup(t *testing.T) {
	b := diag.NewBag(10)
	b.Add(d(diag.SpecBadEncoding, diag.SevError, "view", "first"))
	b.Add(d(diag.SpecBadEncoding, diag.SevError, "view", "second"))
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("Len = %d after dedup; want 1", b.Len())
	}
	if b.Items()[0].Message != "first" {
		t.Fatal("dedup must keep the first occurrence")
	}
}

func TestCodeString(t *testing.T) {
	if got := diag.AsmFitSourceMissing.String(); got != "VL3001" {
		t.Fatalf("Code.String = %q", got)
	}
}

func TestRenderAlignsLoci(t *testing.T) {
	b := diag.NewBag(10)
	b.Add(d(diag.SpecBadJSON, diag.SevError, "view", "broken"))
	b.Add(d(diag.SpecBadEncoding, diag.SevWarning, "view_child_0", "odd"))

	var sb strings.Builder
	diag.Render(&sb, b, false)
	out := sb.String()
	if !strings.Contains(out, "error[VL1001]: broken") {
		t.Fatalf("render output = %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	// Short loci are padded so the severity column lines up.
	if strings.Index(lines[0], "error") != strings.Index(lines[1], "warning") {
		t.Fatalf("columns misaligned:\n%s", out)
	}
}
