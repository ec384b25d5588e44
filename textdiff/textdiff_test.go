package textdiff

import (
	"strings"
	"testing"
)

func TestUnifiedEqual(t *testing.T) {
	if d := Unified("a\nb\n", "a\nb\n"); d != "" {
		t.Fatalf("expected empty diff, got:\n%s", d)
	}
}

func TestUnifiedReportsChange(t *testing.T) {
	d := Unified("a\nb\nc\n", "a\nx\nc\n")
	if d == "" {
		t.Fatal("expected a diff")
	}
	if !strings.Contains(d, "-b") {
		t.Errorf("diff lacks deletion of b:\n%s", d)
	}
	if !strings.Contains(d, "+x") {
		t.Errorf("diff lacks insertion of x:\n%s", d)
	}
}
