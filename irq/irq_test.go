package irq

import (
	"testing"

	"github.com/sable-lang/sable/ir"
)

func TestCompileKindPredicate(t *testing.T) {
	p, err := Compile(`kind == "Expression"`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !p(ir.Expression(nil)) {
		t.Error("expression rejected")
	}
	if p(ir.Statement(nil)) {
		t.Error("statement accepted")
	}
}

func TestCompilePositionPredicate(t *testing.T) {
	p, err := Compile(`file == "t.sbl" && line >= 2`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	in := ir.Expression(&ir.SourceSpan{File: "t.sbl", Line: 3, Col: 1})
	out := ir.Expression(&ir.SourceSpan{File: "t.sbl", Line: 1, Col: 1})
	if !p(in) {
		t.Error("line 3 rejected")
	}
	if p(out) {
		t.Error("line 1 accepted")
	}
	if p(ir.Expression(nil)) {
		t.Error("span-less node accepted")
	}
}

func TestCompileBadSource(t *testing.T) {
	if _, err := Compile(`kind ==`); err == nil {
		t.Error("expected compile error")
	}
	if _, err := Compile(`line`); err == nil {
		t.Error("expected non-bool program to fail compilation")
	}
}
