package codegen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sable-lang/sable/ir"
	"github.com/sable-lang/sable/textdiff"
)

func TestGenerateNilRoot(t *testing.T) {
	err := Generate(nil, bytes.NewBuffer(nil))
	if !errors.Is(err, ErrNilInput) {
		t.Errorf("got %v, want ErrNilInput", err)
	}
}

func TestGenerateNilWriter(t *testing.T) {
	err := Generate(ir.Document(), nil)
	if !errors.Is(err, ErrNilInput) {
		t.Errorf("got %v, want ErrNilInput", err)
	}
}

func TestGenerateBadChunkLimit(t *testing.T) {
	err := Generate(ir.Document(), bytes.NewBuffer(nil), WithChunkLimit(0))
	if !errors.Is(err, ErrBadOption) {
		t.Errorf("got %v, want ErrBadOption", err)
	}
}

func TestGenerateNoOutputBeforeValidationFailure(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Generate(nil, buf); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("output produced before validation failure: %q", buf.String())
	}
}

func TestExtensionWithoutRenderer(t *testing.T) {
	err := Generate(ir.Extension(nil, nil), bytes.NewBuffer(nil))
	if !errors.Is(err, ErrRender) {
		t.Errorf("got %v, want ErrRender", err)
	}
}

func TestExtensionRendersNestedTemplate(t *testing.T) {
	// An expression embedding a nested template: the extension recurses
	// back through the dispatcher mid-payload.
	nested := ir.HtmlContent(nil, ir.MarkupToken("<b>hi</b>"))
	node := ir.Expression(nil,
		ir.HostToken("Render("),
		ir.Extension(nil, nil, nested),
		ir.HostToken(")"),
	)
	got := gen(t, node, WithExtensionRenderer(func(r *Renderer, n *ir.Node) error {
		for _, c := range n.Children {
			if err := r.Render(c); err != nil {
				return err
			}
		}
		return nil
	}))
	want := "Write(Render(\nWriteLiteral(\"<b>hi</b>\");\n));\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtensionErrorAbortsPass(t *testing.T) {
	boom := errors.New("boom")
	node := ir.Document(
		ir.Statement(
			&ir.SourceSpan{File: "t.sbl", Line: 1, Col: 1},
			ir.HostToken("x();"),
			ir.Extension(nil, nil),
		),
	)
	err := Generate(node, bytes.NewBuffer(nil), WithExtensionRenderer(
		func(r *Renderer, n *ir.Node) error { return boom }))
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want boom", err)
	}
}

func TestScopeBalance(t *testing.T) {
	span := func(line int) *ir.SourceSpan {
		return &ir.SourceSpan{File: "t.sbl", Offset: line * 10, Length: 5, Line: line, Col: 1}
	}
	root := ir.Document(
		ir.UsingDirective("using html;", span(1)),
		ir.Statement(span(2), ir.HostToken("var n = 1;")),
		ir.Expression(span(3), ir.HostToken("n")),
		ir.HtmlAttribute("id", ` id="`, `"`, span(4),
			ir.ExpressionAttributeValue("", span(5), ir.HostToken("n")),
			ir.StatementAttributeValue(" ", span(6), ir.HostToken("emit(n);")),
		),
	)
	got := gen(t, root)
	opens := strings.Count(got, "#line ") - strings.Count(got, "#line default") - strings.Count(got, "#line hidden")
	closes := strings.Count(got, "#line default")
	if opens != closes {
		t.Errorf("unbalanced scopes: %d opens, %d closes:\n%s", opens, closes, got)
	}
	if closes != 5 {
		t.Errorf("expected 5 scopes, got %d:\n%s", closes, got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	root := ir.Document(
		ir.Checksum("page.sbl", "2a0d3cdb-6c29-4a9f-95b9-4ee8f255ac9e", "77aa"),
		ir.HtmlContent(nil, ir.MarkupToken(strings.Repeat("<p>x</p>", 400))),
		ir.Expression(&ir.SourceSpan{File: "page.sbl", Offset: 9, Length: 4, Line: 2, Col: 2},
			ir.HostToken("name")),
	)
	a := MustString(root)
	b := MustString(root)
	if diff := textdiff.Unified(a, b); diff != "" {
		t.Errorf("output not deterministic:\n%s", diff)
	}
}

func TestGenerateGolden(t *testing.T) {
	root := ir.Document(
		ir.Checksum("page.sbl", "2a0d3cdb-6c29-4a9f-95b9-4ee8f255ac9e", "77aa"),
		ir.UsingDirective("using html;", nil),
		ir.HtmlContent(nil, ir.MarkupToken("<p>"), ir.MarkupToken("hello, ")),
		ir.Expression(&ir.SourceSpan{File: "page.sbl", Offset: 20, Length: 4, Line: 2, Col: 8},
			ir.HostToken("name")),
		ir.HtmlContent(nil, ir.MarkupToken("</p>")),
	)
	want := "#pragma checksum \"page.sbl\" \"{2a0d3cdb-6c29-4a9f-95b9-4ee8f255ac9e}\" \"77aa\"\n" +
		"using html;\n" +
		"WriteLiteral(\"<p>hello, \");\n" +
		"#line 2 \"page.sbl\"\n" +
		" Write(name);\n" +
		"#line default\n" +
		"#line hidden\n" +
		"WriteLiteral(\"</p>\");\n"
	got := MustString(root)
	if diff := textdiff.Unified(want, got); diff != "" {
		t.Errorf("golden mismatch (-want +got):\n%s", diff)
	}
}

func TestMustStringPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustString(nil)
}
