package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sable-lang/sable/ir"
)

func gen(t *testing.T, node *ir.Node, opts ...Option) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Generate(node, buf, opts...); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return buf.String()
}

func TestExpressionUnscoped(t *testing.T) {
	got := gen(t, ir.Expression(nil, ir.HostToken("1+1")))
	if got != "Write(1+1);\n" {
		t.Errorf("got %q", got)
	}
}

func TestExpressionScoped(t *testing.T) {
	span := &ir.SourceSpan{File: "t.sbl", Offset: 42, Length: 9, Line: 3, Col: 10}
	got := gen(t, ir.Expression(span, ir.HostToken("user.Name")))
	want := "#line 3 \"t.sbl\"\n" +
		"   Write(user.Name);\n" +
		"#line default\n" +
		"#line hidden\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestExpressionScopedNoNegativePad(t *testing.T) {
	span := &ir.SourceSpan{File: "t.sbl", Line: 1, Col: 2}
	got := gen(t, ir.Expression(span, ir.HostToken("x")))
	want := "#line 1 \"t.sbl\"\nWrite(x);\n#line default\n#line hidden\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpressionRenamedPrimitive(t *testing.T) {
	got := gen(t, ir.Expression(nil, ir.HostToken("v")),
		WithPrimitives(Primitives{WriteExpression: "Emit"}))
	if got != "Emit(v);\n" {
		t.Errorf("got %q", got)
	}
}

func TestStatementWhitespaceOnlyEmitsNothing(t *testing.T) {
	node := ir.Statement(
		&ir.SourceSpan{File: "t.sbl", Line: 2, Col: 1},
		ir.HostToken("  \n"),
		ir.HostToken("\t"),
	)
	if got := gen(t, node); got != "" {
		t.Errorf("whitespace-only statement produced %q", got)
	}
}

func TestStatementEmptyEmitsNothing(t *testing.T) {
	if got := gen(t, ir.Statement(nil)); got != "" {
		t.Errorf("empty statement produced %q", got)
	}
}

func TestStatementUnscoped(t *testing.T) {
	got := gen(t, ir.Statement(nil, ir.HostToken("count++;")))
	if got != "count++;\n" {
		t.Errorf("got %q", got)
	}
}

func TestStatementScopedPreservesSpacing(t *testing.T) {
	span := &ir.SourceSpan{File: "t.sbl", Offset: 12, Length: 10, Line: 7, Col: 5}
	got := gen(t, ir.Statement(span, ir.HostToken("if (x)  {")))
	want := "#line 7 \"t.sbl\"\n" +
		"    if (x)  {\n" +
		"#line default\n" +
		"#line hidden\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestStatementWithExtensionNotWhitespaceOnly(t *testing.T) {
	node := ir.Statement(nil,
		ir.HostToken("  "),
		ir.Extension(nil, nil),
		ir.HostToken(" "),
	)
	called := false
	got := gen(t, node, WithExtensionRenderer(func(r *Renderer, n *ir.Node) error {
		called = true
		return r.WriteRaw("nested()")
	}))
	if !called {
		t.Fatal("extension renderer not called")
	}
	if got != "  nested() \n" {
		t.Errorf("got %q", got)
	}
}

func TestContentChunking(t *testing.T) {
	node := ir.HtmlContent(nil,
		ir.MarkupToken("ab"),
		ir.MarkupToken("cd"),
		ir.MarkupToken("ef"),
	)
	got := gen(t, node, WithChunkLimit(4))
	want := "WriteLiteral(\"abcd\");\nWriteLiteral(\"ef\");\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestContentEmpty(t *testing.T) {
	if got := gen(t, ir.HtmlContent(nil)); got != "" {
		t.Errorf("empty content produced %q", got)
	}
}

func TestContentEscapesLiteral(t *testing.T) {
	got := gen(t, ir.HtmlContent(nil, ir.MarkupToken("<a href=\"x\">\n")))
	want := `WriteLiteral("<a href=\"x\">\n");` + "\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestContentRejoinProperty(t *testing.T) {
	long := strings.Repeat("<li>item</li>", 500)
	node := ir.HtmlContent(nil, ir.MarkupToken(long))
	got := gen(t, node, WithChunkLimit(97))
	var rejoined strings.Builder
	for _, ln := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		body := strings.TrimSuffix(strings.TrimPrefix(ln, `WriteLiteral("`), `");`)
		rejoined.WriteString(body)
	}
	if rejoined.String() != long {
		t.Error("rejoined literal chunks do not reproduce the source text")
	}
}

func TestChecksumEmptyHashEmitsNothing(t *testing.T) {
	node := ir.Checksum("index.sbl", "ff1816ec-aa5e-4d10-87f7-6f4963833460", "")
	if got := gen(t, node); got != "" {
		t.Errorf("empty checksum produced %q", got)
	}
}

func TestChecksumPragma(t *testing.T) {
	node := ir.Checksum("index.sbl", "ff1816ec-aa5e-4d10-87f7-6f4963833460", "ab01cd")
	got := gen(t, node)
	want := "#pragma checksum \"index.sbl\" \"{ff1816ec-aa5e-4d10-87f7-6f4963833460}\" \"ab01cd\"\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUsingUnscoped(t *testing.T) {
	got := gen(t, ir.UsingDirective("using html;", nil))
	if got != "using html;\n" {
		t.Errorf("got %q", got)
	}
}

func TestUsingScoped(t *testing.T) {
	span := &ir.SourceSpan{File: "t.sbl", Offset: 0, Length: 11, Line: 1, Col: 1}
	got := gen(t, ir.UsingDirective("using html;", span))
	want := "#line 1 \"t.sbl\"\nusing html;\n#line default\n#line hidden\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
