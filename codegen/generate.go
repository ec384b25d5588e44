package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/sable-lang/sable/debug"
	"github.com/sable-lang/sable/ir"
)

type genState struct {
	line, col int

	scopes      int
	scopeOpens  int
	scopeCloses int

	chunkLimit int
	prims      Primitives
	ext        ExtensionFunc
}

// ExtensionFunc renders an Extension node. It receives a Renderer so it can
// write raw output and recurse into child nodes within the current pass.
type ExtensionFunc func(r *Renderer, node *ir.Node) error

// Renderer is the handle extension handlers use to participate in a pass.
type Renderer struct {
	w  io.Writer
	gs *genState
}

func (r *Renderer) Render(node *ir.Node) error {
	return render(node, r.w, r.gs)
}

func (r *Renderer) WriteRaw(s string) error {
	return writeString(r.w, s, r.gs)
}

// Generate lowers root to host source text on w. The tree is read-only
// input; one call is one pass and the state is discarded afterwards.
func Generate(root *ir.Node, w io.Writer, opts ...Option) error {
	if root == nil {
		return fmt.Errorf("%w: root node", ErrNilInput)
	}
	if w == nil {
		return fmt.Errorf("%w: output writer", ErrNilInput)
	}
	gs := &genState{
		chunkLimit: DefaultChunkLimit,
		prims:      DefaultPrimitives(),
	}
	for _, opt := range opts {
		opt(gs)
	}
	if gs.chunkLimit < 1 {
		return fmt.Errorf("%w: chunk limit %d", ErrBadOption, gs.chunkLimit)
	}
	if err := render(root, w, gs); err != nil {
		return err
	}
	if gs.scopes != 0 || gs.scopeOpens != gs.scopeCloses {
		return fmt.Errorf("%w: unbalanced mapping scopes (%d open, %d close)",
			ErrRender, gs.scopeOpens, gs.scopeCloses)
	}
	return nil
}

func render(node *ir.Node, w io.Writer, gs *genState) error {
	if debug.Render() {
		debug.Logf("render %s", node.Kind)
	}
	switch node.Kind {
	case ir.KindDocument:
		for _, c := range node.Children {
			if err := render(c, w, gs); err != nil {
				return err
			}
		}
		return nil
	case ir.KindChecksum:
		return renderChecksum(node, w, gs)
	case ir.KindUsingDirective:
		return renderUsing(node, w, gs)
	case ir.KindExpression:
		return renderExpression(node, w, gs)
	case ir.KindStatement:
		return renderStatement(node, w, gs)
	case ir.KindHtmlContent:
		return renderContent(node, w, gs)
	case ir.KindHtmlAttribute:
		return renderAttribute(node, w, gs)
	case ir.KindHtmlAttributeValue:
		return renderLiteralAttributeValue(node, w, gs)
	case ir.KindExpressionAttributeValue:
		return renderExpressionAttributeValue(node, w, gs)
	case ir.KindStatementAttributeValue:
		return renderStatementAttributeValue(node, w, gs)
	case ir.KindToken:
		return writeString(w, node.Content, gs)
	case ir.KindExtension:
		if gs.ext == nil {
			return fmt.Errorf("%w: no extension renderer installed", ErrRender)
		}
		return gs.ext(&Renderer{w: w, gs: gs}, node)
	default:
		panic("kind")
	}
}

// payload emits expression/statement children: tokens in the expected
// language contribute their text verbatim, everything else goes back
// through render.
func payload(children []*ir.Node, lang ir.Lang, w io.Writer, gs *genState) error {
	for _, c := range children {
		if c.IsToken(lang) {
			if err := writeString(w, c.Content, gs); err != nil {
				return err
			}
			continue
		}
		if err := render(c, w, gs); err != nil {
			return err
		}
	}
	return nil
}

// Write helpers

func writeString(w io.Writer, s string, gs *genState) error {
	_, err := w.Write([]byte(s))
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		gs.line += strings.Count(s, "\n")
		gs.col = len(s) - i - 1
	} else {
		gs.col += len(s)
	}
	return err
}

func freshLine(w io.Writer, gs *genState) error {
	if gs.col == 0 {
		return nil
	}
	return writeString(w, "\n", gs)
}

// pad emits filler so the next write lands near an original source column.
func pad(w io.Writer, gs *genState, n int) error {
	if n <= 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", n), gs)
}

func spanOf(node *ir.Node) ir.SourceSpan {
	if node.Source != nil {
		return *node.Source
	}
	return ir.SourceSpan{}
}
