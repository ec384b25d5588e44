package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/sable-lang/sable/ir"
	"github.com/sable-lang/sable/sink"
)

// Expression lowering

func renderExpression(node *ir.Node, w io.Writer, gs *genState) error {
	sc, err := openScope(node, w, gs, exprFill(node, gs))
	if err != nil {
		return err
	}
	defer sc.close()
	if !sc.opened {
		if err := freshLine(w, gs); err != nil {
			return err
		}
	}
	if err := writeString(w, gs.prims.WriteExpression+"(", gs); err != nil {
		return err
	}
	if err := payload(node.Children, ir.LangHost, w, gs); err != nil {
		return err
	}
	if err := writeString(w, ");", gs); err != nil {
		return err
	}
	if sc.opened {
		return sc.close()
	}
	return writeString(w, "\n", gs)
}

// exprFill pads so the expression body lands where it stood in the
// template: the write primitive's name plus one separator precede it.
func exprFill(node *ir.Node, gs *genState) int {
	if node.Source == nil {
		return 0
	}
	return node.Source.Col - len(gs.prims.WriteExpression) - 2
}

// Statement lowering

func renderStatement(node *ir.Node, w io.Writer, gs *genState) error {
	if stmtWhitespaceOnly(node) {
		return nil
	}
	return stmtBody(node, w, gs)
}

// stmtWhitespaceOnly reports whether every child is a Token holding nothing
// but whitespace. Any non-Token child disqualifies the statement.
func stmtWhitespaceOnly(node *ir.Node) bool {
	for _, c := range node.Children {
		if c.Kind != ir.KindToken {
			return false
		}
		if strings.TrimSpace(c.Content) != "" {
			return false
		}
	}
	return true
}

// stmtBody emits statement children verbatim, preserving original spacing,
// bracketed by a mapping scope when the node is spanned. An open scope
// supplies its own line termination; otherwise a single newline ends the
// statement.
func stmtBody(node *ir.Node, w io.Writer, gs *genState) error {
	sc, err := openScope(node, w, gs, stmtFill(node))
	if err != nil {
		return err
	}
	defer sc.close()
	if !sc.opened {
		if err := freshLine(w, gs); err != nil {
			return err
		}
	}
	if err := payload(node.Children, ir.LangHost, w, gs); err != nil {
		return err
	}
	if sc.opened {
		return sc.close()
	}
	return writeString(w, "\n", gs)
}

func stmtFill(node *ir.Node) int {
	if node.Source == nil {
		return 0
	}
	return node.Source.Col - 1
}

// Literal content lowering

func renderContent(node *ir.Node, w io.Writer, gs *genState) error {
	var lit strings.Builder
	flush := func() error {
		if lit.Len() == 0 {
			return nil
		}
		s := lit.String()
		lit.Reset()
		return writeLiteralChunks(s, w, gs)
	}
	for _, c := range node.Children {
		if c.IsToken(ir.LangMarkup) {
			lit.WriteString(c.Content)
			continue
		}
		if err := flush(); err != nil {
			return err
		}
		if err := render(c, w, gs); err != nil {
			return err
		}
	}
	return flush()
}

// Directive passthrough

func renderChecksum(node *ir.Node, w io.Writer, gs *genState) error {
	if node.Hash == "" {
		return nil
	}
	if err := freshLine(w, gs); err != nil {
		return err
	}
	line := fmt.Sprintf("#pragma checksum %s \"{%s}\" %s\n",
		sink.Literal(node.FileName), node.GUID, sink.Literal(node.Hash))
	return writeString(w, line, gs)
}

func renderUsing(node *ir.Node, w io.Writer, gs *genState) error {
	sc, err := openScope(node, w, gs, 0)
	if err != nil {
		return err
	}
	defer sc.close()
	if !sc.opened {
		if err := freshLine(w, gs); err != nil {
			return err
		}
	}
	if err := writeString(w, node.Content, gs); err != nil {
		return err
	}
	if sc.opened {
		return sc.close()
	}
	return writeString(w, "\n", gs)
}
