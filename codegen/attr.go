package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/sable-lang/sable/ir"
	"github.com/sable-lang/sable/sink"
)

// Attribute lowering implements the begin/value/end protocol for composed
// or conditional attributes. The begin call carries the attribute's name,
// prefix and suffix with their absolute offsets plus the number of value
// pieces; each piece then emits exactly one value call; the end call closes
// the attribute.

func renderAttribute(node *ir.Node, w io.Writer, gs *genState) error {
	span := spanOf(node)
	prefixOffset := span.Offset
	suffixOffset := span.Offset + span.Length - len(node.Suffix)
	pieces := 0
	for _, c := range node.Children {
		if isAttrPiece(c) {
			pieces++
		}
	}
	if err := freshLine(w, gs); err != nil {
		return err
	}
	begin := fmt.Sprintf("%s(%s, %s, %d, %s, %d, %d);\n",
		gs.prims.BeginAttribute,
		sink.Literal(node.Name),
		sink.Literal(node.Prefix), prefixOffset,
		sink.Literal(node.Suffix), suffixOffset,
		pieces)
	if err := writeString(w, begin, gs); err != nil {
		return err
	}
	for _, c := range node.Children {
		if err := render(c, w, gs); err != nil {
			return err
		}
	}
	if err := freshLine(w, gs); err != nil {
		return err
	}
	return writeString(w, gs.prims.EndAttribute+"();\n", gs)
}

func isAttrPiece(c *ir.Node) bool {
	switch c.Kind {
	case ir.KindHtmlAttributeValue,
		ir.KindExpressionAttributeValue,
		ir.KindStatementAttributeValue,
		ir.KindExtension:
		return true
	default:
		return false
	}
}

// renderLiteralAttributeValue emits one value call whose payload is the
// concatenated markup text of the piece.
func renderLiteralAttributeValue(node *ir.Node, w io.Writer, gs *genState) error {
	span := spanOf(node)
	var v strings.Builder
	for _, c := range node.Children {
		if c.Kind == ir.KindToken {
			v.WriteString(c.Content)
		}
	}
	if err := freshLine(w, gs); err != nil {
		return err
	}
	call := fmt.Sprintf("%s(%s, %d, %s, %d, %d, true);\n",
		gs.prims.WriteAttributeValue,
		sink.Literal(node.Prefix), span.Offset,
		sink.Literal(v.String()),
		span.Offset+len(node.Prefix), span.Length)
	return writeString(w, call, gs)
}

// renderExpressionAttributeValue emits one value call whose payload is the
// lowered expression, bracketed by a mapping scope when spanned.
func renderExpressionAttributeValue(node *ir.Node, w io.Writer, gs *genState) error {
	span := spanOf(node)
	valueOffset := span.Offset + len(node.Prefix)
	valueLength := span.Length - len(node.Prefix)
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
	head := fmt.Sprintf("%s(%s, %d, ",
		gs.prims.WriteAttributeValue,
		sink.Literal(node.Prefix), span.Offset)
	if err := writeString(w, head, gs); err != nil {
		return err
	}
	if err := payload(node.Children, ir.LangHost, w, gs); err != nil {
		return err
	}
	tail := fmt.Sprintf(", %d, %d, false);", valueOffset, valueLength)
	if err := writeString(w, tail, gs); err != nil {
		return err
	}
	if sc.opened {
		return sc.close()
	}
	return writeString(w, "\n", gs)
}

// renderStatementAttributeValue emits one value call whose payload is a
// deferred-render value: a template object that, invoked at runtime, pushes
// a nested writer, runs the statement body against it, and pops it back.
func renderStatementAttributeValue(node *ir.Node, w io.Writer, gs *genState) error {
	span := spanOf(node)
	valueOffset := span.Offset + len(node.Prefix)
	valueLength := span.Length - len(node.Prefix)
	if err := freshLine(w, gs); err != nil {
		return err
	}
	head := fmt.Sprintf("%s(%s, %d, %s(func(__w) {\n",
		gs.prims.WriteAttributeValue,
		sink.Literal(node.Prefix), span.Offset,
		gs.prims.TemplateType)
	if err := writeString(w, head, gs); err != nil {
		return err
	}
	if err := writeString(w, gs.prims.PushWriter+"(__w);\n", gs); err != nil {
		return err
	}
	if !stmtWhitespaceOnly(node) {
		if err := stmtBody(node, w, gs); err != nil {
			return err
		}
	}
	if err := writeString(w, gs.prims.PopWriter+"();\n", gs); err != nil {
		return err
	}
	tail := fmt.Sprintf("}), %d, %d, false);\n", valueOffset, valueLength)
	return writeString(w, tail, gs)
}
