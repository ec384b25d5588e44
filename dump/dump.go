// Package dump renders IR trees as an indented, optionally colorized
// listing for inspecting parser output while developing template front
// ends.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/sable-lang/sable/ir"
	"github.com/sable-lang/sable/sink"
)

type dumpState struct {
	colors *Colors
	filter func(*ir.Node) bool
}

type DumpOption func(*dumpState)

func DumpColors(c *Colors) DumpOption {
	return func(ds *dumpState) { ds.colors = c }
}

// DumpFilter restricts the listing to nodes the predicate accepts;
// children of accepted nodes are still visited.
func DumpFilter(f func(*ir.Node) bool) DumpOption {
	return func(ds *dumpState) { ds.filter = f }
}

func Dump(node *ir.Node, w io.Writer, opts ...DumpOption) error {
	ds := &dumpState{}
	for _, opt := range opts {
		opt(ds)
	}
	return dump(node, w, ds, 0)
}

func dump(node *ir.Node, w io.Writer, ds *dumpState, depth int) error {
	if ds.filter == nil || ds.filter(node) {
		if err := writeLine(node, w, ds, depth); err != nil {
			return err
		}
	}
	for _, c := range node.Children {
		if err := dump(c, w, ds, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(node *ir.Node, w io.Writer, ds *dumpState, depth int) error {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(ds.color(node.Kind, KindColor, kindLabel(node)))
	if node.Name != "" {
		sb.WriteString(" ")
		sb.WriteString(ds.color(node.Kind, NameColor, node.Name))
	}
	if node.Kind == ir.KindToken {
		sb.WriteString(" ")
		sb.WriteString(ds.color(node.Kind, TextColor, sink.Literal(node.Content)))
	}
	if node.Source != nil {
		sb.WriteString(" @ ")
		sb.WriteString(ds.color(node.Kind, PosColor, node.Source.String()))
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func kindLabel(node *ir.Node) string {
	if node.Kind == ir.KindToken {
		return fmt.Sprintf("Token(%s)", node.Lang)
	}
	return node.Kind.String()
}

func (ds *dumpState) color(k ir.Kind, attr ColorAttr, v string) string {
	if ds.colors == nil {
		return v
	}
	return ds.colors.Color(k, attr, v)
}
