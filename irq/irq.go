// Package irq compiles node predicates for filtering IR dumps, e.g.
// `kind == "Expression" && line > 10`.
package irq

import (
	"github.com/expr-lang/expr"

	"github.com/sable-lang/sable/ir"
)

type Env struct {
	Kind    string `expr:"kind"`
	Lang    string `expr:"lang"`
	File    string `expr:"file"`
	Line    int    `expr:"line"`
	Col     int    `expr:"col"`
	Offset  int    `expr:"offset"`
	Length  int    `expr:"length"`
	Content string `expr:"content"`
	Name    string `expr:"name"`
}

// Compile turns src into a predicate over IR nodes. Evaluation errors make
// the predicate reject the node.
func Compile(src string) (func(*ir.Node) bool, error) {
	prog, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return func(n *ir.Node) bool {
		out, err := expr.Run(prog, envFor(n))
		if err != nil {
			return false
		}
		b, _ := out.(bool)
		return b
	}, nil
}

func envFor(n *ir.Node) Env {
	env := Env{
		Kind:    n.Kind.String(),
		Content: n.Content,
		Name:    n.Name,
	}
	if n.Kind == ir.KindToken {
		env.Lang = n.Lang.String()
	}
	if n.Source != nil {
		env.File = n.Source.File
		env.Line = n.Source.Line
		env.Col = n.Source.Col
		env.Offset = n.Source.Offset
		env.Length = n.Source.Length
	}
	return env
}
