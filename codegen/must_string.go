package codegen

import (
	"bytes"

	"github.com/sable-lang/sable/ir"
)

func MustString(node *ir.Node, opts ...Option) string {
	buf := bytes.NewBuffer(nil)
	if err := Generate(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
