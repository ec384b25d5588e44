package codegen

import (
	"fmt"
	"io"

	"github.com/sable-lang/sable/debug"
	"github.com/sable-lang/sable/ir"
	"github.com/sable-lang/sable/sink"
)

// mapScope brackets generated lines with debug-mapping pragmas. A scope
// opened for a node with no source span is inert: opened is false and close
// is a no-op. Scopes nest last-opened-first-closed; close is idempotent so
// handlers can both defer it and call it on the success path.
type mapScope struct {
	w      io.Writer
	gs     *genState
	opened bool
	closed bool
}

// openScope starts a mapping scope for node's source span, declaring that
// subsequent generated lines map to the span's file, line and column. fill
// pads the generated line toward the original column.
func openScope(node *ir.Node, w io.Writer, gs *genState, fill int) (*mapScope, error) {
	sc := &mapScope{w: w, gs: gs}
	src := node.Source
	if src == nil {
		return sc, nil
	}
	if err := freshLine(w, gs); err != nil {
		return nil, err
	}
	if err := writeString(w, fmt.Sprintf("#line %d %s\n", src.Line, sink.Literal(src.File)), gs); err != nil {
		return nil, err
	}
	gs.scopes++
	gs.scopeOpens++
	sc.opened = true
	if debug.Scopes() {
		debug.Logf("scope open %s (depth %d)", src, gs.scopes)
	}
	if err := pad(w, gs, fill); err != nil {
		return sc, err
	}
	return sc, nil
}

// close ends the scope, restoring default line mapping. The closing
// directives supply their own line termination, so a scoped statement must
// not append a further newline.
func (sc *mapScope) close() error {
	if !sc.opened || sc.closed {
		return nil
	}
	sc.closed = true
	sc.gs.scopes--
	sc.gs.scopeCloses++
	if debug.Scopes() {
		debug.Logf("scope close (depth %d)", sc.gs.scopes)
	}
	if err := freshLine(sc.w, sc.gs); err != nil {
		return err
	}
	return writeString(sc.w, "#line default\n#line hidden\n", sc.gs)
}
