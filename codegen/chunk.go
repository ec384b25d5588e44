package codegen

import (
	"io"

	"github.com/sable-lang/sable/debug"
	"github.com/sable-lang/sable/sink"
)

// chunks splits s into pieces of at most limit code points, cut on rune
// boundaries with no regard for semantic boundaries. Concatenating the
// pieces in order reproduces s exactly.
func chunks(s string, limit int) []string {
	if s == "" {
		return nil
	}
	var out []string
	start, n := 0, 0
	for i := range s {
		if n == limit {
			out = append(out, s[start:i])
			start = i
			n = 0
		}
		n++
	}
	return append(out, s[start:])
}

// writeLiteralChunks emits one write-literal call per chunk of s.
func writeLiteralChunks(s string, w io.Writer, gs *genState) error {
	for _, c := range chunks(s, gs.chunkLimit) {
		if debug.Chunks() {
			debug.Logf("literal chunk: %d bytes", len(c))
		}
		if err := freshLine(w, gs); err != nil {
			return err
		}
		if err := writeString(w, gs.prims.WriteLiteral+"("+sink.Literal(c)+");\n", gs); err != nil {
			return err
		}
	}
	return nil
}
