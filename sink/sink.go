package sink

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Buffer is an append-only text accumulator with line and column tracking.
// It maintains a stack of accumulators so generated code following the
// push-writer/pop-writer protocol can render into a nested target and
// retrieve the result.
type Buffer struct {
	stack []*strings.Builder
	line  int
	col   int
}

func NewBuffer() *Buffer {
	return &Buffer{stack: []*strings.Builder{{}}}
}

func (b *Buffer) top() *strings.Builder {
	return b.stack[len(b.stack)-1]
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.track(string(p))
	return b.top().Write(p)
}

func (b *Buffer) WriteString(s string) {
	b.track(s)
	b.top().WriteString(s)
}

func (b *Buffer) track(s string) {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		b.line += strings.Count(s, "\n")
		b.col = len(s) - i - 1
		return
	}
	b.col += len(s)
}

// Push makes a fresh accumulator the write target.
func (b *Buffer) Push() {
	b.stack = append(b.stack, &strings.Builder{})
}

// Pop removes the current accumulator and returns its contents. Popping the
// root accumulator is a caller bug.
func (b *Buffer) Pop() string {
	if len(b.stack) == 1 {
		panic("pop of root accumulator")
	}
	s := b.top().String()
	b.stack = b.stack[:len(b.stack)-1]
	return s
}

func (b *Buffer) String() string {
	return b.stack[0].String()
}

func (b *Buffer) Line() int { return b.line }
func (b *Buffer) Col() int  { return b.col }

// Literal renders s as a double-quoted host source literal, escaping
// backslashes, quotes, common control characters, and any remaining control
// runes as \uXXXX sequences.
func Literal(s string) string {
	d := make([]byte, 1, len(s)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range s {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}
