package ir

import "fmt"

// SourceSpan locates a region of an input template. Offset and Length are
// absolute character counts; Line and Col are 1-based.
type SourceSpan struct {
	File   string `json:"file,omitempty"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
}

func (s *SourceSpan) End() int {
	return s.Offset + s.Length
}

func (s *SourceSpan) String() string {
	return fmt.Sprintf("%s:%d:%d(+%d)", s.File, s.Line, s.Col, s.Length)
}
