package codegen

import "errors"

var (
	ErrNilInput  = errors.New("nil input")
	ErrBadOption = errors.New("bad option")
	ErrRender    = errors.New("render error")
)
