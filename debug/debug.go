package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Render bool
	Scopes bool
	Chunks bool
}

var d *debug

func init() {
	d = &debug{}
	d.Render = boolEnv("SABLE_DEBUG_RENDER")
	d.Scopes = boolEnv("SABLE_DEBUG_SCOPES")
	d.Chunks = boolEnv("SABLE_DEBUG_CHUNKS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Render() bool {
	return d.Render
}
func Scopes() bool {
	return d.Scopes
}
func Chunks() bool {
	return d.Chunks
}
