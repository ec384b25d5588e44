package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/sable-lang/sable/codegen"
	"github.com/sable-lang/sable/ir"
)

type MainConfig struct {
	Config string `cli:"name=c aliases=config desc='yaml file with generator overrides'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// FileConfig is the yaml shape of -c files: primitive-name overrides plus
// the literal chunk limit.
type FileConfig struct {
	Primitives codegen.Primitives `yaml:"primitives"`
	ChunkLimit int                `yaml:"chunkLimit"`
}

func (cfg *MainConfig) genOpts() ([]codegen.Option, error) {
	if cfg.Config == "" {
		return nil, nil
	}
	d, err := os.ReadFile(cfg.Config)
	if err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", cfg.Config, err)
	}
	fc := &FileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return nil, fmt.Errorf("error decoding config %s: %w", cfg.Config, err)
	}
	res := []codegen.Option{codegen.WithPrimitives(fc.Primitives)}
	if fc.ChunkLimit != 0 {
		res = append(res, codegen.WithChunkLimit(fc.ChunkLimit))
	}
	return res, nil
}

func readTree(arg string) (*ir.Node, error) {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
	}
	d, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	node, err := ir.FromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

type GenConfig struct {
	*MainConfig

	Verify string `cli:"name=verify desc='diff generated text against this file instead of writing output'"`

	Gen *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Color  bool   `cli:"name=color desc='force colorized output'"`
	Filter string `cli:"name=filter desc='node predicate, e.g. kind == \"Expression\"'"`

	Dump *cli.Command
}
