package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/sable-lang/sable/codegen"
	"github.com/sable-lang/sable/sink"
	"github.com/sable-lang/sable/textdiff"
)

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("gen").
		WithAliases("g").
		WithSynopsis("gen [-verify file] [files]").
		WithDescription("Generate host source text from IR JSON files ('-' for stdin).").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return genMain(cfg, cc, args)
		})
	cfg.Gen = cmd
	return cmd
}

func genMain(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		cfg.Gen.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	genOpts, err := cfg.genOpts()
	if err != nil {
		return err
	}
	buf := sink.NewBuffer()
	for _, arg := range args {
		node, err := readTree(arg)
		if err != nil {
			return err
		}
		if err := codegen.Generate(node, buf, genOpts...); err != nil {
			return fmt.Errorf("error generating %s: %w", arg, err)
		}
	}
	if cfg.Verify != "" {
		want, err := os.ReadFile(cfg.Verify)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", cfg.Verify, err)
		}
		if diff := textdiff.Unified(string(want), buf.String()); diff != "" {
			fmt.Fprintf(cc.Out, "%s differs from generated text:\n%s", cfg.Verify, diff)
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	_, err = cc.Out.Write([]byte(buf.String()))
	return err
}
