package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/sable-lang/sable/dump"
	"github.com/sable-lang/sable/irq"
)

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [-color] [-filter pred] [files]").
		WithDescription("Show IR trees as an indented listing.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dumpMain(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func dumpMain(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	dumpOpts := []dump.DumpOption{}
	if cfg.Filter != "" {
		p, err := irq.Compile(cfg.Filter)
		if err != nil {
			return err
		}
		dumpOpts = append(dumpOpts, dump.DumpFilter(p))
	}
	if useColor(cfg, cc) {
		dumpOpts = append(dumpOpts, dump.DumpColors(dump.NewColors()))
	}
	for _, arg := range args {
		node, err := readTree(arg)
		if err != nil {
			return err
		}
		if err := dump.Dump(node, cc.Out, dumpOpts...); err != nil {
			return err
		}
	}
	return nil
}

func useColor(cfg *DumpConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
