package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: scl/s, json/j, yaml/y (default from file suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: scl/s, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "bools",
			Description: "boolean spelling in output: yes or true",
			Type:        cli.NamedFuncOpt(cfg.boolsOpt, "(yes|true)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "scl").
		WithSynopsis("scl [opts] command [opts]").
		WithDescription("scl is a tool for working with SCL configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sclMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FmtCommand(cfg),
			CheckCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view documents, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("fmt [-w] [-l] [files]").
		WithDescription("rewrite documents in canonical form, keeping comments").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtCmd(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("check [files]").
		WithDescription("check that documents parse, reporting errors with positions").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <expr> [files]").
		WithDescription("evaluate an expression over documents, eg cfg.port or has(\"cfg.tls\")").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-text] a b").
		WithDescription("diff documents, exiting 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-merge] <patchfile> [files]").
		WithDescription("apply a JSON patch or JSON merge patch to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
