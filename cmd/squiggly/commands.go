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
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "squiggly").
		WithSynopsis("squiggly [opts] command [opts]").
		WithDescription("squiggly filters and transforms JSON and YAML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sqMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			FunctionsCommand(cfg))
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a", "ap").
		WithSynopsis("apply [-p profile] <filter> [files]").
		WithDescription(applyDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

const applyDescription = `apply runs a squiggly filter over documents.

The filter is the first argument, or a named filter from the profiles
file with -p.  Remaining arguments are files; with none, apply reads
stdin.  Multi-document YAML input is filtered document by document.

Filter syntax examples:

  id,name                        keep two fields
  id,user{firstName,lastName}    nested selection
  **,-password                   everything but password
  eco*                           fields starting with eco
  name:snake().upper()           rename while serializing
  secret.mask()                  transform the value

Profiles

A profiles file is a YAML mapping of names to filters:

  public: '**,-password,-ssn'
  brief: 'id,name'

By default apply looks for .squiggly.yaml in the current directory.`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-s filter] [files]").
		WithDescription("view documents in color, optionally filtered").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
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
		WithSynopsis("diff [-s filter] a b").
		WithDescription("diff two documents, optionally filtered first").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func FunctionsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FunctionsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("functions").
		WithAliases("fn", "fns").
		WithSynopsis("functions").
		WithDescription("list the transform functions available in filters").
		WithRun(func(cc *cli.Context, args []string) error {
			return functions(cfg, cc, args)
		})
	cfg.Functions = cmd
	return cmd
}
