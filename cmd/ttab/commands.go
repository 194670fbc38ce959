package main

import (
	"github.com/scott-cotton/cli"

	"github.com/clj/truth-table/encode"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Pad: encode.DefaultPadding}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "pad",
			Description: "spaces added to each column width",
			Type:        cli.NamedFuncOpt(cfg.intOpt(&cfg.Pad), "(spaces)"),
		},
		{
			Name:        "max",
			Aliases:     []string{"maxOperands"},
			Description: "skip expressions with more operands (0 = unlimited)",
			Type:        cli.NamedFuncOpt(cfg.intOpt(&cfg.Max), "(count)"),
		},
		{
			Name:        "config",
			Description: "YAML config file with pad/max/color keys",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "ttab").
		WithSynopsis("ttab [opts] command [args]").
		WithDescription("ttab prints truth tables for the boolean expressions in Go source.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ttabMain(cfg, cc, args)
		}).
		WithSubs(
			TableCommand(cfg),
			ExprCommand(cfg),
			ListCommand(cfg))
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Table, "table").
		WithAliases("t", "ta").
		WithSynopsis("table [files]").
		WithDescription("print a truth table for every boolean expression in the given Go files (stdin when none)").
		WithRun(func(cc *cli.Context, args []string) error {
			return table(cfg, cc, args)
		})
}

func ExprCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExprConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Expr, "expr").
		WithAliases("e", "ex").
		WithSynopsis("expr <expression>").
		WithDescription("print the truth table of one Go expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return expr(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "li").
		WithSynopsis("list [files]").
		WithDescription("list boolean expressions with their locations, without tabulating").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}
