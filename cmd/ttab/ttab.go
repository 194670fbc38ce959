package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/clj/truth-table/encode"
	"github.com/clj/truth-table/parse"
	"github.com/clj/truth-table/truthtab"
)

func ttabMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func table(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return tableSource(cfg.MainConfig, cc.Out, src, "<stdin>")
	}
	for _, arg := range args {
		src, err := os.ReadFile(arg)
		if err != nil {
			return err
		}
		if err := tableSource(cfg.MainConfig, cc.Out, src, arg); err != nil {
			return err
		}
	}
	return nil
}

// tableSource analyzes one Go source input and writes a labeled truth
// table per boolean expression found.
func tableSource(cfg *MainConfig, w io.Writer, src []byte, name string) error {
	root, err := parse.Parse(src, parse.ParseName(name))
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", name, err)
	}
	first := true
	for _, e := range truthtab.Collect(root) {
		t, err := truthtab.Build(e, truthtab.Limit(cfg.Max))
		if err != nil {
			// Over-limit expressions are reported and skipped;
			// anything else is an invariant violation.
			if errors.Is(err, truthtab.ErrOperandLimit) {
				fmt.Fprintf(os.Stderr, "skipping %s line %d: %v\n", name, e.Line, err)
				continue
			}
			return fmt.Errorf("error analyzing %s: %w", name, err)
		}
		if !first {
			fmt.Fprint(w, "\n\n")
		}
		first = false
		fmt.Fprintf(w, "Expression: %s\n    in %s line: %d\n\n", encode.String(e), name, e.Line)
		fmt.Fprintln(w, encode.Table(t.Strings(), cfg.encOpts(w)...))
	}
	return nil
}

func expr(cfg *ExprConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expr.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: expr requires one argument, a Go expression", cli.ErrUsage)
	}
	node, err := parse.Expr(args[0], parse.ParseName("<arg>"))
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	t, err := truthtab.Build(node, truthtab.Limit(cfg.Max))
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, encode.Table(t.Strings(), cfg.encOpts(cc.Out)...))
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return listSource(cc.Out, src, "<stdin>")
	}
	for _, arg := range args {
		src, err := os.ReadFile(arg)
		if err != nil {
			return err
		}
		if err := listSource(cc.Out, src, arg); err != nil {
			return err
		}
	}
	return nil
}

func listSource(w io.Writer, src []byte, name string) error {
	root, err := parse.Parse(src, parse.ParseName(name))
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", name, err)
	}
	for _, e := range truthtab.Collect(root) {
		fmt.Fprintf(w, "%s:%d: %s\n", name, e.Line, encode.String(e))
	}
	return nil
}
