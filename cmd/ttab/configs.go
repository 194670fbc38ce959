package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/clj/truth-table/encode"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force color output'"`
	NoColor bool `cli:"name=nocolor desc='disable color output'"`

	Pad int
	Max int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) intOpt(p *int) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative value %d", cli.ErrUsage, n)
		}
		*p = n
		return n, nil
	})
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

// fileConfig mirrors the command line options that make sense to
// persist; pointer fields distinguish "unset" from zero.
type fileConfig struct {
	Pad   *int  `yaml:"pad"`
	Max   *int  `yaml:"max"`
	Color *bool `yaml:"color"`
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	d, err := os.ReadFile(a)
	if err != nil {
		return nil, err
	}
	fc := &fileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", a, err)
	}
	cfg.apply(fc)
	return fc, nil
}

func (cfg *MainConfig) apply(fc *fileConfig) {
	if fc.Pad != nil {
		cfg.Pad = *fc.Pad
	}
	if fc.Max != nil {
		cfg.Max = *fc.Max
	}
	if fc.Color != nil {
		cfg.Color = *fc.Color
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Padding(cfg.Pad),
	}
	if cfg.NoColor {
		return res
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type TableConfig struct {
	*MainConfig

	Table *cli.Command
}

type ExprConfig struct {
	*MainConfig

	Expr *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}
