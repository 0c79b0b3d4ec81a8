package main

import (
	"fmt"
	"strings"

	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 files, got %d", cli.ErrUsage, len(args))
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	from, err := readDoc(cfg.MainConfig, args[0], cc.In)
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, args[1], cc.In)
	if err != nil {
		return err
	}
	if cfg.Text {
		a, b := &strings.Builder{}, &strings.Builder{}
		if err := encode.Encode(from, a, encode.Indent(cfg.Indent)); err != nil {
			return err
		}
		if err := encode.Encode(to, b, encode.Indent(cfg.Indent)); err != nil {
			return err
		}
		d := libdiff.TextDiff(a.String(), b.String())
		if !libdiff.Changed(d) {
			return nil
		}
		fmt.Fprint(cc.Out, d)
		return cli.ExitCodeErr(1)
	}
	changes := libdiff.Diff(from, to)
	if len(changes) == 0 {
		return nil
	}
	for _, c := range changes {
		fmt.Fprintln(cc.Out, c.String())
	}
	return cli.ExitCodeErr(1)
}
