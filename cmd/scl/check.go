package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	nBad := 0
	for _, file := range inputs(args) {
		if _, err := readDoc(cfg.MainConfig, file, cc.In); err != nil {
			nBad++
			if !cfg.Quiet {
				fmt.Fprintln(cc.Out, err)
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", displayName(file))
		}
	}
	if nBad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
