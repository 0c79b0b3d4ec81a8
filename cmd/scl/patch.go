package main

import (
	"fmt"

	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := readInput(args[0], cc.In)
	if err != nil {
		return err
	}
	files := inputs(args[1:])
	if args[0] == "-" {
		for _, f := range files {
			if f == "-" {
				return fmt.Errorf("%w: patch and document cannot both be stdin", cli.ErrUsage)
			}
		}
	}
	for _, file := range files {
		doc, err := readDoc(cfg.MainConfig, file, cc.In)
		if err != nil {
			return err
		}
		if cfg.Merge {
			doc, err = patch.MergePatch(doc, p)
		} else {
			doc, err = patch.JSONPatch(doc, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", displayName(file), err)
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
