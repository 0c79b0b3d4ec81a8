package main

import (
	"fmt"

	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/eval"
	"github.com/signadot/scl-format/format"
	"github.com/signadot/scl-format/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires an expression", cli.ErrUsage)
	}
	expression := args[0]
	for _, file := range inputs(args[1:]) {
		doc, err := readDoc(cfg.MainConfig, file, cc.In)
		if err != nil {
			return err
		}
		res, err := eval.Eval(doc, expression)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", expression, displayName(file), err)
		}
		if err := writeResult(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}

// writeResult encodes classes as documents and other values on one line.
func writeResult(cfg *MainConfig, cc *cli.Context, res *ir.Node) error {
	opts := cfg.encOpts(cc.Out)
	if res.Type() == ir.ClassType || encode.FormatFromOpts(opts...) != format.SCLFormat {
		return encode.Encode(res, cc.Out, opts...)
	}
	if err := encode.EncodeValue(res, cc.Out, opts...); err != nil {
		return err
	}
	_, err := cc.Out.Write([]byte("\n"))
	return err
}
