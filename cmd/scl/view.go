package main

import (
	"fmt"
	"io"

	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		if err := viewFile(cfg, cc.Out, cc.In, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, in io.Reader, file string) error {
	doc, err := readDoc(cfg.MainConfig, file, in, parse.ParseComments(cfg.Comments))
	if err != nil {
		return err
	}
	opts := cfg.encOpts(w)
	if cfg.Comments {
		opts = append(opts, encode.EncodeComments(true))
	}
	if err := encode.Encode(doc, w, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", displayName(file), err)
	}
	return nil
}
