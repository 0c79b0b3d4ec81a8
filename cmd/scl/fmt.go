package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/format"
	"github.com/signadot/scl-format/parse"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	for _, file := range inputs(args) {
		if err := fmtFile(cfg, cc.In, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

// fmtFile rewrites file in canonical form in its own format.  SCL keeps
// its comments.
func fmtFile(cfg *FmtConfig, in io.Reader, out io.Writer, file string) error {
	orig, err := readInput(file, in)
	if err != nil {
		return err
	}
	inFmt := cfg.inFormat(file)
	isSCL := inFmt == format.SCLFormat
	doc, err := parse.Parse(orig, parse.ParseFormat(inFmt), parse.ParseComments(isSCL))
	if err != nil {
		return fmt.Errorf("error processing %s: %w", displayName(file), err)
	}
	buf := &bytes.Buffer{}
	opts := []encode.EncodeOption{
		encode.EncodeFormat(inFmt),
		encode.Indent(cfg.Indent),
		encode.EncodeBools(cfg.Bools),
		encode.EncodeComments(isSCL),
	}
	if err := encode.Encode(doc, buf, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", displayName(file), err)
	}
	changed := !bytes.Equal(orig, buf.Bytes())
	if cfg.List {
		if changed {
			fmt.Fprintln(out, displayName(file))
		}
		if !cfg.Write {
			return nil
		}
	}
	if cfg.Write {
		if !changed {
			return nil
		}
		if err := os.WriteFile(file, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("could not write %q: %w", file, err)
		}
		return nil
	}
	_, err = out.Write(buf.Bytes())
	return err
}
