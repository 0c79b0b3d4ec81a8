package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/format"
	"github.com/signadot/scl-format/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='spaces per indentation level (default 4)'"`

	InFormat, OutFormat *format.Format
	Bools               encode.BoolStyle

	Out    string
	Finish func(error) error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) boolsOpt(_ *cli.Context, v string) (any, error) {
	switch v {
	case "yes", "no", "yesno":
		cfg.Bools = encode.YesNo
	case "true", "false", "truefalse":
		cfg.Bools = encode.TrueFalse
	default:
		return nil, fmt.Errorf("%w: bools must be yes or true, got %q", cli.ErrUsage, v)
	}
	return cfg.Bools, nil
}

func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if file == "" || file == "-" {
		return format.SCLFormat
	}
	return format.FromSuffix(file)
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(file)),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.Indent(cfg.Indent),
		encode.EncodeBools(cfg.Bools),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Comments bool `cli:"name=c desc='include comments'"`
	View     *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write the result to the source file instead of the output'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Fmt   *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only set the exit status'"`
	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text    bool `cli:"name=text desc='show a line diff of the canonical encodings'"`
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='treat the patch as a JSON merge patch'"`

	Patch *cli.Command
}
