package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/scl-format/ir"
	"github.com/signadot/scl-format/parse"
)

// readInput reads file, or in when file is "-" or empty.
func readInput(file string, in io.Reader) ([]byte, error) {
	if file == "" || file == "-" {
		d, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}

func readDoc(cfg *MainConfig, file string, in io.Reader, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readInput(file, in)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, append(cfg.parseOpts(file), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", displayName(file), err)
	}
	return doc, nil
}

func displayName(file string) string {
	if file == "" || file == "-" {
		return "<stdin>"
	}
	return file
}

// inputs returns args, or a single stdin input when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
