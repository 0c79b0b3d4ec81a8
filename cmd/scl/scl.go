package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"
)

func sclMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		if ferr := cfg.finish(err); err == nil {
			err = ferr
		}
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	return cfg.dispatch(cc, args[0], args[1:])
}

func (cfg *MainConfig) dispatch(cc *cli.Context, name string, args []string) error {
	sub := cfg.Main.FindSub(cc, name)
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, name)
	}
	err := sub.Run(cc, args)
	if !errors.Is(err, cli.ErrUsage) {
		return err
	}
	sub.Usage(cc, err)
	cfg.finish(err)
	os.Exit(sub.Exit(cc, err))
	return nil
}

// finish settles the -o output at most once.
func (cfg *MainConfig) finish(err error) error {
	f := cfg.Finish
	cfg.Finish = nil
	if f == nil {
		return nil
	}
	return f(err)
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	if a == "" {
		return nil, fmt.Errorf("%w: -o needs a file path or -", cli.ErrUsage)
	}
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	o, err := createOut(a)
	if err != nil {
		return nil, err
	}
	cc.Out = o
	cfg.Finish = o.finish
	return nil, nil
}

// outFile collects output in a temporary file beside path. The file only
// replaces path when the command succeeds.
type outFile struct {
	*os.File
	path string
}

func createOut(path string) (*outFile, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, err
	}
	return &outFile{File: f, path: path}, nil
}

func (o *outFile) finish(runErr error) error {
	tmp := o.Name()
	err := o.Close()
	if err == nil && runErr == nil {
		if err = os.Chmod(tmp, 0644); err == nil {
			err = os.Rename(tmp, o.path)
		}
	}
	if err != nil || runErr != nil {
		os.Remove(tmp)
	}
	return err
}
