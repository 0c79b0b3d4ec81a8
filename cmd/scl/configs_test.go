package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/format"

	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/require"
)

func TestFmtFunc(t *testing.T) {
	cfg := &MainConfig{}
	f := cfg.fmtFunc(&cfg.InFormat, &cfg.OutFormat)
	_, err := f(nil, "json")
	require.NoError(t, err)
	require.Equal(t, format.JSONFormat, *cfg.InFormat)
	require.Equal(t, format.JSONFormat, *cfg.OutFormat)

	_, err = f(nil, "toml")
	require.True(t, errors.Is(err, cli.ErrUsage))
}

func TestBoolsOpt(t *testing.T) {
	cfg := &MainConfig{}
	_, err := cfg.boolsOpt(nil, "true")
	require.NoError(t, err)
	require.Equal(t, encode.TrueFalse, cfg.Bools)
	_, err = cfg.boolsOpt(nil, "yes")
	require.NoError(t, err)
	require.Equal(t, encode.YesNo, cfg.Bools)
	_, err = cfg.boolsOpt(nil, "on")
	require.True(t, errors.Is(err, cli.ErrUsage))
}

func TestInFormat(t *testing.T) {
	cfg := &MainConfig{}
	require.Equal(t, format.SCLFormat, cfg.inFormat("-"))
	require.Equal(t, format.YAMLFormat, cfg.inFormat("x.yaml"))
	require.Equal(t, format.JSONFormat, cfg.inFormat("x.json"))
	require.Equal(t, format.SCLFormat, cfg.inFormat("x.scl"))
	j := format.JSONFormat
	cfg.InFormat = &j
	require.Equal(t, format.JSONFormat, cfg.inFormat("x.scl"))
}

func TestReadDoc(t *testing.T) {
	cfg := &MainConfig{}
	doc, err := readDoc(cfg, "-", strings.NewReader("a :: num { 1 }\n"))
	require.NoError(t, err)
	require.Equal(t, int64(1), doc.Get("a").Int64())

	_, err = readDoc(cfg, "-", strings.NewReader("a :: num { x }\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "<stdin>")

	p := filepath.Join(t.TempDir(), "d.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"b": [1, 2]}`), 0644))
	doc, err = readDoc(cfg, p, nil)
	require.NoError(t, err)
	require.Equal(t, 2, doc.Get("b").Len())

	_, err = readInput(filepath.Join(t.TempDir(), "missing.scl"), nil)
	require.Error(t, err)
}

func TestInputs(t *testing.T) {
	require.Equal(t, []string{"-"}, inputs(nil))
	require.Equal(t, []string{"a", "b"}, inputs([]string{"a", "b"}))
}
