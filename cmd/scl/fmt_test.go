package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/scl-format/parse"

	"github.com/stretchr/testify/require"
)

func TestFmtFileSCL(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.scl")
	require.NoError(t, os.WriteFile(p, []byte("[ top ]\na::num{1}  [ one ]\nb :: bool { true }"), 0644))

	cfg := &FmtConfig{MainConfig: &MainConfig{}, List: true}
	out := &bytes.Buffer{}
	require.NoError(t, fmtFile(cfg, nil, out, p))
	require.Equal(t, p+"\n", out.String())

	cfg.List = false
	cfg.Write = true
	require.NoError(t, fmtFile(cfg, nil, out, p))
	d, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "[ top ]\na :: num { 1 }  [ one ]\nb :: bool { yes }\n", string(d))

	out.Reset()
	cfg.List = true
	require.NoError(t, fmtFile(cfg, nil, out, p))
	require.Empty(t, out.String())
}

func TestFmtFileKeepsFormat(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"b": [1, 2],   "a": {"c": "x"}}`), 0644))

	cfg := &FmtConfig{MainConfig: &MainConfig{Indent: 2}, Write: true}
	require.NoError(t, fmtFile(cfg, nil, nil, p))
	d, err := os.ReadFile(p)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(strings.TrimSpace(string(d)), "{"), string(d))
	require.NotContains(t, string(d), "::")

	doc, err := parse.Parse(d, parse.ParseJSON())
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, doc.Keys())
	require.Equal(t, "x", doc.Get("a").Get("c").Str())
}

func TestFmtFileStdin(t *testing.T) {
	cfg := &FmtConfig{MainConfig: &MainConfig{}}
	out := &bytes.Buffer{}
	require.NoError(t, fmtFile(cfg, strings.NewReader("x::str{\"y\"}"), out, "-"))
	require.Equal(t, "x :: str { \"y\" }\n", out.String())

	err := fmtFile(cfg, strings.NewReader("x :: str {"), out, "-")
	require.Error(t, err)
	require.Contains(t, err.Error(), "<stdin>")
}
