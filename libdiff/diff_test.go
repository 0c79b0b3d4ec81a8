package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/scl-format/ir"
	"github.com/signadot/scl-format/parse"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	doc, err := parse.Parse([]byte(s))
	require.NoError(t, err)
	return doc
}

type summary struct {
	Path string
	Kind Kind
}

func summarize(cs []Change) []summary {
	var res []summary
	for _, c := range cs {
		res = append(res, summary{c.Path, c.Kind})
	}
	return res
}

func TestDiffEqual(t *testing.T) {
	src := "a :: num { 1 }\ncfg :: class { l :: list(str) { \"x\" } }"
	require.Empty(t, Diff(mustParse(t, src), mustParse(t, src)))
}

func TestDiff(t *testing.T) {
	from := mustParse(t, `
name :: str { "demo" }
old :: num { 1 }
cfg :: class {
    port :: num { 80 }
    hosts :: list(str) { "a" }
    keep :: bool { yes }
}
kind :: num { 1 }
`)
	to := mustParse(t, `
name :: str { "demo" }
cfg :: class {
    port :: num { 8080 }
    hosts :: list(str) { "a", "b" }
    keep :: bool { yes }
    extra :: fl { 0.5 }
}
kind :: str { "one" }
new :: class { }
`)
	want := []summary{
		{"$.old", Removed},
		{"$.cfg.port", Modified},
		{"$.cfg.hosts", Modified},
		{"$.cfg.extra", Added},
		{"$.kind", Modified},
		{"$.new", Added},
	}
	changes := Diff(from, to)
	if diff := cmp.Diff(want, summarize(changes)); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "~ $.cfg.port :: num { 80 } -> num { 8080 }", changes[1].String())
	require.Equal(t, "- $.old :: num { 1 }", changes[0].String())
	require.Equal(t, "+ $.new :: class { }", changes[5].String())
}

func TestTextDiff(t *testing.T) {
	a := "one\ntwo\nthree\n"
	b := "one\n2\nthree\nfour"
	want := "  one\n- two\n+ 2\n  three\n+ four\n"
	require.Equal(t, want, TextDiff(a, b))
	require.True(t, Changed(TextDiff(a, b)))
	require.False(t, Changed(TextDiff(a, a)))
	require.Equal(t, "  one\n  two\n  three\n", TextDiff(a, a))
}
