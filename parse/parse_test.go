package parse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/scl-format/gomap"
	"github.com/signadot/scl-format/ir"
	"github.com/signadot/scl-format/token"
	"github.com/stretchr/testify/require"
)

func class(t *testing.T, kvs ...any) *ir.Node {
	t.Helper()
	res := ir.NewClass()
	for i := 0; i < len(kvs); i += 2 {
		require.NoError(t, res.Put(kvs[i].(string), kvs[i+1].(*ir.Node)))
	}
	return res
}

func list(t *testing.T, elem ir.Type, vs ...*ir.Node) *ir.Node {
	t.Helper()
	res := ir.NewList(elem)
	for _, v := range vs {
		require.NoError(t, res.Push(v))
	}
	return res
}

func requireDoc(t *testing.T, want, got *ir.Node) {
	t.Helper()
	require.NotNil(t, got)
	if !ir.Equal(want, got) {
		t.Fatalf("document mismatch (-want +got):\n%s", cmp.Diff(gomap.ToAny(want), gomap.ToAny(got)))
	}
}

func TestParseScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want func(t *testing.T) *ir.Node
	}{
		{
			name: "scalars",
			in:   "name :: str { \"demo\" }\ncount :: num { 3 }\n",
			want: func(t *testing.T) *ir.Node {
				return class(t, "name", ir.FromString("demo"), "count", ir.FromInt(3))
			},
		},
		{
			name: "int list",
			in:   `items :: list(num) { 1, 2, 3 }`,
			want: func(t *testing.T) *ir.Node {
				return class(t, "items", list(t, ir.IntType, ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)))
			},
		},
		{
			name: "nested class",
			in:   `cfg :: class { a :: bool { yes } }`,
			want: func(t *testing.T) *ir.Node {
				return class(t, "cfg", class(t, "a", ir.FromBool(true)))
			},
		},
		{
			name: "dynamic int",
			in:   `x :: dynamic { 42 }`,
			want: func(t *testing.T) *ir.Node {
				return class(t, "x", ir.FromInt(42))
			},
		},
		{
			name: "ignored comment",
			in:   "[ ignored ]\nk :: num { 1 }",
			want: func(t *testing.T) *ir.Node {
				return class(t, "k", ir.FromInt(1))
			},
		},
		{
			name: "empty",
			in:   "",
			want: func(t *testing.T) *ir.Node { return ir.NewClass() },
		},
		{
			name: "float forms",
			in:   "a :: fl { 2 }\nb :: fl { -0.25 }\nc :: dynamic { 1.5 }",
			want: func(t *testing.T) *ir.Node {
				return class(t, "a", ir.FromFloat(2), "b", ir.FromFloat(-0.25), "c", ir.FromFloat(1.5))
			},
		},
		{
			name: "strings",
			in:   "s :: str { \"a\\tb\" }\nm :: ml { 'x\n  y\\n' }\nd :: dynamic { 'z' }",
			want: func(t *testing.T) *ir.Node {
				return class(t, "s", ir.FromString("a\tb"), "m", ir.FromMLString("x\n  y\\n"), "d", ir.FromMLString("z"))
			},
		},
		{
			name: "promoted lists",
			in:   "f :: list(fl) { 1, 2.5 }\ns :: list(str) { \"a\", 'b' }\nb :: list(bool) { no, }\ne :: list(num) { }",
			want: func(t *testing.T) *ir.Node {
				return class(t,
					"f", list(t, ir.FloatType, ir.FromFloat(1), ir.FromFloat(2.5)),
					"s", list(t, ir.StringType, ir.FromString("a"), ir.FromMLString("b")),
					"b", list(t, ir.BoolType, ir.FromBool(false)),
					"e", ir.NewList(ir.IntType))
			},
		},
		{
			name: "key forms",
			in:   "list :: num { 1 }\n\"a key\" :: num { 2 }\n007 :: num { 3 }\n3d :: num { 4 }",
			want: func(t *testing.T) *ir.Node {
				return class(t, "list", ir.FromInt(1), "a key", ir.FromInt(2), "7", ir.FromInt(3), "3d", ir.FromInt(4))
			},
		},
		{
			name: "trivia between tokens",
			in:   "a\n::\n[c] class\n{\n b :: list\n(\nnum\n)\n{\n1\n,\n2\n}\n}",
			want: func(t *testing.T) *ir.Node {
				return class(t, "a", class(t, "b", list(t, ir.IntType, ir.FromInt(1), ir.FromInt(2))))
			},
		},
		{
			name: "duplicate keys",
			in:   "a :: num { 1 } a :: str { \"x\" }",
			want: func(t *testing.T) *ir.Node {
				return class(t, "a", ir.FromInt(1), "a", ir.FromString("x"))
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse([]byte(test.in))
			require.NoError(t, err)
			requireDoc(t, test.want(t), got)
		})
	}
}

func TestTrailingComma(t *testing.T) {
	a, err := Parse([]byte(`l :: list(num) { 1, 2, 3 }`))
	require.NoError(t, err)
	b, err := Parse([]byte(`l :: list(num) { 1, 2, 3, }`))
	require.NoError(t, err)
	requireDoc(t, a, b)
	require.Equal(t, 3, b.Get("l").Len())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
		line int
		col  int
	}{
		{"literal kind", `a :: num { "x" }`, ErrExpected, 1, 12},
		{"missing literal", `a :: bool { }`, ErrExpected, 1, 13},
		{"missing separator", `b :: list(num) { 1 2 }`, ErrSeparator, 1, 20},
		{"unterminated string", `a :: str { "oops`, token.ErrUnterminated, 1, 12},
		{"unterminated comment", `[ oops`, token.ErrUnterminated, 1, 1},
		{"bad num", `bad :: num { "x" }`, ErrExpected, 1, 14},
		{"float in num", `a :: num { 1.5 }`, ErrExpected, 1, 12},
		{"missing double colon", `a num { 1 }`, ErrExpected, 1, 3},
		{"unknown type", `a :: int { 1 }`, ErrExpected, 1, 6},
		{"bad key", `{ a :: num { 1 } }`, ErrKey, 1, 1},
		{"boolean key", `yes :: num { 1 }`, ErrKey, 1, 1},
		{"list elem type", `l :: list(ml) { }`, ErrListType, 1, 11},
		{"list of class", `l :: list(class) { }`, ErrListType, 1, 11},
		{"list mismatch", `l :: list(num) { 1, 2.5 }`, ErrListElem, 1, 21},
		{"list bool in str", `l :: list(str) { "a", yes }`, ErrListElem, 1, 23},
		{"list double comma", `l :: list(num) { 1,, 2 }`, ErrListElem, 1, 20},
		{"list only comma", `l :: list(num) { , }`, ErrListElem, 1, 18},
		{"dynamic class", `d :: dynamic { class }`, ErrDynamic, 1, 16},
		{"unclosed class", "c :: class {\n a :: num { 1 }\n", ErrExpected, 3, 1},
		{"stray close", `a :: num { 1 } }`, ErrExpected, 1, 16},
		{"extra literal", `a :: num { 1 2 }`, ErrExpected, 1, 14},
		{"int overflow", `a :: num { 9223372036854775808 }`, token.ErrNumber, 1, 12},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, err := Parse([]byte(test.in))
			require.Error(t, err)
			require.Nil(t, doc)
			require.True(t, errors.Is(err, test.err), "want %v, got %v", test.err, err)
			var pos token.Pos
			var pe *ParseErr
			var te *token.TokenizeErr
			switch {
			case errors.As(err, &pe):
				require.True(t, errors.Is(err, ErrParse))
				pos = pe.Pos
			case errors.As(err, &te):
				require.True(t, errors.Is(err, token.ErrLex))
				pos = te.Pos
			default:
				t.Fatalf("unexpected error type %T", err)
			}
			line, col := pos.LineCol()
			require.Equal(t, [2]int{test.line, test.col}, [2]int{line, col}, "position of %v", err)
			require.Contains(t, err.Error(), "line=")
		})
	}
}

func TestParseComments(t *testing.T) {
	src := `[ file header ]
[ second line ]

[ the port ]
port :: num { 8080 } [ default ]
cfg :: class {
  [ inner ]
  a :: bool { yes }
  [ dropped ]
}
tail :: str { "x" }
[ trailing ]
`
	doc, err := Parse([]byte(src), ParseComments(true))
	require.NoError(t, err)
	require.Equal(t, &ir.Comment{Head: []string{"file header", "second line"}}, doc.Comment)
	require.Equal(t, &ir.Comment{Head: []string{"the port"}, Line: "default"}, doc.Get("port").Comment)
	require.Nil(t, doc.Get("cfg").Comment)
	require.Equal(t, &ir.Comment{Head: []string{"inner"}}, doc.Get("cfg").Get("a").Comment)
	require.Nil(t, doc.Get("tail").Comment)

	plain, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Nil(t, plain.Comment)
	require.Nil(t, plain.Get("port").Comment)
	require.True(t, ir.Equal(doc, plain))
}

func TestParseCommentsNoHeader(t *testing.T) {
	doc, err := Parse([]byte("[ about a ]\na :: num { 1 }\n"), ParseComments(true))
	require.NoError(t, err)
	require.Nil(t, doc.Comment)
	require.Equal(t, []string{"about a"}, doc.Get("a").Comment.Head)
}

func TestParsePositions(t *testing.T) {
	pos := map[*ir.Node]*token.Pos{}
	doc, err := Parse([]byte("a :: num { 1 }\n  b :: list(fl) { 1, 2 }\n"), ParsePositions(pos))
	require.NoError(t, err)
	require.Equal(t, 1, pos[doc].Line())
	b := doc.Get("b")
	require.Equal(t, 2, pos[b].Line())
	require.Equal(t, 3, pos[b].Col())
	require.Equal(t, 22, pos[b.At(1)].Col())
}

func TestParseJSON(t *testing.T) {
	doc, err := Parse([]byte(`{"b": 1, "a": [1, 2.5], "s": "x\ny", "c": {"t": true}, "f": 1.0}`), ParseJSON())
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a", "s", "c", "f"}, doc.Keys())
	require.Equal(t, ir.IntType, doc.Get("b").Type())
	require.Equal(t, ir.FloatType, doc.Get("a").ElemType())
	require.Equal(t, ir.MLStringType, doc.Get("s").Type())
	require.True(t, doc.Get("c").Get("t").Bool())
	require.Equal(t, ir.FloatType, doc.Get("f").Type())

	_, err = Parse([]byte(`[1, 2]`), ParseJSON())
	require.ErrorIs(t, err, ErrParse)
	_, err = Parse([]byte(`{"a": `), ParseJSON())
	require.ErrorIs(t, err, ErrParse)
}

func TestParseYAML(t *testing.T) {
	doc, err := Parse([]byte("name: demo\nports:\n  - 80\n  - 443\nnested:\n  enabled: true\n"), ParseYAML())
	require.NoError(t, err)
	want := class(t,
		"name", ir.FromString("demo"),
		"ports", list(t, ir.IntType, ir.FromInt(80), ir.FromInt(443)),
		"nested", class(t, "enabled", ir.FromBool(true)),
	)
	requireDoc(t, want, doc)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "app.scl")
	require.NoError(t, os.WriteFile(p, []byte("k :: num { 1 }\n"), 0644))
	doc, err := ParseFile(p)
	require.NoError(t, err)
	require.Equal(t, int64(1), doc.Get("k").Int64())

	_, err = ParseFile(filepath.Join(dir, "missing.scl"))
	require.ErrorIs(t, err, ErrIO)
	require.False(t, errors.Is(err, ErrParse))
	require.ErrorIs(t, err, os.ErrNotExist)
}
