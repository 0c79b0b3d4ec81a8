package gomap

import (
	"errors"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/scl-format/ir"
	"github.com/stretchr/testify/require"
)

func sampleDoc(t *testing.T) *ir.Node {
	t.Helper()
	doc := ir.NewClass()
	cfg := ir.NewClass()
	require.NoError(t, cfg.Put("port", ir.FromInt(8080)))
	require.NoError(t, cfg.Put("ratio", ir.FromFloat(0.5)))
	require.NoError(t, doc.Put("cfg", cfg))
	items := ir.NewList(ir.StringType)
	require.NoError(t, items.Push(ir.FromString("a")))
	require.NoError(t, items.Push(ir.FromMLString("b\nc")))
	require.NoError(t, doc.Put("items", items))
	require.NoError(t, doc.Put("on", ir.FromBool(true)))
	return doc
}

func TestToAny(t *testing.T) {
	got := ToAny(sampleDoc(t))
	want := yaml.MapSlice{
		{Key: "cfg", Value: yaml.MapSlice{
			{Key: "port", Value: int64(8080)},
			{Key: "ratio", Value: 0.5},
		}},
		{Key: "items", Value: []any{"a", "b\nc"}},
		{Key: "on", Value: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestToMap(t *testing.T) {
	got := ToMap(sampleDoc(t))
	want := map[string]any{
		"cfg":   map[string]any{"port": int64(8080), "ratio": 0.5},
		"items": []any{"a", "b\nc"},
		"on":    true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToMap mismatch (-want +got):\n%s", diff)
	}
	require.Nil(t, ToMap(ir.FromInt(1)))
}

func TestFromAnyRoundTrip(t *testing.T) {
	doc := sampleDoc(t)
	back, err := FromAny(ToAny(doc))
	require.NoError(t, err)
	require.True(t, ir.Equal(doc, back), "round trip changed the document")
	require.Equal(t, ir.MLStringType, back.Get("items").At(1).Type())
}

func TestFromAnyListInference(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		elem ir.Type
	}{
		{"ints", []any{1, int64(2), uint64(3)}, ir.IntType},
		{"ints and floats", []any{1, 2.5}, ir.FloatType},
		{"floats then ints", []any{2.5, 1}, ir.FloatType},
		{"strings", []any{"a", "b\nc"}, ir.StringType},
		{"bools", []any{true, false}, ir.BoolType},
		{"empty", []any{}, ir.NullType},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n, err := FromAny(test.in)
			require.NoError(t, err)
			require.Equal(t, ir.ListType, n.Type())
			require.Equal(t, test.elem, n.ElemType())
			require.Equal(t, len(test.in), n.Len())
		})
	}
	n, err := FromAny([]any{1, 2.5})
	require.NoError(t, err)
	require.Equal(t, ir.FloatType, n.At(0).Type())
	require.Equal(t, 1.0, n.At(0).Float64())
}

func TestFromAnyErrors(t *testing.T) {
	for name, v := range map[string]any{
		"mixed":    []any{1, "a"},
		"nested":   []any{[]any{1}},
		"null elt": []any{nil},
		"overflow": uint64(1) << 63,
		"chan":     make(chan int),
		"int keys": map[int]any{1: 2},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromAny(v)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrConvert), "got %v", err)
		})
	}
}

func TestFromAnyMaps(t *testing.T) {
	n, err := FromAny(map[string]any{"b": 1, "a": nil, "c": []string{"x"}})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, n.Keys())
	require.Equal(t, ir.NullType, n.Get("a").Type())
	require.Equal(t, ir.StringType, n.Get("c").ElemType())

	n, err = FromAny(yaml.MapSlice{{Key: 7, Value: "x"}, {Key: "z", Value: 1.5}})
	require.NoError(t, err)
	require.Equal(t, []string{"7", "z"}, n.Keys())
	require.Equal(t, ir.FloatType, n.Get("z").Type())
}
