package gomap

import (
	"github.com/goccy/go-yaml"
	"github.com/signadot/scl-format/ir"
)

// ToAny converts node to plain Go values.  Classes become yaml.MapSlice so
// that entry order is kept, lists become []any, Int int64, Float float64,
// Str and MultilineStr string and Null nil.
func ToAny(node *ir.Node) any {
	return toAny(node, true)
}

// ToMap converts a class to a map[string]any, with nested classes also
// converted to maps.  Entry order is lost; with duplicate keys the last
// entry wins.  ToMap returns nil if node is not a class.
func ToMap(node *ir.Node) map[string]any {
	if node == nil || node.Type() != ir.ClassType {
		return nil
	}
	m, _ := toAny(node, false).(map[string]any)
	return m
}

func toAny(node *ir.Node, ordered bool) any {
	switch node.Type() {
	case ir.ClassType:
		if ordered {
			res := make(yaml.MapSlice, 0, node.Len())
			for k, v := range node.Entries() {
				res = append(res, yaml.MapItem{Key: k, Value: toAny(v, ordered)})
			}
			return res
		}
		res := make(map[string]any, node.Len())
		for k, v := range node.Entries() {
			res[k] = toAny(v, ordered)
		}
		return res
	case ir.ListType:
		res := make([]any, node.Len())
		for i, v := range node.Values() {
			res[i] = toAny(v, ordered)
		}
		return res
	case ir.BoolType:
		return node.Bool()
	case ir.IntType:
		return node.Int64()
	case ir.FloatType:
		return node.Float64()
	case ir.StringType, ir.MLStringType:
		return node.Str()
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}
