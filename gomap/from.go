package gomap

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/scl-format/ir"
)

// FromAny converts plain Go values, such as those produced by decoding
// JSON or YAML, into a node.
//
// Maps with string keys and yaml.MapSlice become classes; Go maps are
// visited in sorted key order.  Slices become lists whose element type is
// inferred from the elements: all integers gives num, integers mixed with
// floats gives fl, strings give str and booleans bool.  An empty slice
// gives an untyped list.  Strings containing a newline become multiline
// strings.  nil becomes Null.  Anything else fails with ErrConvert.
func FromAny(v any) (*ir.Node, error) {
	return fromAny(v, "$")
}

func fromAny(v any, path string) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		return x.Clone(), nil
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		res := ir.NewClass()
		for _, item := range x {
			k, err := keyString(item.Key, path)
			if err != nil {
				return nil, err
			}
			if err := putAny(res, k, item.Value, path); err != nil {
				return nil, err
			}
		}
		return res, nil
	case map[string]any:
		res := ir.NewClass()
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if err := putAny(res, k, x[k], path); err != nil {
				return nil, err
			}
		}
		return res, nil
	case []any:
		return listFromAny(x, path)
	}
	if sc, ok, err := scalarFromAny(v, path); ok || err != nil {
		return sc, err
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elts := make([]any, rv.Len())
		for i := range elts {
			elts[i] = rv.Index(i).Interface()
		}
		return listFromAny(elts, path)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, convertErr(path, "map key type %s", rv.Type().Key())
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return fromAny(m, path)
	case reflect.Pointer:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		return fromAny(rv.Elem().Interface(), path)
	}
	return nil, convertErr(path, "unsupported type %T", v)
}

func putAny(res *ir.Node, k string, v any, path string) error {
	child, err := fromAny(v, path+"."+k)
	if err != nil {
		return err
	}
	return res.Put(k, child)
}

func keyString(k any, path string) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	}
	n, ok, err := scalarFromAny(k, path)
	if err != nil {
		return "", err
	}
	if ok && n.Type() == ir.IntType {
		return strconv.FormatInt(n.Int64(), 10), nil
	}
	if ok && n.Type() == ir.BoolType {
		return strconv.FormatBool(n.Bool()), nil
	}
	return "", convertErr(path, "key %v of type %T", k, k)
}

// scalarFromAny reports ok false when v is not a scalar Go value.
func scalarFromAny(v any, path string) (*ir.Node, bool, error) {
	switch x := v.(type) {
	case bool:
		return ir.FromBool(x), true, nil
	case string:
		if strings.Contains(x, "\n") {
			return ir.FromMLString(x), true, nil
		}
		return ir.FromString(x), true, nil
	case int:
		return ir.FromInt(int64(x)), true, nil
	case int8:
		return ir.FromInt(int64(x)), true, nil
	case int16:
		return ir.FromInt(int64(x)), true, nil
	case int32:
		return ir.FromInt(int64(x)), true, nil
	case int64:
		return ir.FromInt(x), true, nil
	case uint:
		return uintNode(uint64(x), path)
	case uint8:
		return ir.FromInt(int64(x)), true, nil
	case uint16:
		return ir.FromInt(int64(x)), true, nil
	case uint32:
		return ir.FromInt(int64(x)), true, nil
	case uint64:
		return uintNode(x, path)
	case float32:
		return ir.FromFloat(float64(x)), true, nil
	case float64:
		return ir.FromFloat(x), true, nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), true, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, false, convertErr(path, "number %s: %v", x, err)
		}
		return ir.FromFloat(f), true, nil
	}
	return nil, false, nil
}

func uintNode(u uint64, path string) (*ir.Node, bool, error) {
	if u > math.MaxInt64 {
		return nil, false, convertErr(path, "integer %d overflows int64", u)
	}
	return ir.FromInt(int64(u)), true, nil
}

func listFromAny(elts []any, path string) (*ir.Node, error) {
	nodes := make([]*ir.Node, len(elts))
	elem := ir.NullType
	for i, e := range elts {
		ePath := path + "[" + strconv.Itoa(i) + "]"
		n, ok, err := scalarFromAny(e, ePath)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, convertErr(ePath, "list element of type %T", e)
		}
		nodes[i] = n
		t := n.Type()
		if t == ir.MLStringType {
			t = ir.StringType
		}
		switch {
		case elem == ir.NullType, elem == t:
			elem = t
		case elem == ir.IntType && t == ir.FloatType:
			elem = ir.FloatType
		case elem == ir.FloatType && t == ir.IntType:
		default:
			return nil, convertErr(ePath, "mixed list of %s and %s", elem.Keyword(), t.Keyword())
		}
	}
	res := ir.NewList(elem)
	for _, n := range nodes {
		if err := res.Push(n); err != nil {
			return nil, err
		}
	}
	return res, nil
}
