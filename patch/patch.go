package patch

import (
	"bytes"
	"fmt"

	"github.com/signadot/scl-format/debug"
	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/format"
	"github.com/signadot/scl-format/ir"
	"github.com/signadot/scl-format/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// JSONPatch applies the RFC 6902 patch ops, a JSON array of operations, to
// the JSON form of doc and returns the result as a new document.
func JSONPatch(doc *ir.Node, ops []byte) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("json patch %s on\n%s", string(ops), doc)
	}
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	jOut, err := p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return unmarshalJSON(doc, jOut)
}

// MergePatch applies the RFC 7386 merge patch p to doc and returns the
// result as a new document.
func MergePatch(doc *ir.Node, p []byte) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch %s on\n%s", string(p), doc)
	}
	d, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	jOut, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return unmarshalJSON(doc, jOut)
}

// CreateMergePatch returns the merge patch which turns from into to.
func CreateMergePatch(from, to *ir.Node) ([]byte, error) {
	a, err := marshalJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := marshalJSON(to)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

func marshalJSON(doc *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unmarshalJSON decodes a patch result.  The patch library does not keep
// object key order, so the entries are put back in the order of doc.
func unmarshalJSON(doc *ir.Node, d []byte) (*ir.Node, error) {
	res, err := parse.Parse(d, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	return reorder(doc, res)
}

// reorder returns a copy of res whose classes list the entries also present
// in the corresponding class of orig first, in orig's order.  Values
// unchanged by the patch get back the tags JSON drops.
func reorder(orig, res *ir.Node) (*ir.Node, error) {
	if orig == nil || orig.Type() != ir.ClassType || res.Type() != ir.ClassType {
		return retag(orig, res), nil
	}
	out := ir.NewClass()
	used := map[string]bool{}
	for _, k := range orig.Keys() {
		v := res.Get(k)
		if used[k] || v == nil {
			continue
		}
		used[k] = true
		child, err := reorder(orig.Get(k), v)
		if err != nil {
			return nil, err
		}
		if err := out.Put(k, child); err != nil {
			return nil, err
		}
	}
	for k, v := range res.Entries() {
		if used[k] {
			continue
		}
		used[k] = true
		if err := out.Put(k, v.Clone()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// retag restores ml versus str on strings whose text is unchanged, and the
// element type of a list that was and still is empty.
func retag(orig, v *ir.Node) *ir.Node {
	if orig == nil {
		return v.Clone()
	}
	switch v.Type() {
	case ir.StringType, ir.MLStringType:
		if !isStr(orig) || orig.Str() != v.Str() {
			break
		}
		if orig.Type() == ir.MLStringType {
			return ir.FromMLString(v.Str())
		}
		return ir.FromString(v.Str())
	case ir.ListType:
		if orig.Type() != ir.ListType {
			break
		}
		if v.Len() == 0 && orig.Len() == 0 {
			return ir.NewList(orig.ElemType())
		}
		res := ir.NewList(v.ElemType())
		for i, e := range v.Values() {
			var o *ir.Node
			if i < orig.Len() {
				o = orig.At(i)
			}
			if err := res.Push(retag(o, e)); err != nil {
				return v.Clone()
			}
		}
		return res
	}
	return v.Clone()
}

func isStr(y *ir.Node) bool {
	return y.Type() == ir.StringType || y.Type() == ir.MLStringType
}
