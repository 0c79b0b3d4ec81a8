package libdiff

import (
	"github.com/signadot/scl-format/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes which turn from into to, in document order.
// The result is empty when the documents are equal.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diffNode(from, to, &res)
	return res
}

func diffNode(from, to *ir.Node, res *[]Change) {
	if from.Type() == ir.ClassType && to.Type() == ir.ClassType {
		diffClass(from, to, res)
		return
	}
	if !ir.Equal(from, to) {
		*res = append(*res, Change{Path: to.Path(), Kind: Modified, From: from, To: to})
	}
}

// diffClass aligns the key sequences of two classes: removed and added keys
// are reported as such, values of aligned keys are compared recursively.
func diffClass(from, to *ir.Node, res *[]Change) {
	fieldMap := map[string]rune{}
	fromRunes := mapFieldsTo(fieldMap, from)
	toRunes := mapFieldsTo(fieldMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				y := from.At(fi)
				*res = append(*res, Change{Path: y.Path(), Kind: Removed, From: y})
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				diffNode(from.At(fi), to.At(ti), res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				y := to.At(ti)
				*res = append(*res, Change{Path: y.Path(), Kind: Added, To: y})
				ti++
			}
		}
	}
}

// mapFieldsTo maps each distinct key to a rune so that key sequences can be
// diffed as text.  Runes start past the surrogate range.
func mapFieldsTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, node.Len())
	for i := range rs {
		f := node.Key(i)
		r, ok := m[f]
		if !ok {
			r = rune(0xE000 + len(m))
			m[f] = r
		}
		rs[i] = r
	}
	return rs
}
