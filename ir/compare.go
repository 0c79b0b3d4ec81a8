package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Comments do not take part in the comparison.  Class entries are compared
// in order, so two classes holding the same entries in a different order
// are not equal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(rank(a.typ), rank(b.typ)); c != 0 {
		return c
	}
	switch a.typ {
	case BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case IntType:
		return cmp.Compare(a.i, b.i)
	case FloatType:
		return cmp.Compare(a.f, b.f)
	case StringType, MLStringType:
		return strings.Compare(a.s, b.s)
	case ListType:
		return compareLists(a, b)
	case ClassType:
		return compareClasses(a, b)
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int < Float < Str < MultilineStr < List < Class
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType:
		return 2
	case FloatType:
		return 3
	case StringType:
		return 4
	case MLStringType:
		return 5
	case ListType:
		return 6
	case ClassType:
		return 7
	}
	return 100
}

// an untyped list is written as list(str), so it compares as one.
func canonicalElem(y *Node) Type {
	if y.elem == NullType {
		return StringType
	}
	return y.elem
}

func compareLists(a, b *Node) int {
	if c := cmp.Compare(rank(canonicalElem(a)), rank(canonicalElem(b))); c != 0 {
		return c
	}
	return compareValues(a.values, b.values)
}

func compareClasses(a, b *Node) int {
	minLen := min(len(a.fields), len(b.fields))
	for i := range minLen {
		if c := strings.Compare(a.fields[i], b.fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.fields), len(b.fields))
}

func compareValues(a, b []*Node) int {
	minLen := min(len(a), len(b))
	for i := range minLen {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
