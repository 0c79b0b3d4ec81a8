package ir

import (
	"iter"
	"strconv"
	"strings"
)

// Node is a single value in an SCL document.
//
// The payload is private: nodes are built with the factory functions below
// and containers only grow through [Node.Put] and [Node.Push], which keep
// the list element type and tree ownership invariants.  Accessors return
// the zero value when called on a node of another type.
type Node struct {
	Comment *Comment

	typ         Type
	parent      *Node
	parentIndex int
	parentField string

	fields []string
	values []*Node
	elem   Type

	b bool
	i int64
	f float64
	s string
}

// Comment holds the comments associated with a node.  Head lines precede
// the entry holding the node, Line follows it on the same line.  On a
// document root, Head is the document header.
type Comment struct {
	Head []string
	Line string
}

func (c *Comment) IsEmpty() bool {
	return c == nil || (len(c.Head) == 0 && c.Line == "")
}

func Null() *Node {
	return &Node{typ: NullType}
}

func FromBool(v bool) *Node {
	return &Node{typ: BoolType, b: v}
}

func FromInt(v int64) *Node {
	return &Node{typ: IntType, i: v}
}

func FromFloat(f float64) *Node {
	return &Node{typ: FloatType, f: f}
}

func FromString(v string) *Node {
	return &Node{typ: StringType, s: v}
}

func FromMLString(v string) *Node {
	return &Node{typ: MLStringType, s: v}
}

func NewClass() *Node {
	return &Node{typ: ClassType}
}

// NewList creates an empty list.  elem declares the element type; NullType
// leaves it to be established by the first pushed element.  MLStringType
// declares a Str list.  NewList panics if elem is not a scalar type.
func NewList(elem Type) *Node {
	switch elem {
	case NullType, BoolType, IntType, FloatType, StringType:
	case MLStringType:
		elem = StringType
	default:
		panic("ir: invalid list element type " + elem.String())
	}
	return &Node{typ: ListType, elem: elem}
}

func (y *Node) Type() Type       { return y.typ }
func (y *Node) Bool() bool       { return y.b }
func (y *Node) Int64() int64     { return y.i }
func (y *Node) Float64() float64 { return y.f }

// Str returns the text of a Str or MultilineStr node.
func (y *Node) Str() string { return y.s }

// ElemType returns the element type of a list, NullType if it is not yet
// established.
func (y *Node) ElemType() Type { return y.elem }

// Len returns the number of class entries or list elements.
func (y *Node) Len() int { return len(y.values) }

// At returns the i'th entry value or list element.
func (y *Node) At(i int) *Node { return y.values[i] }

// Key returns the key of the i'th class entry.
func (y *Node) Key(i int) string { return y.fields[i] }

func (y *Node) Keys() []string {
	res := make([]string, len(y.fields))
	copy(res, y.fields)
	return res
}

// Entries iterates over class entries in insertion order.
func (y *Node) Entries() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for i, f := range y.fields {
			if !yield(f, y.values[i]) {
				return
			}
		}
	}
}

// Values iterates over list elements or class entry values.
func (y *Node) Values() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, v := range y.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Get returns the value of the last entry named key, or nil.
func (y *Node) Get(key string) *Node {
	for i := len(y.fields) - 1; i >= 0; i-- {
		if y.fields[i] == key {
			return y.values[i]
		}
	}
	return nil
}

// GetAll returns the values of every entry named key, in order.
func (y *Node) GetAll(key string) []*Node {
	var res []*Node
	for i, f := range y.fields {
		if f == key {
			res = append(res, y.values[i])
		}
	}
	return res
}

func (y *Node) Parent() *Node       { return y.parent }
func (y *Node) ParentIndex() int    { return y.parentIndex }
func (y *Node) ParentField() string { return y.parentField }

func (y *Node) Root() *Node {
	res := y
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Path returns the location of y from its root, eg "$.cfg.items[2]".
func (y *Node) Path() string {
	if y.parent == nil {
		return "$"
	}
	switch y.parent.typ {
	case ClassType:
		f := y.parentField
		prefix := y.parent.Path() + "."
		if f != "" && strings.IndexFunc(f, isPathSpecial) == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
	case ListType:
		return y.parent.Path() + "[" + strconv.Itoa(y.parentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

func isPathSpecial(r rune) bool {
	switch r {
	case '\'', '.', '*', '$', '[', ']', ' ', '\t', '\n':
		return true
	}
	return false
}

// Clone returns a deep copy of y with no parent.
func (y *Node) Clone() *Node {
	res := &Node{
		typ:  y.typ,
		elem: y.elem,
		b:    y.b,
		i:    y.i,
		f:    y.f,
		s:    y.s,
	}
	if y.Comment != nil {
		c := *y.Comment
		c.Head = append([]string(nil), y.Comment.Head...)
		res.Comment = &c
	}
	if y.fields != nil {
		res.fields = make([]string, len(y.fields))
		copy(res.fields, y.fields)
	}
	if y.values != nil {
		res.values = make([]*Node, len(y.values))
		for i, v := range y.values {
			c := v.Clone()
			c.parent = res
			c.parentIndex = i
			c.parentField = v.parentField
			res.values[i] = c
		}
	}
	return res
}

// Visit walks the tree rooted at y, calling f before (isPost false) and
// after (isPost true) the children of each node.  Children are only visited
// when the pre-order call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
