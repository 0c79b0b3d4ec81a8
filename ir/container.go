package ir

import "fmt"

// Put appends the entry key: val to the class y.  Keys are not checked for
// uniqueness.  val must not already belong to a container.
func (y *Node) Put(key string, val *Node) error {
	if y == nil || val == nil {
		return ErrNil
	}
	if y.typ != ClassType {
		return fmt.Errorf("%w: put %q into %s", ErrNotContainer, key, y.typ)
	}
	if err := y.canAdopt(val); err != nil {
		return err
	}
	val.parent = y
	val.parentIndex = len(y.values)
	val.parentField = key
	y.fields = append(y.fields, key)
	y.values = append(y.values, val)
	return nil
}

// Push appends val to the list y.  The first element establishes the
// element type of an untyped list.  An Int pushed into a Float list is
// widened in place; Str and MultilineStr elements are both accepted by a Str
// list.  On error the list is unchanged.
func (y *Node) Push(val *Node) error {
	if y == nil || val == nil {
		return ErrNil
	}
	if y.typ != ListType {
		return fmt.Errorf("%w: push into %s", ErrNotContainer, y.typ)
	}
	if !val.typ.IsScalar() {
		return fmt.Errorf("%w: %s cannot be a list element", ErrElemType, val.typ)
	}
	if err := y.canAdopt(val); err != nil {
		return err
	}
	elem := y.elem
	if elem == NullType {
		elem = val.typ
		if elem == MLStringType {
			elem = StringType
		}
	}
	switch {
	case val.typ == elem:
	case elem == StringType && val.typ == MLStringType:
	case elem == FloatType && val.typ == IntType:
		val.typ = FloatType
		val.f = float64(val.i)
		val.i = 0
	default:
		return fmt.Errorf("%w: cannot push %s into list(%s)", ErrElemType, val.typ, elem.Keyword())
	}
	y.elem = elem
	val.parent = y
	val.parentIndex = len(y.values)
	y.values = append(y.values, val)
	return nil
}

func (y *Node) canAdopt(val *Node) error {
	if val.parent != nil {
		return fmt.Errorf("%w: %s", ErrOwned, val.Path())
	}
	for p := y; p != nil; p = p.parent {
		if p == val {
			return ErrCycle
		}
	}
	return nil
}
