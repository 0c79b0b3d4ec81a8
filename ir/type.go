package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	FloatType
	StringType
	MLStringType
	ListType
	ClassType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:     "Null",
		BoolType:     "Bool",
		IntType:      "Int",
		FloatType:    "Float",
		StringType:   "Str",
		MLStringType: "MultilineStr",
		ListType:     "List",
		ClassType:    "Class",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// Keyword returns the SCL type keyword for t, or "" for Null.
func (t Type) Keyword() string {
	switch t {
	case BoolType:
		return "bool"
	case IntType:
		return "num"
	case FloatType:
		return "fl"
	case StringType:
		return "str"
	case MLStringType:
		return "ml"
	case ListType:
		return "list"
	case ClassType:
		return "class"
	default:
		return ""
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":         NullType,
		"Bool":         BoolType,
		"Int":          IntType,
		"Float":        FloatType,
		"Str":          StringType,
		"MultilineStr": MLStringType,
		"List":         ListType,
		"Class":        ClassType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		FloatType,
		StringType,
		MLStringType,
		ListType,
		ClassType,
	}
}

// IsScalar reports whether nodes of type t may be list elements.
func (t Type) IsScalar() bool {
	switch t {
	case BoolType, IntType, FloatType, StringType, MLStringType:
		return true
	default:
		return false
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, ClassType:
		return false
	default:
		return true
	}
}
