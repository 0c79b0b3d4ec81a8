package parse

import (
	"github.com/signadot/scl-format/format"
	"github.com/signadot/scl-format/ir"
	"github.com/signadot/scl-format/token"
)

type parseOpts struct {
	format    format.Format
	comments  bool
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

func ParseSCL() ParseOption {
	return ParseFormat(format.SCLFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseComments attaches comments to the nodes they describe.  It has no
// effect on JSON and YAML input.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParsePositions records in m the position of each parsed node: the key of
// an entry value, the literal of a list element and the first token for the
// root.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
