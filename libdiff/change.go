package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/ir"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Modified
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "<unknown kind>"
	}
}

// Change describes one difference.  From is nil for Added, To is nil for
// Removed.
type Change struct {
	Path string
	Kind Kind
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s :: %s", c.Path, valueString(c.To))
	case Removed:
		return fmt.Sprintf("- %s :: %s", c.Path, valueString(c.From))
	default:
		return fmt.Sprintf("~ %s :: %s -> %s", c.Path, valueString(c.From), valueString(c.To))
	}
}

func valueString(y *ir.Node) string {
	if y.Type() == ir.ClassType && y.Len() > 0 {
		return fmt.Sprintf("class { %d entries }", y.Len())
	}
	buf := &strings.Builder{}
	if err := encode.EncodeValue(y, buf); err != nil {
		return y.Type().String()
	}
	return buf.String()
}
