package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/scl-format/ir"
)

// MustString encodes node as SCL with default options, without the
// trailing newline.  It panics on error.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// MustValueString is MustString for EncodeValue.
func MustValueString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeValue(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
