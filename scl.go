package scl

import (
	"strings"

	"github.com/signadot/scl-format/debug"
	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/ir"
	"github.com/signadot/scl-format/parse"
)

// Parse parses SCL text into a document whose root is a Class.
func Parse(text string) (*ir.Node, error) {
	return parse.Parse([]byte(text))
}

// ParseFile reads and parses the SCL file at path.
func ParseFile(path string) (*ir.Node, error) {
	return parse.ParseFile(path)
}

// Serialize renders doc as SCL text.  An indent <= 0 uses 4 spaces.
func Serialize(doc *ir.Node, indent int) (string, error) {
	buf := &strings.Builder{}
	if err := encode.Encode(doc, buf, encode.Indent(indent)); err != nil {
		return "", err
	}
	if debug.Encode() {
		debug.Logf("serialized %d bytes at indent %d\n%s", buf.Len(), indent, buf.String())
	}
	return buf.String(), nil
}

// SerializeToFile serializes doc and writes it to path, creating or
// truncating it.  Nothing is written when serialization fails.
func SerializeToFile(doc *ir.Node, path string, indent int) error {
	return encode.EncodeFile(doc, path, encode.Indent(indent))
}
