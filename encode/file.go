package encode

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/scl-format/ir"
)

// EncodeFile encodes node and writes the result to path, creating or
// truncating it.  Nothing is written if encoding fails.  Write failures
// wrap ErrIO.
func EncodeFile(node *ir.Node, path string, opts ...EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
