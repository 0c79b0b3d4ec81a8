package parse

import (
	"fmt"
	"os"

	"github.com/signadot/scl-format/ir"
)

// ParseFile reads the file at path and parses it.  Read failures wrap
// ErrIO.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Parse(d, opts...)
}
