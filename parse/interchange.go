package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/scl-format/gomap"
	"github.com/signadot/scl-format/ir"
)

// parseInterchange decodes JSON or YAML, JSON being a subset of YAML.  The
// top level must be a mapping.
func parseInterchange(d []byte, opts *parseOpts) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, opts.format, err)
	}
	switch v.(type) {
	case nil:
		return ir.NewClass(), nil
	case yaml.MapSlice:
	default:
		return nil, fmt.Errorf("%w: %s: top level is %T, not a mapping", ErrParse, opts.format, v)
	}
	res, err := gomap.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}
