package encode

import "github.com/signadot/scl-format/format"

type EncodeOption func(*EncState)

// BoolStyle selects the spelling of boolean literals.
type BoolStyle int

const (
	YesNo BoolStyle = iota
	TrueFalse
)

func (b BoolStyle) String() string {
	if b == TrueFalse {
		return "true"
	}
	return "yes"
}

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the number of spaces per nesting level.  n <= 0 selects the
// default of 4.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
func EncodeBools(b BoolStyle) EncodeOption {
	return func(es *EncState) { es.bools = b }
}
