package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	SCLFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"s":    SCLFormat,
		"scl":  SCLFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case SCLFormat:
		return []byte("scl"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsSCL() bool  { return f == SCLFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case SCLFormat:
		return ".scl"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// FromSuffix guesses a format from a file name, defaulting to SCL.
func FromSuffix(name string) Format {
	for _, f := range AllFormats() {
		if n := len(f.Suffix()); len(name) > n && name[len(name)-n:] == f.Suffix() {
			return f
		}
	}
	if n := len(name); n > 4 && name[n-4:] == ".yml" {
		return YAMLFormat
	}
	return SCLFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{SCLFormat, YAMLFormat, JSONFormat}
}
