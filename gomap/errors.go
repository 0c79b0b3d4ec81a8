package gomap

import (
	"errors"
	"fmt"
)

var ErrConvert = errors.New("cannot convert")

// ConvertError reports a Go value which has no node representation.
type ConvertError struct {
	FieldPath string // eg "cfg.items[2]"
	Message   string
}

func (e *ConvertError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("%s at %s: %s", ErrConvert, e.FieldPath, e.Message)
	}
	return fmt.Sprintf("%s: %s", ErrConvert, e.Message)
}

func (e *ConvertError) Unwrap() error {
	return ErrConvert
}

func convertErr(path, format string, args ...any) error {
	return &ConvertError{FieldPath: path, Message: fmt.Sprintf(format, args...)}
}
