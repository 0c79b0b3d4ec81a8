package encode

import "errors"

var (
	ErrEncoding = errors.New("encoding error")
	ErrIO       = errors.New("i/o error")
)
