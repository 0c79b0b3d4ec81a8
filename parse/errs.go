package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/scl-format/token"
)

var (
	ErrParse = errors.New("parse error")
	ErrIO    = errors.New("i/o error")

	ErrExpected  = fmt.Errorf("%w: expected", ErrParse)
	ErrKey       = fmt.Errorf("%w: bad key", ErrParse)
	ErrListType  = fmt.Errorf("%w: bad list element type", ErrParse)
	ErrListElem  = fmt.Errorf("%w: bad list element", ErrParse)
	ErrSeparator = fmt.Errorf("%w: expected ',' or '}'", ErrParse)
	ErrDynamic   = fmt.Errorf("%w: dynamic value must be a literal", ErrParse)
)

// ParseErr is a grammar error at a token position.
type ParseErr struct {
	Err error
	Pos token.Pos
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func parseErr(err error, t *token.Token) error {
	return &ParseErr{Err: err, Pos: *t.Pos}
}
