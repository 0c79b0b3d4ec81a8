package token

import (
	"errors"
	"fmt"
)

var (
	// ErrLex matches every error returned by Tokenize.
	ErrLex = errors.New("lexical error")

	ErrUnterminated = errors.New("unterminated")
	ErrUnexpected   = errors.New("unexpected character")
	ErrNumber       = errors.New("invalid number")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Is(target error) bool {
	return target == ErrLex
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func unterminatedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnterminated, what), p)
}
