package ir

import "errors"

var (
	ErrNotContainer = errors.New("not a container")
	ErrElemType     = errors.New("list element type mismatch")
	ErrOwned        = errors.New("node already has a parent")
	ErrCycle        = errors.New("node would contain itself")
	ErrNil          = errors.New("nil node")
	ErrPath         = errors.New("path error")
)
