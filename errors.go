package mwtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("mwtree: invalid configuration")
	// ErrCursorAtEnd signals that a cursor at the end sentinel has been
	// dereferenced or advanced.
	ErrCursorAtEnd = errors.New("mwtree: cursor at end")
	// ErrCursorAtBegin signals that a cursor at the first element has been
	// moved backwards.
	ErrCursorAtBegin = errors.New("mwtree: cursor at begin")
	// ErrCorrupted signals a violated structural invariant.
	ErrCorrupted = errors.New("mwtree: corrupted tree")
)
