package mwtree

import (
	"cmp"
	"fmt"
)

// DefaultMaxElements is the node width used when a Config leaves MaxElements
// unset.
const DefaultMaxElements = 40

// LessFunc reports whether a sorts before b. It must define a strict weak
// ordering.
type LessFunc[T any] func(a, b T) bool

// EqualFunc reports whether a and b are the same element.
type EqualFunc[T any] func(a, b T) bool

// Config configures a tree.
type Config[T any] struct {
	// MaxElements is the maximum number of elements per node. Zero selects
	// DefaultMaxElements.
	MaxElements int
	// Less orders elements and is required.
	Less LessFunc[T]
	// Equal optionally tests elements for equality. If nil, two elements are
	// equal if neither is less than the other. A custom Equal must agree with
	// that notion for elements compared during search, otherwise exact-match
	// lookups may miss.
	Equal EqualFunc[T]
}

// OrderedConfig returns a configuration for an ordered element type, using
// cmp.Less and the == operator.
func OrderedConfig[T cmp.Ordered](maxElements int) Config[T] {
	return Config[T]{
		MaxElements: maxElements,
		Less:        cmp.Less[T],
		Equal:       func(a, b T) bool { return a == b },
	}
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.MaxElements == 0 {
		cfg.MaxElements = DefaultMaxElements
	}
	if cfg.Equal == nil && cfg.Less != nil {
		less := cfg.Less
		cfg.Equal = func(a, b T) bool {
			return !less(a, b) && !less(b, a)
		}
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.MaxElements < 1 {
		return fmt.Errorf("%w: max elements must be >= 1, is %d", ErrInvalidConfig, cfg.MaxElements)
	}
	if cfg.Less == nil {
		return fmt.Errorf("%w: less function is required", ErrInvalidConfig)
	}
	return nil
}
