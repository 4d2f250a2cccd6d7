package mwtree

// ReverseCursor walks a tree in descending order.
//
// A reverse cursor wraps a base position and denotes the element preceding
// it. RBegin wraps End() and therefore denotes the largest element; REnd
// wraps Begin().
type ReverseCursor[T any] struct {
	base location[T]
}

// RBegin returns a reverse cursor at the largest element, or REnd() for an
// empty tree.
func (t *Tree[T]) RBegin() ReverseCursor[T] {
	return ReverseCursor[T]{base: t.End().loc}
}

// REnd returns the end sentinel of a reverse walk.
func (t *Tree[T]) REnd() ReverseCursor[T] {
	return ReverseCursor[T]{base: t.Begin().loc}
}

// Value returns the element at the cursor position, or ErrCursorAtEnd at
// REnd().
func (c ReverseCursor[T]) Value() (T, error) {
	p, err := c.Ref()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref returns a pointer to the element at the cursor position, with the
// restrictions of Cursor.Ref.
func (c ReverseCursor[T]) Ref() (*T, error) {
	loc := c.base
	if err := loc.prev(); err != nil {
		return nil, ErrCursorAtEnd
	}
	return loc.ref()
}

// Next moves the cursor to the next smaller element. Moving past the smallest
// element yields REnd(). Advancing REnd() returns ErrCursorAtEnd.
func (c *ReverseCursor[T]) Next() error {
	if err := c.base.prev(); err != nil {
		return ErrCursorAtEnd
	}
	return nil
}

// Prev moves the cursor to the next larger element. Moving back from RBegin()
// returns ErrCursorAtBegin.
func (c *ReverseCursor[T]) Prev() error {
	if err := c.base.next(); err != nil {
		return ErrCursorAtBegin
	}
	return nil
}

// AtEnd reports whether c is the end sentinel of a reverse walk.
func (c ReverseCursor[T]) AtEnd() bool {
	loc := c.base
	return loc.prev() != nil
}

// Equal reports whether c and other denote the same position.
func (c ReverseCursor[T]) Equal(other ReverseCursor[T]) bool {
	return c.base == other.base
}

// Base returns a cursor at the wrapped base position, which is one element
// after the position of c in ascending order.
func (c ReverseCursor[T]) Base() Cursor[T] {
	return Cursor[T]{loc: c.base}
}
