package mwtree

// A cursor is a bidirectional position over the elements of a tree, in
// ascending order. It is identified by a node and a slot within the node's
// values.
//
// The end sentinel sits one past the last element of the root node:
//
//	(root, len(root.values))
//
// A cursor without a node is the end sentinel of an empty tree. Stepping
// relies solely on the parent link of a node and on the node's slot within
// its parent.

// atEnd reports whether loc is the end sentinel.
func (loc location[T]) atEnd() bool {
	return loc.node == nil || (loc.node.isRoot() && loc.slot >= len(loc.node.values))
}

// next moves loc to the in-order successor. At the end sentinel it returns
// ErrCursorAtEnd and leaves loc unchanged.
func (loc *location[T]) next() error {
	if loc.atEnd() {
		return ErrCursorAtEnd
	}
	n, slot := loc.node, loc.slot
	if right := n.children[slot+1]; right != nil {
		loc.node, loc.slot = right.leftmost(), 0
		return nil
	}
	slot++
	for slot == len(n.values) && n.parent != nil {
		slot = n.slot
		n = n.parent
	}
	loc.node, loc.slot = n, slot
	return nil
}

// prev moves loc to the in-order predecessor. At the first element it returns
// ErrCursorAtBegin and leaves loc unchanged.
func (loc *location[T]) prev() error {
	if loc.node == nil {
		return ErrCursorAtBegin
	}
	n, slot := loc.node, loc.slot
	if left := n.children[slot]; left != nil {
		last := left.rightmost()
		loc.node, loc.slot = last, len(last.values)-1
		return nil
	}
	for slot == 0 && n.parent != nil {
		slot = n.slot
		n = n.parent
	}
	if slot == 0 {
		return ErrCursorAtBegin
	}
	loc.node, loc.slot = n, slot-1
	return nil
}

func (loc location[T]) ref() (*T, error) {
	if loc.atEnd() {
		return nil, ErrCursorAtEnd
	}
	return &loc.node.values[loc.slot], nil
}

func (loc location[T]) value() (T, error) {
	p, err := loc.ref()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// --- Cursor ----------------------------------------------------------------

// Cursor is a mutable cursor over a tree. Cursors are values: assigning a
// cursor copies the position, and both copies step independently.
type Cursor[T any] struct {
	loc location[T]
}

// Begin returns a cursor at the smallest element, or End() for an empty
// tree.
func (t *Tree[T]) Begin() Cursor[T] {
	if t.IsEmpty() {
		return Cursor[T]{}
	}
	return Cursor[T]{loc: location[T]{node: t.root.leftmost()}}
}

// End returns the end sentinel of the tree.
func (t *Tree[T]) End() Cursor[T] {
	if t.IsEmpty() {
		return Cursor[T]{}
	}
	return Cursor[T]{loc: location[T]{node: t.root, slot: len(t.root.values)}}
}

// CBegin is the read-only counterpart of Begin.
func (t *Tree[T]) CBegin() ConstCursor[T] {
	return t.Begin().ReadOnly()
}

// CEnd is the read-only counterpart of End.
func (t *Tree[T]) CEnd() ConstCursor[T] {
	return t.End().ReadOnly()
}

// Value returns the element at the cursor position, or ErrCursorAtEnd.
func (c Cursor[T]) Value() (T, error) {
	return c.loc.value()
}

// Ref returns a pointer to the element at the cursor position, or
// ErrCursorAtEnd. Changes made through the pointer must not alter the
// element's ordering relative to other elements. The pointer may refer to
// stale storage after an Insert into the same node.
func (c Cursor[T]) Ref() (*T, error) {
	return c.loc.ref()
}

// Next advances the cursor to the next element in ascending order. Advancing
// past the last element yields the end sentinel. Advancing the end sentinel
// returns ErrCursorAtEnd.
func (c *Cursor[T]) Next() error {
	return c.loc.next()
}

// Prev moves the cursor to the previous element. Moving back from the end
// sentinel yields the last element. Moving back from the first element
// returns ErrCursorAtBegin.
func (c *Cursor[T]) Prev() error {
	return c.loc.prev()
}

// AtEnd reports whether c is the end sentinel.
func (c Cursor[T]) AtEnd() bool {
	return c.loc.atEnd()
}

// Equal reports whether c and other denote the same position.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.loc == other.loc
}

// ReadOnly returns a read-only cursor at the same position.
func (c Cursor[T]) ReadOnly() ConstCursor[T] {
	return ConstCursor[T]{loc: c.loc}
}

// --- ConstCursor -----------------------------------------------------------

// ConstCursor is a read-only cursor. It behaves like Cursor but does not
// hand out references to elements.
type ConstCursor[T any] struct {
	loc location[T]
}

// Value returns the element at the cursor position, or ErrCursorAtEnd.
func (c ConstCursor[T]) Value() (T, error) {
	return c.loc.value()
}

// Next advances the cursor; see Cursor.Next.
func (c *ConstCursor[T]) Next() error {
	return c.loc.next()
}

// Prev moves the cursor backwards; see Cursor.Prev.
func (c *ConstCursor[T]) Prev() error {
	return c.loc.prev()
}

// AtEnd reports whether c is the end sentinel.
func (c ConstCursor[T]) AtEnd() bool {
	return c.loc.atEnd()
}

// Equal reports whether c and other denote the same position.
func (c ConstCursor[T]) Equal(other ConstCursor[T]) bool {
	return c.loc == other.loc
}
