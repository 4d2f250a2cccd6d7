package mwtree

import (
	"cmp"
	"slices"
)

// Tree is an ordered set of distinct elements of type T, stored in a
// multi-way search tree.
//
// Trees have to be created with New or NewOrdered; the zero value of Tree
// has no ordering and is not usable. Copying a Tree value shares its nodes;
// use Clone for a structural copy.
type Tree[T any] struct {
	cfg  Config[T]
	root *node[T] // nil for an empty tree
	size int
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg.normalized()}, nil
}

// NewOrdered creates an empty tree for an ordered element type. A
// maxElements of 0 selects DefaultMaxElements.
func NewOrdered[T cmp.Ordered](maxElements int) (*Tree[T], error) {
	return New(OrderedConfig[T](maxElements))
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// MaxElements returns the maximum number of elements per node.
func (t *Tree[T]) MaxElements() int {
	return t.cfg.MaxElements
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the number of nodes on the longest root-to-node path, where
// 0 means empty and 1 means a single root node.
func (t *Tree[T]) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	height := 0
	level := []*node[T]{t.root}
	for len(level) > 0 {
		height++
		var next []*node[T]
		for _, n := range level {
			for _, c := range n.children {
				if c != nil {
					next = append(next, c)
				}
			}
		}
		level = next
	}
	return height
}

// Insert inserts value if no equal element is present. It returns a cursor
// positioned at the inserted or the already present element, and whether the
// tree has grown.
//
// Insert invalidates cursors on the receiving node at or after the insert
// slot, and end cursors if the root node receives the element.
func (t *Tree[T]) Insert(value T) (Cursor[T], bool) {
	assert(t.cfg.Less != nil, "mwtree: tree not created with New")
	if t.root == nil {
		t.root = newNode(value)
		t.size = 1
		tracer().Debugf("mwtree: created root node")
		t.debugCheck("insert")
		return Cursor[T]{loc: location[T]{node: t.root}}, true
	}
	loc := t.locate(value)
	if t.matches(loc, value) {
		return Cursor[T]{loc: loc}, false
	}
	n := loc.node
	if len(n.values) < t.cfg.MaxElements {
		n.insertValueAt(loc.slot, value)
	} else {
		child := newNode(value)
		n.attach(loc.slot, child)
		tracer().Debugf("mwtree: node full, opened child at slot %d", loc.slot)
		loc = location[T]{node: child}
	}
	t.size++
	t.debugCheck("insert")
	return Cursor[T]{loc: loc}, true
}

// Find returns a cursor positioned at the element equal to value, or End()
// if there is none.
func (t *Tree[T]) Find(value T) Cursor[T] {
	if t.IsEmpty() {
		return Cursor[T]{}
	}
	loc := t.locate(value)
	if t.matches(loc, value) {
		return Cursor[T]{loc: loc}
	}
	return t.End()
}

// CFind is the read-only counterpart of Find.
func (t *Tree[T]) CFind(value T) ConstCursor[T] {
	return t.Find(value).ReadOnly()
}

// Contains reports whether an element equal to value is present.
func (t *Tree[T]) Contains(value T) bool {
	return !t.Find(value).AtEnd()
}

// Min returns the smallest element. ok is false for an empty tree.
func (t *Tree[T]) Min() (value T, ok bool) {
	v, err := t.Begin().Value()
	return v, err == nil
}

// Max returns the largest element. ok is false for an empty tree.
func (t *Tree[T]) Max() (value T, ok bool) {
	v, err := t.RBegin().Value()
	return v, err == nil
}

// Clone returns a structural deep copy of the tree. Elements are copied by
// assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	tracer().Debugf("mwtree: deep copy of %d elements", t.size)
	return &Tree[T]{
		cfg:  t.cfg,
		root: cloneNodes(t.root),
		size: t.size,
	}
}

// CopyFrom replaces the contents and configuration of t with a deep copy of
// src.
func (t *Tree[T]) CopyFrom(src *Tree[T]) {
	if t == src || src == nil {
		return
	}
	t.cfg = src.cfg
	t.root = cloneNodes(src.root)
	t.size = src.size
	t.debugCheck("copy")
}

// Move returns a new tree taking over the nodes of t, leaving t empty. The
// configuration stays with t as well.
func (t *Tree[T]) Move() *Tree[T] {
	if t == nil {
		return nil
	}
	moved := &Tree[T]{cfg: t.cfg, root: t.root, size: t.size}
	t.root, t.size = nil, 0
	tracer().Debugf("mwtree: moved %d elements", moved.size)
	return moved
}

// MoveFrom replaces the contents and configuration of t with those of src,
// leaving src empty.
func (t *Tree[T]) MoveFrom(src *Tree[T]) {
	if t == src || src == nil {
		return
	}
	t.cfg = src.cfg
	t.root, t.size = src.root, src.size
	src.root, src.size = nil, 0
}

// cloneNodes copies the subtree at src iteratively, so arbitrary tree depth
// does not grow the call stack.
func cloneNodes[T any](src *node[T]) *node[T] {
	if src == nil {
		return nil
	}
	type job struct{ from, to *node[T] }
	root := src.shallowCopy()
	work := []job{{src, root}}
	for len(work) > 0 {
		j := work[len(work)-1]
		work = work[:len(work)-1]
		for i, c := range j.from.children {
			if c == nil {
				continue
			}
			cc := c.shallowCopy()
			j.to.attach(i, cc)
			work = append(work, job{c, cc})
		}
	}
	return root
}

// shallowCopy copies the values of n into a fresh node with absent links.
func (n *node[T]) shallowCopy() *node[T] {
	return &node[T]{
		values:   slices.Clone(n.values),
		children: make([]*node[T], len(n.children)),
	}
}
