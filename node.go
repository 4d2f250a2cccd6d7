package mwtree

import "sort"

// node holds up to MaxElements values in ascending order and one more child
// link than values. children[i] roots the subtree of elements sorting between
// values[i-1] and values[i].
//
// Children are owned by their node. parent is a back-reference only, and slot
// is the index of the link in parent.children which owns this node. slot is
// maintained exclusively by the parent through renumber.
type node[T any] struct {
	values   []T
	children []*node[T]
	parent   *node[T]
	slot     int
}

// newNode creates a node holding a single value and two absent child links.
func newNode[T any](value T) *node[T] {
	return &node[T]{
		values:   []T{value},
		children: make([]*node[T], 2),
	}
}

func (n *node[T]) isRoot() bool {
	return n.parent == nil
}

// position returns the first slot whose value is not less than value.
func (n *node[T]) position(value T, less LessFunc[T]) int {
	return sort.Search(len(n.values), func(i int) bool {
		return !less(n.values[i], value)
	})
}

// insertValueAt inserts value at slot i. The absent link children[i] is split
// in two by inserting another absent link right after it; all children
// following the new link move up by one and are renumbered.
func (n *node[T]) insertValueAt(i int, value T) {
	assert(i >= 0 && i <= len(n.values), "insertValueAt: slot out of range")
	assert(n.children[i] == nil, "insertValueAt: slot link is occupied")
	var zero T
	n.values = append(n.values, zero)
	copy(n.values[i+1:], n.values[i:])
	n.values[i] = value
	n.children = append(n.children, nil)
	copy(n.children[i+2:], n.children[i+1:])
	n.children[i+1] = nil
	n.renumber(i + 1)
}

// attach hangs child off the absent link at slot i.
func (n *node[T]) attach(i int, child *node[T]) {
	assert(n.children[i] == nil, "attach: slot link is occupied")
	n.children[i] = child
	child.parent = n
	child.slot = i
}

// renumber recomputes the slot of every present child at index from or above.
func (n *node[T]) renumber(from int) {
	for i := from; i < len(n.children); i++ {
		if c := n.children[i]; c != nil {
			c.parent = n
			c.slot = i
		}
	}
}

// leftmost descends through first children until the first link is absent.
func (n *node[T]) leftmost() *node[T] {
	for n.children[0] != nil {
		n = n.children[0]
	}
	return n
}

// rightmost descends through last children until the last link is absent.
func (n *node[T]) rightmost() *node[T] {
	for n.children[len(n.children)-1] != nil {
		n = n.children[len(n.children)-1]
	}
	return n
}
