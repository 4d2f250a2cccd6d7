package mwtree

// location is a (node, slot) pair. It addresses either the element
// node.values[slot] or the link node.children[slot].
type location[T any] struct {
	node *node[T]
	slot int
}

// locate descends from the root towards value. In every node it computes the
// first slot whose value is not less than value. Descent stops if that slot
// holds an equal value or if the link at that slot is absent. The result
// therefore either addresses an exact match or the absent link where value
// would have to be inserted.
//
// locate requires a non-empty tree.
func (t *Tree[T]) locate(value T) location[T] {
	assert(t.root != nil, "locate called on empty tree")
	n := t.root
	for {
		slot := n.position(value, t.cfg.Less)
		if slot < len(n.values) && t.cfg.Equal(n.values[slot], value) {
			return location[T]{node: n, slot: slot}
		}
		child := n.children[slot]
		if child == nil {
			return location[T]{node: n, slot: slot}
		}
		n = child
	}
}

// matches reports whether loc addresses an element equal to value.
func (t *Tree[T]) matches(loc location[T], value T) bool {
	return loc.node != nil && loc.slot < len(loc.node.values) &&
		t.cfg.Equal(loc.node.values[loc.slot], value)
}
