/*
Package mwtree implements an in-memory, ordered multi-way search tree.

Every node of the tree holds up to a fixed number of distinct elements in
ascending order, together with one more child link than it holds elements.
A node holding m elements partitions the key space below it into m+1
ordered subtrees, much like a binary search tree does with a single
element per node:

	            [ 3   5 ]
	           /    |    \
	        [1]    nil    [8]

Clients insert unique elements, look up elements, and walk the tree in
sorted order with bidirectional cursors. Cursors step through the tree using
only the node they sit on, the node's parent link and the node's slot within
its parent. There is no traversal stack.

# Insertion policy

Insertion descends from the root to the slot where the element belongs.
If the node owning that slot has room, the element is placed there. If the
node is full, a new child node holding just the element is hung off the
slot. Nodes are never split and the tree is never rebalanced, so node width
is bounded but tree height is not. Clients needing guaranteed logarithmic
height should use a balanced tree.

# Concurrency

Trees are not safe for concurrent use. Insert invalidates cursors sitting on
the node it modifies at or after the insertion slot, and an end cursor of a
tree whose root grows.

# Debug checks

Building with tag `mwtree_debug` validates all structural invariants after
every mutation and panics on violation.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package mwtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mwtree'
func tracer() tracing.Trace {
	return tracing.Select("mwtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
