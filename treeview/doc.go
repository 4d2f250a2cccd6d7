/*
Package treeview renders the node structure of an mwtree.Tree for consoles.

Every depth of the tree is printed on a line of its own, nodes from left to
right, each node as the bracketed list of its values:

	 0: [3 5]
	 1: [1] [8 9]
	 2: [7]

Lines are wrapped to a configurable width, measured in fixed-width display
cells. Nodes are coloured by depth if the output supports colours.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treeview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mwtree'
func tracer() tracing.Trace {
	return tracing.Select("mwtree")
}
