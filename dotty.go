package mwtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func ToDot[T any](tree *Tree[T], w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if !tree.IsEmpty() {
		ids := newtable[T]()
		var nodelist, edgelist strings.Builder
		nils := 0
		queue := []*node[T]{tree.root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			id := ids.alloc(n)
			fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", id, dotLabel(n.values), nodeDotStyles(n.isRoot()))
			for i, c := range n.children {
				if c == nil {
					nils++
					nilid := fmt.Sprintf("nil%d", nils)
					fmt.Fprintf(&nodelist, "\t\"%s\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%s\" [label=%d];\n", id, nilid, i)
					continue
				}
				fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\" [label=%d];\n", id, ids.alloc(c), i)
				queue = append(queue, c)
			}
		}
		b.WriteString(nodelist.String())
		b.WriteString(edgelist.String())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func dotLabel[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		s := fmt.Sprintf("%v", v)
		parts[i] = strings.ReplaceAll(s, `"`, `\"`)
	}
	return strings.Join(parts, " | ")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isroot bool) string {
	s := ",style=filled,shape=box"
	if isroot {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	} else {
		s += ",fillcolor=\"#CCDDFF\""
	}
	return s
}
