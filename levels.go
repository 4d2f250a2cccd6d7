package mwtree

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// All returns an iterator over the elements in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := t.Begin(); !c.AtEnd(); _ = c.Next() {
			v, _ := c.Value()
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := t.RBegin(); !c.AtEnd(); _ = c.Next() {
			v, _ := c.Value()
			if !yield(v) {
				return
			}
		}
	}
}

// BreadthFirst returns an iterator over the nodes of the tree in breadth-first
// order: the root, then every level from left to right. It yields the depth
// of each node (0 for the root) together with a copy of its values.
//
// This is visitation order, not sorted order. The iterator may be restarted
// and reflects the tree at the time of each restart.
func (t *Tree[T]) BreadthFirst() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if t.IsEmpty() {
			return
		}
		type entry struct {
			n     *node[T]
			depth int
		}
		queue := []entry{{t.root, 0}}
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			if !yield(e.depth, slices.Clone(e.n.values)) {
				return
			}
			for _, c := range e.n.children {
				if c != nil {
					queue = append(queue, entry{c, e.depth + 1})
				}
			}
		}
	}
}

// Levels returns an iterator over all elements in breadth-first node order,
// each node's values in ascending order.
func (t *Tree[T]) Levels() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, values := range t.BreadthFirst() {
			for _, v := range values {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// WriteTo writes the breadth-first listing of all elements to w, separated by
// single spaces and without a trailing newline. Elements are formatted with
// the %v verb.
func (t *Tree[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	sep := ""
	for v := range t.Levels() {
		n, err := fmt.Fprintf(w, "%s%v", sep, v)
		total += int64(n)
		if err != nil {
			return total, err
		}
		sep = " "
	}
	return total, nil
}

// String returns the breadth-first listing produced by WriteTo.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	_, _ = t.WriteTo(&sb)
	return sb.String()
}
