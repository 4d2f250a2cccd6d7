package mwtree

import "fmt"

// Check validates structural tree invariants:
//
//   - every node holds between 1 and MaxElements values,
//   - every node has exactly one more child link than values,
//   - values are strictly ascending, within a node and across subtrees,
//   - every child's parent link and slot identify the link owning it,
//   - the element count matches Len().
//
// Check is meant for tests and debugging.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrCorrupted, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	type bound struct {
		value T
		set   bool
	}
	type job struct {
		n      *node[T]
		lo, hi bound
	}
	count := 0
	work := []job{{n: t.root}}
	for len(work) > 0 {
		j := work[len(work)-1]
		work = work[:len(work)-1]
		n := j.n
		if err := t.checkNode(n); err != nil {
			return err
		}
		count += len(n.values)
		if j.lo.set && !t.cfg.Less(j.lo.value, n.values[0]) {
			return fmt.Errorf("%w: value %v does not sort after parent bound %v",
				ErrCorrupted, n.values[0], j.lo.value)
		}
		if last := n.values[len(n.values)-1]; j.hi.set && !t.cfg.Less(last, j.hi.value) {
			return fmt.Errorf("%w: value %v does not sort before parent bound %v",
				ErrCorrupted, last, j.hi.value)
		}
		for i, c := range n.children {
			if c == nil {
				continue
			}
			if c.parent != n {
				return fmt.Errorf("%w: child at slot %d has wrong parent", ErrCorrupted, i)
			}
			if c.slot != i {
				return fmt.Errorf("%w: child at slot %d records slot %d", ErrCorrupted, i, c.slot)
			}
			cj := job{n: c, lo: j.lo, hi: j.hi}
			if i > 0 {
				cj.lo = bound{value: n.values[i-1], set: true}
			}
			if i < len(n.values) {
				cj.hi = bound{value: n.values[i], set: true}
			}
			work = append(work, cj)
		}
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d elements, size is %d", ErrCorrupted, count, t.size)
	}
	return nil
}

func (t *Tree[T]) checkNode(n *node[T]) error {
	if len(n.values) == 0 {
		return fmt.Errorf("%w: node without values", ErrCorrupted)
	}
	if len(n.values) > t.cfg.MaxElements {
		return fmt.Errorf("%w: node holds %d values, max is %d",
			ErrCorrupted, len(n.values), t.cfg.MaxElements)
	}
	if len(n.children) != len(n.values)+1 {
		return fmt.Errorf("%w: node has %d children for %d values",
			ErrCorrupted, len(n.children), len(n.values))
	}
	for i := 1; i < len(n.values); i++ {
		if !t.cfg.Less(n.values[i-1], n.values[i]) {
			return fmt.Errorf("%w: values %v and %v out of order",
				ErrCorrupted, n.values[i-1], n.values[i])
		}
	}
	return nil
}
