//go:build mwtree_debug

package mwtree

func (t *Tree[T]) debugCheck(op string) {
	if err := t.Check(); err != nil {
		tracer().Errorf("mwtree: %s left tree inconsistent: %v", op, err)
		panic(err.Error())
	}
}
