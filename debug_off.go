//go:build !mwtree_debug

package mwtree

func (t *Tree[T]) debugCheck(string) {}
