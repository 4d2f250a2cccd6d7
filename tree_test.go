package mwtree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeIntTree(t *testing.T, maxElements int, values ...int) *Tree[int] {
	t.Helper()
	tree, err := NewOrdered[int](maxElements)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range values {
		tree.Insert(v)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after inserts: %v", err)
	}
	return tree
}

func inOrder[T any](tree *Tree[T]) []T {
	var out []T
	for c := tree.Begin(); !c.AtEnd(); _ = c.Next() {
		v, _ := c.Value()
		out = append(out, v)
	}
	return out
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int]{MaxElements: 4})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing less, got %v", err)
	}
	_, err = NewOrdered[int](-1)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative width, got %v", err)
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	tree, err := New(Config[int]{Less: func(a, b int) bool { return a < b }})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.MaxElements() != DefaultMaxElements {
		t.Fatalf("expected default width %d, got %d", DefaultMaxElements, tree.MaxElements())
	}
	cfg := tree.Config()
	if cfg.Equal == nil || !cfg.Equal(3, 3) || cfg.Equal(3, 4) {
		t.Fatalf("expected equality derived from less")
	}
}

func TestEmptyTree(t *testing.T) {
	tree := makeIntTree(t, 3)
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if !tree.Begin().Equal(tree.End()) {
		t.Fatalf("expected begin == end for empty tree")
	}
	if !tree.Find(1).Equal(tree.End()) || tree.Contains(1) {
		t.Fatalf("expected find to miss on empty tree")
	}
	if !tree.Begin().Equal(Cursor[int]{}) {
		t.Fatalf("expected end of empty tree to equal zero cursor")
	}
	if len(inOrder(tree)) != 0 || tree.String() != "" {
		t.Fatalf("expected empty in-order sequence and listing")
	}
	if _, ok := tree.Min(); ok {
		t.Fatalf("expected no minimum for empty tree")
	}
}

func TestZeroTreeInsertPanics(t *testing.T) {
	var tree Tree[int]
	if !tree.IsEmpty() || tree.Contains(1) {
		t.Fatalf("expected zero tree to be empty")
	}
	defer func() {
		if r := recover(); r != "mwtree: tree not created with New" {
			t.Fatalf("unexpected panic %v", r)
		}
	}()
	tree.Insert(1)
}

func TestInsertSingleAndFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mwtree")
	defer teardown()
	//
	tree := makeIntTree(t, DefaultMaxElements)
	c, inserted := tree.Insert(10)
	if !inserted {
		t.Fatalf("expected first insert to report true")
	}
	if v, err := c.Value(); err != nil || v != 10 {
		t.Fatalf("insert cursor: got (%d, %v), want 10", v, err)
	}
	found := tree.Find(10)
	if v, err := found.Value(); err != nil || v != 10 {
		t.Fatalf("find(10): got (%d, %v), want 10", v, err)
	}
	if !tree.Find(99).Equal(tree.End()) {
		t.Fatalf("expected find(99) to return end")
	}
}

func TestInsertOverflowsIntoChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mwtree")
	defer teardown()
	//
	tree := makeIntTree(t, 2, 5, 3, 8, 1)
	root := tree.root
	if !slices.Equal(root.values, []int{3, 5}) {
		t.Fatalf("expected root {3, 5}, got %v", root.values)
	}
	if root.children[0] == nil || !slices.Equal(root.children[0].values, []int{1}) {
		t.Fatalf("expected 1 below the slot preceding 3")
	}
	if root.children[1] != nil {
		t.Fatalf("expected no child between 3 and 5")
	}
	if root.children[2] == nil || !slices.Equal(root.children[2].values, []int{8}) {
		t.Fatalf("expected 8 below the slot following 5")
	}
	if got := inOrder(tree); !slices.Equal(got, []int{1, 3, 5, 8}) {
		t.Fatalf("unexpected in-order sequence %v", got)
	}
	if tree.Height() != 2 || tree.Len() != 4 {
		t.Fatalf("unexpected shape height=%d len=%d", tree.Height(), tree.Len())
	}
}

func TestInsertDuplicateIsNoOp(t *testing.T) {
	tree := makeIntTree(t, 2, 5, 3, 8, 1)
	before := inOrder(tree)
	first := tree.Find(8)
	c, inserted := tree.Insert(8)
	if inserted {
		t.Fatalf("expected duplicate insert to report false")
	}
	if !c.Equal(first) {
		t.Fatalf("expected duplicate insert to return cursor at present element")
	}
	if got := inOrder(tree); !slices.Equal(got, before) || tree.Len() != len(before) {
		t.Fatalf("duplicate insert changed tree: %v", got)
	}
}

func TestInsertRandomizedKeepsOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(4711))
	for _, width := range []int{1, 2, 3, 7, DefaultMaxElements} {
		tree := makeIntTree(t, width)
		seen := map[int]bool{}
		for range 500 {
			v := rng.Intn(300)
			_, inserted := tree.Insert(v)
			if inserted == seen[v] {
				t.Fatalf("width %d: insert(%d) reported %v, seen=%v", width, v, inserted, seen[v])
			}
			seen[v] = true
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("width %d: %v", width, err)
		}
		want := make([]int, 0, len(seen))
		for v := range seen {
			want = append(want, v)
		}
		slices.Sort(want)
		if got := inOrder(tree); !slices.Equal(got, want) {
			t.Fatalf("width %d: in-order walk %v, want %v", width, got, want)
		}
		for _, v := range want {
			if x, err := tree.Find(v).Value(); err != nil || x != v {
				t.Fatalf("width %d: find(%d) = (%d, %v)", width, v, x, err)
			}
		}
		if tree.Contains(-1) || tree.Contains(300) {
			t.Fatalf("width %d: found elements never inserted", width)
		}
	}
}

func TestInsertValueAtRenumbersChildren(t *testing.T) {
	tree := makeIntTree(t, 3)
	root := &node[int]{values: []int{10, 20}, children: make([]*node[int], 3)}
	root.attach(2, newNode(30))
	tree.root, tree.size = root, 3
	if err := tree.Check(); err != nil {
		t.Fatalf("expected manual tree to validate, got %v", err)
	}
	tree.Insert(5)
	if !slices.Equal(root.values, []int{5, 10, 20}) {
		t.Fatalf("unexpected root values %v", root.values)
	}
	if c := root.children[3]; c == nil || c.slot != 3 || c.values[0] != 30 {
		t.Fatalf("expected child moved to slot 3")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invalid after insert: %v", err)
	}
	if got := inOrder(tree); !slices.Equal(got, []int{5, 10, 20, 30}) {
		t.Fatalf("unexpected in-order sequence %v", got)
	}
}

func TestCustomEqual(t *testing.T) {
	type entry struct {
		key     string
		payload int
	}
	tree, err := New(Config[entry]{
		MaxElements: 2,
		Less:        func(a, b entry) bool { return a.key < b.key },
		Equal:       func(a, b entry) bool { return a.key == b.key },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.Insert(entry{"b", 1})
	tree.Insert(entry{"a", 2})
	if _, inserted := tree.Insert(entry{"b", 3}); inserted {
		t.Fatalf("expected key b to be present")
	}
	v, err := tree.Find(entry{key: "b"}).Value()
	if err != nil || v.payload != 1 {
		t.Fatalf("expected original payload, got %v (%v)", v, err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mwtree")
	defer teardown()
	//
	original := makeIntTree(t, 2, 5, 3, 8, 1, 9, 7)
	copied := original.Clone()
	if err := copied.Check(); err != nil {
		t.Fatalf("clone invalid: %v", err)
	}
	if copied.root == original.root {
		t.Fatalf("clone shares root node")
	}
	copied.Insert(4)
	original.Insert(100)
	if got := inOrder(original); !slices.Equal(got, []int{1, 3, 5, 7, 8, 9, 100}) {
		t.Fatalf("original affected by clone mutation: %v", got)
	}
	if got := inOrder(copied); !slices.Equal(got, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Fatalf("clone affected by original mutation: %v", got)
	}
	if copied.MaxElements() != original.MaxElements() {
		t.Fatalf("clone lost node width")
	}
}

func TestCopyFromReplacesContents(t *testing.T) {
	src := makeIntTree(t, 2, 5, 3, 8)
	dst := makeIntTree(t, 7, 100, 200)
	dst.CopyFrom(src)
	if dst.MaxElements() != 2 || dst.Len() != 3 {
		t.Fatalf("unexpected copy state width=%d len=%d", dst.MaxElements(), dst.Len())
	}
	dst.Insert(1)
	if src.Contains(1) {
		t.Fatalf("copy assignment aliases source")
	}
	dst.CopyFrom(dst)
	if got := inOrder(dst); !slices.Equal(got, []int{1, 3, 5, 8}) {
		t.Fatalf("self copy changed contents: %v", got)
	}
}

func TestMoveTransfersRoot(t *testing.T) {
	src := makeIntTree(t, 2, 5, 3, 8, 1)
	root := src.root
	moved := src.Move()
	if moved.root != root || moved.Len() != 4 {
		t.Fatalf("move did not transfer root")
	}
	if !src.IsEmpty() || src.Len() != 0 || src.Check() != nil {
		t.Fatalf("move source not left empty")
	}
	src.Insert(42)
	if moved.Contains(42) {
		t.Fatalf("moved tree affected by source reuse")
	}
	dst := makeIntTree(t, 5, 77)
	dst.MoveFrom(moved)
	if dst.root != root || dst.MaxElements() != 2 || !moved.IsEmpty() {
		t.Fatalf("move assignment did not transfer root")
	}
	if got := inOrder(dst); !slices.Equal(got, []int{1, 3, 5, 8}) {
		t.Fatalf("unexpected moved contents %v", got)
	}
}

func TestMinMax(t *testing.T) {
	tree := makeIntTree(t, 2, 5, 3, 8, 1, 9, 7)
	if v, ok := tree.Min(); !ok || v != 1 {
		t.Fatalf("min: got (%d, %v)", v, ok)
	}
	if v, ok := tree.Max(); !ok || v != 9 {
		t.Fatalf("max: got (%d, %v)", v, ok)
	}
}

func TestHeightWithWidthOne(t *testing.T) {
	tree := makeIntTree(t, 1, 1, 2, 3, 4, 5)
	if tree.Height() != 5 {
		t.Fatalf("expected a chain of height 5, got %d", tree.Height())
	}
	if got := inOrder(tree); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("unexpected in-order sequence %v", got)
	}
}
