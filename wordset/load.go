package wordset

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/mwtree"
)

// FromString returns the tree of distinct words of s.
func FromString(s string, opts Options) (*mwtree.Tree[string], error) {
	return FromReader(strings.NewReader(s), opts)
}

// FromReader returns the tree of distinct words of the text read from r.
func FromReader(r io.Reader, opts Options) (*mwtree.Tree[string], error) {
	b, err := NewBuilder(opts)
	if err != nil {
		return nil, err
	}
	defer b.Close()
	if err := b.AddText(r); err != nil {
		return nil, err
	}
	return b.Tree(), nil
}

// FromHTML returns the tree of distinct words of the textual content of an
// HTML fragment.
func FromHTML(r io.Reader, opts Options) (*mwtree.Tree[string], error) {
	b, err := NewBuilder(opts)
	if err != nil {
		return nil, err
	}
	defer b.Close()
	if err := b.AddHTML(r); err != nil {
		return nil, err
	}
	return b.Tree(), nil
}

// Load reads a file, which must be a regular text file, and returns the tree
// of its distinct words.
func Load(name string, opts Options) (*mwtree.Tree[string], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("wordset: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	tracer().Debugf("wordset: loading %s (%d bytes)", name, fi.Size())
	return FromReader(file, opts)
}
