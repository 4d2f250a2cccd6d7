package wordset

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/mwtree"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// DefaultProgressEvery is the number of words between two progress messages
// if Options leave it unset.
const DefaultProgressEvery = 1000

// ErrBuilderClosed is flagged when adding text to a closed builder.
var ErrBuilderClosed = errors.New("wordset: builder closed")

// Options configure a Builder.
type Options struct {
	MaxElements   int  // node width of the tree; 0 selects mwtree.DefaultMaxElements
	Fold          bool // convert words to lower case
	MinLength     int  // minimum word length in runes
	ProgressEvery int  // words between progress messages
}

// Progress is broadcast to subscribers of a Builder.
type Progress struct {
	Words    int  // words read so far
	Distinct int  // distinct words so far
	Done     bool // builder has been closed
}

// Builder accumulates distinct words into a tree.
type Builder struct {
	opts   Options
	tree   *mwtree.Tree[string]
	cast   *caster.Caster // broadcaster for progress messages
	words  int
	closed bool
}

// NewBuilder creates a builder with an empty tree.
func NewBuilder(opts Options) (*Builder, error) {
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = DefaultProgressEvery
	}
	tree, err := mwtree.NewOrdered[string](opts.MaxElements)
	if err != nil {
		return nil, err
	}
	return &Builder{
		opts: opts,
		tree: tree,
		cast: caster.New(context.Background()),
	}, nil
}

// Subscribe returns a channel receiving Progress messages. The channel is
// closed when the builder is closed.
func (b *Builder) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return b.cast.Sub(ctx, capacity)
}

// Tree returns the tree of words collected so far.
func (b *Builder) Tree() *mwtree.Tree[string] {
	return b.tree
}

// Words returns the number of words read so far, including repetitions.
func (b *Builder) Words() int {
	return b.words
}

// AddWord normalizes w and adds it to the tree. It reports whether w was
// a new word.
func (b *Builder) AddWord(w string) bool {
	if b.closed {
		return false
	}
	w = strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if w == "" || utf8.RuneCountInString(w) < b.opts.MinLength {
		return false
	}
	if b.opts.Fold {
		w = strings.ToLower(w)
	}
	b.words++
	_, inserted := b.tree.Insert(w)
	if b.words%b.opts.ProgressEvery == 0 {
		b.publish(false)
	}
	return inserted
}

// AddText breaks the text read from r into words and adds them.
func (b *Builder) AddText(r io.Reader) error {
	if b.closed {
		return ErrBuilderClosed
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	for segmenter.Next() {
		b.AddWord(string(segmenter.Bytes()))
	}
	tracer().Debugf("wordset: %d words, %d distinct", b.words, b.tree.Len())
	return nil
}

// Close publishes a final progress message and closes all subscriptions.
// Further input is rejected.
func (b *Builder) Close() {
	if b.closed {
		return
	}
	b.publish(true)
	b.closed = true
	b.cast.Close()
}

func (b *Builder) publish(done bool) {
	b.cast.Pub(Progress{
		Words:    b.words,
		Distinct: b.tree.Len(),
		Done:     done,
	})
}
