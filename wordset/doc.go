/*
Package wordset collects the distinct words of a text into an mwtree.Tree.

Text is broken into word candidates at line-break opportunities (UAX#14),
and leading and trailing runes which are neither letters nor digits are
trimmed off each candidate. Input may be plain text, a text file, or an HTML
fragment, for which only the textual content is considered.

Builders broadcast their progress to subscribers, which is useful when
loading large texts:

	b, _ := wordset.NewBuilder(wordset.Options{ProgressEvery: 10000})
	ch, _ := b.Subscribe(ctx, 8)
	go report(ch)
	err := b.AddText(r)
	b.Close()

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package wordset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mwtree'
func tracer() tracing.Trace {
	return tracing.Select("mwtree")
}
