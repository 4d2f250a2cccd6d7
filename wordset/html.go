package wordset

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// AddHTML adds the words of the textual content of an HTML fragment. Content
// of script and style elements is skipped.
func (b *Builder) AddHTML(input io.Reader) error {
	if b.closed {
		return ErrBuilderClosed
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return err
	}
	var sb strings.Builder
	for _, n := range nodes {
		collectText(n, &sb)
	}
	return b.AddText(strings.NewReader(sb.String()))
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ') // element boundaries separate words
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
