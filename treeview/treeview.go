package treeview

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/mwtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultLineWidth is used if neither the configuration nor the terminal
// provide a line width.
const DefaultLineWidth = 80

// Config controls rendering.
type Config struct {
	LineWidth int            // in fixed-width display cells
	Context   *uax11.Context // context for display width of East Asian text
	Colors    []*color.Color // colour per depth, cycled; nil selects a default palette
	Plain     bool           // suppress colours
}

var setupGraphemes sync.Once

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Output to non-terminals
// is plain.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: DefaultLineWidth}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			tracer().Infof("cannot read terminal size: %v", err)
		} else if w > 0 {
			config.LineWidth = w
		}
	} else {
		config.Plain = true
	}
	config.Context = uax11.ContextFromEnvironment()
	return config
}

func (cfg *Config) normalized() *Config {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if len(c.Colors) == 0 {
		c.Colors = defaultPalette()
	}
	return &c
}

func defaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue, color.Bold),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgMagenta),
	}
}

// Print renders tree to stdout. If config is nil, a heuristic will create a
// config from the current terminal's properties.
func Print[T any](tree *mwtree.Tree[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Fprint(os.Stdout, tree, config)
}

// Fprint renders tree to w, one depth per line. A nil config selects
// defaults with colours enabled.
func Fprint[T any](w io.Writer, tree *mwtree.Tree[T], config *Config) error {
	cfg := config.normalized()
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	r := renderer{w: w, cfg: cfg, depth: -1}
	for depth, values := range tree.BreadthFirst() {
		if depth != r.depth {
			r.startLine(depth)
		}
		r.box(formatNode(values))
		if r.err != nil {
			tracer().Errorf("tree view: %v", r.err)
			return r.err
		}
	}
	if r.depth >= 0 {
		r.write("\n", nil)
	}
	return r.err
}

func formatNode[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// renderer keeps track of the current line while emitting node boxes.
type renderer struct {
	w      io.Writer
	cfg    *Config
	depth  int
	indent int // width of the line prefix
	used   int // display cells used on the current line
	err    error
}

// width returns the number of display cells s occupies. Printable ASCII takes
// one cell per byte; uax11 is consulted for everything else.
func (r *renderer) width(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x7f {
			return uax11.StringWidth(grapheme.StringFromString(s), r.cfg.Context)
		}
	}
	return len(s)
}

func (r *renderer) startLine(depth int) {
	if r.depth >= 0 {
		r.write("\n", nil)
	}
	r.depth = depth
	prefix := fmt.Sprintf("%2d:", depth)
	r.indent = len(prefix) // ASCII only
	r.used = r.indent
	r.write(prefix, nil)
}

// box emits a node box, wrapping to a new continuation line if the box does
// not fit. A box wider than a whole line is emitted anyway.
func (r *renderer) box(s string) {
	bw := r.width(s)
	if r.used > r.indent && r.used+1+bw > r.cfg.LineWidth {
		r.write("\n"+strings.Repeat(" ", r.indent), nil)
		r.used = r.indent
	}
	r.write(" ", nil)
	r.write(s, r.cfg.Colors[r.depth%len(r.cfg.Colors)])
	r.used += 1 + bw
}

func (r *renderer) write(s string, c *color.Color) {
	if r.err != nil {
		return
	}
	if c != nil && !r.cfg.Plain {
		_, r.err = c.Fprint(r.w, s)
		return
	}
	_, r.err = io.WriteString(r.w, s)
}
