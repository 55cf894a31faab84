package mbtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette holds the colors used by Fprint.
type Palette struct {
	Level *color.Color // level labels
	Inner *color.Color // keys of internal nodes
	Leaf  *color.Color // keys of leaves
}

// DefaultPalette is the palette Fprint uses unless told otherwise.
func DefaultPalette() Palette {
	return Palette{
		Level: color.New(color.Faint),
		Inner: color.New(color.FgBlue, color.Bold),
		Leaf:  color.New(color.FgGreen),
	}
}

// PrintOption configures Fprint.
type PrintOption func(*printer)

// WithPalette sets the colors for Fprint.
func WithPalette(p Palette) PrintOption {
	return func(pr *printer) {
		pr.palette = p
	}
}

// WithColor forces colored output on or off. Without it, Fprint colors its
// output only if w is a terminal.
func WithColor(enabled bool) PrintOption {
	return func(pr *printer) {
		pr.colorize = &enabled
	}
}

type printer struct {
	palette  Palette
	colorize *bool
}

// paint renders s in c, if coloring is switched on.
func (pr *printer) paint(c *color.Color, s string) string {
	if c == nil || pr.colorize == nil || !*pr.colorize {
		return s
	}
	forced := *c // do not alter the client's color
	forced.EnableColor()
	return forced.Sprint(s)
}

// isTerminal checks whether w is a file descriptor connected to a terminal.
func isTerminal(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Fprint writes a level-by-level dump of the tree to w, one line per level,
// each node's keys in brackets:
//
//	L0 [20]
//	L1 [5 6 10] [30]
//
// It is a debugging aid; the format is not stable.
func (t *Tree[K]) Fprint(w io.Writer, opts ...PrintOption) error {
	pr := &printer{palette: DefaultPalette()}
	for _, opt := range opts {
		opt(pr)
	}
	if pr.colorize == nil {
		on := isTerminal(w)
		pr.colorize = &on
	}
	if t.IsEmpty() {
		_, err := io.WriteString(w, pr.paint(pr.palette.Level, "L0")+" []\n")
		return err
	}
	var b strings.Builder
	level := []*node[K]{t.root}
	for depth := 0; len(level) > 0; depth++ {
		b.WriteString(pr.paint(pr.palette.Level, fmt.Sprintf("L%d", depth)))
		var next []*node[K]
		for _, n := range level {
			c := pr.palette.Inner
			if n.leaf {
				c = pr.palette.Leaf
			}
			keys := make([]string, n.count())
			for i, key := range n.keys {
				keys[i] = fmt.Sprint(key)
			}
			b.WriteString(" " + pr.paint(c, "["+strings.Join(keys, " ")+"]"))
			next = append(next, n.children...)
		}
		b.WriteString("\n")
		level = next
	}
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree dump: %v", err)
	}
	return err
}
