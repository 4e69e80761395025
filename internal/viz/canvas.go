package viz

import (
	"strings"

	"github.com/san-kum/sortwiz/internal/layout"
)

// Eighth blocks from one eighth to full height.
var eighths = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

type Cell struct {
	Rune rune
	Tint layout.Tint
	Set  bool
}

// Canvas is a grid of terminal cells. Bars grow upwards from the bottom row
// in steps of one eighth of a cell.
type Canvas struct {
	Width, Height int
	Grid          [][]Cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]Cell, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]Cell, w)
	}
	return c
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		clear(c.Grid[i])
	}
}

// Column fills column col with a bar of the given height in eighths of a
// cell, replacing whatever the column held before.
func (c *Canvas) Column(col, height int, tint layout.Tint) {
	if col < 0 || col >= c.Width {
		return
	}
	height = min(max(height, 0), c.Height*8)

	full, part := height/8, height%8
	for row := 0; row < c.Height; row++ {
		fromBottom := c.Height - 1 - row
		cell := Cell{}
		switch {
		case fromBottom < full:
			cell = Cell{Rune: '█', Tint: tint, Set: true}
		case fromBottom == full && part > 0:
			cell = Cell{Rune: eighths[part-1], Tint: tint, Set: true}
		}
		c.Grid[row][col] = cell
	}
}

// Draw projects bars laid out on a pixel canvas onto the cell grid. Accented
// bars are drawn last so they stay visible when several bars share a column.
func (c *Canvas) Draw(l layout.Layout, bars []layout.Bar, tintOf func(i int) layout.Tint) {
	c.Clear()
	span := l.Width - layout.SidePad
	usable := l.Usable()
	if span <= 0 || usable <= 0 {
		return
	}

	var accents []layout.Bar
	for _, b := range bars {
		if tintOf(b.Index) >= layout.Accent1 {
			accents = append(accents, b)
			continue
		}
		c.drawBar(l, b, span, usable, tintOf(b.Index))
	}
	for _, b := range accents {
		c.drawBar(l, b, span, usable, tintOf(b.Index))
	}
}

func (c *Canvas) drawBar(l layout.Layout, b layout.Bar, span, usable int, tint layout.Tint) {
	from := (b.X - l.StartX) * c.Width / span
	to := (b.X + b.W - l.StartX) * c.Width / span
	if to <= from {
		to = from + 1
	}
	height := b.H * c.Height * 8 / usable
	for col := from; col < to; col++ {
		c.Column(col, height, tint)
	}
}

// Render styles runs of equally tinted cells with the theme's bar colors.
func (c *Canvas) Render(theme Theme) string {
	var b strings.Builder
	for _, row := range c.Grid {
		var run strings.Builder
		runTint, runSet := layout.Tint(-1), false

		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runSet {
				b.WriteString(theme.BarStyle(runTint).Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}

		for _, cell := range row {
			if cell.Set != runSet || (cell.Set && cell.Tint != runTint) {
				flush()
				runTint, runSet = cell.Tint, cell.Set
			}
			if cell.Set {
				run.WriteRune(cell.Rune)
			} else {
				run.WriteByte(' ')
			}
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid without colors.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell.Set {
				b.WriteRune(cell.Rune)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
