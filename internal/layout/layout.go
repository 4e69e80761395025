// Package layout derives bar geometry for a sequence on a fixed-size canvas.
package layout

import (
	"fmt"
	"math"

	"github.com/san-kum/sortwiz/internal/stepper"
)

const (
	SidePad = 100
	TopPad  = 150
)

// Bar is the pixel rectangle of one value. Y grows downwards from the top of
// the canvas and every bar rests on the bottom edge.
type Bar struct {
	Index int
	Value int64
	X, Y  int
	W, H  int
}

// Layout holds the geometry derived from the canvas size and the value range
// of the current sequence. It only changes when the sequence is replaced;
// in-place reordering keeps min and max.
type Layout struct {
	Width, Height int
	BlockWidth    int
	BlockHeight   int
	StartX        int
	Min, Max      int64
	Count         int
}

func New(width, height int, s stepper.Sequence) (*Layout, error) {
	l := &Layout{Width: width, Height: height, StartX: SidePad / 2}
	if err := l.Set(s); err != nil {
		return nil, err
	}
	return l, nil
}

// Set recomputes block sizes for a new sequence.
func (l *Layout) Set(s stepper.Sequence) error {
	if l.Width <= SidePad || l.Height <= TopPad {
		return fmt.Errorf("%w: canvas %dx%d must exceed padding %dx%d",
			stepper.ErrInvalidConfiguration, l.Width, l.Height, SidePad, TopPad)
	}
	if len(s) == 0 {
		return fmt.Errorf("%w: empty sequence has no bar width", stepper.ErrInvalidConfiguration)
	}

	l.Count = len(s)
	l.Min, l.Max = s.Bounds()

	l.BlockWidth = int(math.Round(float64(l.Width-SidePad) / float64(l.Count)))
	if l.BlockWidth < 1 {
		l.BlockWidth = 1
	}

	// The span is unsigned: max-min wraps in int64 once the range is wider
	// than MaxInt64.
	usable := uint64(l.Usable())
	switch span := l.span(); {
	case span == 0:
		l.BlockHeight = int(usable)
	default:
		l.BlockHeight = int(usable / span)
	}
	return nil
}

func (l *Layout) span() uint64 { return uint64(l.Max - l.Min) }

func (l *Layout) Bar(i int, v int64) Bar {
	x := l.StartX + i*l.BlockWidth
	h := 0
	if l.BlockHeight > 0 {
		// offset <= span <= usable/BlockHeight, so the product fits an int
		h = int(uint64(v-l.Min)) * l.BlockHeight
	}
	return Bar{Index: i, Value: v, X: x, Y: l.Height - h, W: l.BlockWidth, H: h}
}

func (l *Layout) Bars(s stepper.Sequence) []Bar {
	bars := make([]Bar, len(s))
	for i, v := range s {
		bars[i] = l.Bar(i, v)
	}
	return bars
}

// Usable is the drawable height below the top padding.
func (l *Layout) Usable() int { return l.Height - TopPad }
