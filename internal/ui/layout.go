package ui

import (
	"math"
	"time"

	"github.com/five82/carousel/internal/carousel"
)

// Layout constants.
const (
	// ControlWidth is the width in columns of each navigation control.
	ControlWidth = 3

	// MinCardRows keeps a card tall enough for its border and title.
	MinCardRows = 4

	// MinCardCols keeps a card wide enough for its border and one glyph.
	MinCardCols = 5
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI picks up catalog reloads.
	DefaultUIInterval = time.Second
)

// cells converts between pixels and terminal cells.
type cells struct {
	width  float64 // px per column
	height float64 // px per row
}

func (c cells) cols(px float64) int {
	return int(math.Round(px / c.width))
}

func (c cells) rows(px float64) int {
	return int(math.Round(px / c.height))
}

func (c cells) px(cols int) float64 {
	return float64(cols) * c.width
}

// stripLayout places every card on a column grid. Columns are content
// coordinates: column 0 is the left edge of the first card.
type stripLayout struct {
	starts []int // first column of each card
	widths []int // column width of each card
	total  int   // total columns of content
	rows   int   // card height in rows
	ctrl   int   // row of the navigation controls
}

func newStripLayout(geo carousel.Geometry, n int, c cells) stripLayout {
	l := stripLayout{
		starts: make([]int, n),
		widths: make([]int, n),
		rows:   max(MinCardRows, c.rows(geo.ItemHeight)),
	}
	for i := 0; i < n; i++ {
		start := c.cols(geo.ItemStart(i))
		end := c.cols(geo.ItemStart(i) + geo.ItemWidth)
		if i > 0 {
			prevEnd := l.starts[i-1] + l.widths[i-1]
			start = max(start, prevEnd)
		}
		l.starts[i] = start
		l.widths[i] = max(MinCardCols, end-start)
	}
	if n > 0 {
		l.total = l.starts[n-1] + l.widths[n-1]
	}
	l.ctrl = min(l.rows-1, max(0, c.rows(geo.ControlOffset())))
	return l
}

// visibleRange returns the 1-based first and last item that intersect the
// viewport [offset, offset+width).
func visibleRange(geo carousel.Geometry, n int, offset, width float64) (int, int) {
	if n == 0 || geo.PositionUnit <= 0 {
		return 0, 0
	}
	first := int(math.Floor(offset / geo.PositionUnit))
	// The gap after a card is not part of it.
	if offset-geo.ItemStart(first) >= geo.ItemWidth {
		first++
	}
	last := int(math.Floor((offset + width - 1) / geo.PositionUnit))
	first = clampInt(first, 0, n-1)
	last = clampInt(last, first, n-1)
	return first + 1, last + 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
