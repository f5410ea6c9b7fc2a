package ui

import (
	"testing"

	"github.com/five82/carousel/internal/carousel"
)

func TestNewStripLayout(t *testing.T) {
	geo := carousel.ExampleConfig().Geometry()
	l := newStripLayout(geo, 8, cells{width: 10, height: 40})

	if l.starts[0] != 0 || l.widths[0] != 23 {
		t.Fatalf("card 0 = [%d,+%d), want [0,+23)", l.starts[0], l.widths[0])
	}
	if l.starts[1] != 24 {
		t.Fatalf("card 1 start = %d, want 24", l.starts[1])
	}
	if l.total != 190 {
		t.Fatalf("total = %d, want 190", l.total)
	}
	if l.rows != 7 {
		t.Fatalf("rows = %d, want 7", l.rows)
	}
	if l.ctrl != 4 {
		t.Fatalf("ctrl = %d, want 4", l.ctrl)
	}
	for i := 1; i < 8; i++ {
		if l.starts[i] < l.starts[i-1]+l.widths[i-1] {
			t.Fatalf("card %d overlaps card %d", i, i-1)
		}
	}
}

func TestNewStripLayoutMinimums(t *testing.T) {
	cfg := carousel.Config{ItemWidth: 8, ItemHeight: 8, ItemLength: 3, Gap: 0, ViewingCount: 1}
	l := newStripLayout(cfg.Geometry(), 3, cells{width: 10, height: 40})

	if l.rows != MinCardRows {
		t.Fatalf("rows = %d, want %d", l.rows, MinCardRows)
	}
	for i, w := range l.widths {
		if w != MinCardCols {
			t.Fatalf("width[%d] = %d, want %d", i, w, MinCardCols)
		}
	}
	if l.starts[1] != MinCardCols {
		t.Fatalf("card 1 start = %d, want %d", l.starts[1], MinCardCols)
	}
}

func TestVisibleRange(t *testing.T) {
	geo := carousel.ExampleConfig().Geometry()

	tests := []struct {
		name        string
		offset      float64
		width       float64
		first, last int
	}{
		{"start", 0, 575, 1, 3},
		{"one step", 238, 575, 2, 4},
		{"inside gap", 235, 575, 2, 4},
		{"end", 1321, 575, 6, 8},
		{"narrow", 0, 100, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := visibleRange(geo, 8, tt.offset, tt.width)
			if first != tt.first || last != tt.last {
				t.Fatalf("visibleRange = %d–%d, want %d–%d", first, last, tt.first, tt.last)
			}
		})
	}

	if first, last := visibleRange(geo, 0, 0, 575); first != 0 || last != 0 {
		t.Fatalf("empty visibleRange = %d–%d, want 0–0", first, last)
	}
}

func TestCellsConversion(t *testing.T) {
	c := cells{width: 10, height: 40}
	if got := c.cols(575); got != 58 {
		t.Fatalf("cols(575) = %d, want 58", got)
	}
	if got := c.rows(295); got != 7 {
		t.Fatalf("rows(295) = %d, want 7", got)
	}
	if got := c.px(114); got != 1140 {
		t.Fatalf("px(114) = %v, want 1140", got)
	}
}
