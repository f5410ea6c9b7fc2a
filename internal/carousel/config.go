package carousel

import (
	"math"
)

// Config describes one carousel instance. It is read once by New and never
// mutated afterwards.
type Config struct {
	ItemWidth    float64 // px
	ItemHeight   float64 // px
	ItemLength   int
	Gap          float64 // px between adjacent items
	ViewingCount int     // fully visible items
}

// ExampleConfig is the layout the carousel shipped with before it became
// configurable: eight 230x295 cards, 8px apart, two in view.
func ExampleConfig() Config {
	return Config{
		ItemWidth:    230,
		ItemHeight:   295,
		ItemLength:   8,
		Gap:          8,
		ViewingCount: 2,
	}
}

// Validate reports the first out-of-range field as a *ConfigurationError.
func (c Config) Validate() error {
	switch {
	case !positive(c.ItemWidth):
		return &ConfigurationError{Field: "item_width", Value: c.ItemWidth}
	case !positive(c.ItemHeight):
		return &ConfigurationError{Field: "item_height", Value: c.ItemHeight}
	case c.ItemLength <= 0:
		return &ConfigurationError{Field: "item_length", Value: float64(c.ItemLength)}
	case math.IsNaN(c.Gap) || math.IsInf(c.Gap, 0) || c.Gap < 0:
		return &ConfigurationError{Field: "gap", Value: c.Gap}
	case c.ViewingCount <= 0:
		return &ConfigurationError{Field: "viewing_count", Value: float64(c.ViewingCount)}
	}
	return nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Geometry holds the constants derived from a Config.
type Geometry struct {
	ItemWidth    float64
	ItemHeight   float64
	ViewingCount int

	// PositionUnit is the distance of a single-item step.
	PositionUnit float64
	// TotalScrollExtent is the full content width.
	TotalScrollExtent float64
	ViewportOverscan  float64
	// MaxScrollPosition is the largest offset before the end region. Clamped
	// to zero when the content fits the viewport.
	MaxScrollPosition float64
	// EndThreshold is where scroll reconciliation recognises the end resting
	// position, which peeks half an item past the last page.
	EndThreshold float64
	// Fits is set when every item is visible without scrolling.
	Fits bool
}

// Geometry derives the layout constants. The config is assumed valid.
func (c Config) Geometry() Geometry {
	n := float64(c.ItemLength)
	v := float64(c.ViewingCount)

	g := Geometry{
		ItemWidth:         c.ItemWidth,
		ItemHeight:        c.ItemHeight,
		ViewingCount:      c.ViewingCount,
		PositionUnit:      c.ItemWidth + c.Gap,
		TotalScrollExtent: c.ItemWidth*n + c.Gap*(n-1),
		ViewportOverscan:  c.ItemWidth*(v+1) + c.Gap*v,
		Fits:              c.ItemLength <= c.ViewingCount,
	}
	g.MaxScrollPosition = g.TotalScrollExtent - g.ViewportOverscan
	if g.Fits || g.MaxScrollPosition < 0 {
		g.MaxScrollPosition = 0
	}
	g.EndThreshold = g.MaxScrollPosition + c.ItemWidth/2
	return g
}

// ViewportWidth is the visible width: the viewing count plus a half-item
// peek, clamped to hostWidth. A non-positive hostWidth means unbounded.
func (g Geometry) ViewportWidth(hostWidth float64) float64 {
	w := g.ItemWidth*float64(g.ViewingCount) + g.ItemWidth/2
	if hostWidth > 0 && hostWidth < w {
		return hostWidth
	}
	return w
}

// ControlOffset is the vertical offset of the navigation controls.
func (g Geometry) ControlOffset() float64 {
	return g.ItemHeight / 2
}

// ItemStart returns the left edge of item i in content coordinates.
func (g Geometry) ItemStart(i int) float64 {
	return float64(i) * g.PositionUnit
}
