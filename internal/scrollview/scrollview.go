// Package scrollview models the horizontally scrollable container the
// carousel draws into. Offsets are pixels, clamped the way a browser clamps
// scrollLeft, and smooth scrolling is animated with a critically damped
// spring one frame at a time. With a snap interval set, native scrolls come
// to rest on an interval boundary the way mandatory scroll snapping does.
package scrollview

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// FrameRate is the animation frame rate.
	FrameRate = 60
	// FrameInterval is the time between animation frames.
	FrameInterval = time.Second / FrameRate

	springFrequency = 8.0
	springDamping   = 1.0
	settleDistance  = 0.5
)

// View is a scroll container. It is not safe for concurrent use.
type View struct {
	contentWidth  float64
	viewportWidth float64

	offset    float64
	velocity  float64
	target    float64
	animating bool

	snap float64

	spring harmonica.Spring
}

// New returns a container at offset zero.
func New(contentWidth, viewportWidth float64) *View {
	return &View{
		contentWidth:  contentWidth,
		viewportWidth: viewportWidth,
		spring:        harmonica.NewSpring(harmonica.FPS(FrameRate), springFrequency, springDamping),
	}
}

// MaxOffset is the largest reachable offset.
func (v *View) MaxOffset() float64 {
	return math.Max(0, v.contentWidth-v.viewportWidth)
}

// Offset returns the current scroll offset.
func (v *View) Offset() float64 {
	return v.offset
}

// Target returns where the running animation is heading.
func (v *View) Target() float64 {
	return v.target
}

// ViewportWidth returns the visible width.
func (v *View) ViewportWidth() float64 {
	return v.viewportWidth
}

// ContentWidth returns the scrollable content width.
func (v *View) ContentWidth() float64 {
	return v.contentWidth
}

// Animating reports whether a smooth scroll is in progress.
func (v *View) Animating() bool {
	return v.animating
}

// ScrollTo starts (or retargets) a smooth scroll. Out-of-range targets are
// clamped.
func (v *View) ScrollTo(target float64) {
	v.target = v.clamp(target)
	if v.target == v.offset {
		v.animating = false
		v.velocity = 0
		return
	}
	v.animating = true
}

// Step advances the animation by one frame and reports whether the offset
// changed. A changed offset is a native scroll event.
func (v *View) Step() (float64, bool) {
	if !v.animating {
		return v.offset, false
	}

	prev := v.offset
	v.offset, v.velocity = v.spring.Update(v.offset, v.velocity, v.target)
	if math.Abs(v.target-v.offset) < settleDistance && math.Abs(v.velocity) < settleDistance {
		v.offset = v.target
		v.velocity = 0
		v.animating = false
	}
	v.offset = v.clamp(v.offset)
	return v.offset, v.offset != prev
}

// ScrollBy moves the offset immediately, cancelling any animation. It
// reports whether the offset changed.
func (v *View) ScrollBy(delta float64) bool {
	return v.Jump(v.offset + delta)
}

// Jump moves to offset immediately, cancelling any animation.
func (v *View) Jump(offset float64) bool {
	next := v.clamp(offset)
	moved := next != v.offset
	v.offset = next
	v.target = next
	v.velocity = 0
	v.animating = false
	return moved
}

// Resize changes the viewport width and re-clamps the offset. It reports
// whether the offset changed.
func (v *View) Resize(viewportWidth float64) bool {
	v.viewportWidth = viewportWidth
	prev := v.offset
	v.offset = v.clamp(v.offset)
	v.target = v.clamp(v.target)
	if v.animating && v.target == v.offset {
		v.animating = false
		v.velocity = 0
	}
	return v.offset != prev
}

// SetSnapInterval makes every multiple of interval a snap point. The max
// offset is always a snap point too, so the end stays reachable. Zero
// disables snapping.
func (v *View) SetSnapInterval(interval float64) {
	if math.IsNaN(interval) || interval < 0 {
		interval = 0
	}
	v.snap = interval
}

// SnapInterval returns the snap interval, zero when snapping is off.
func (v *View) SnapInterval() float64 {
	return v.snap
}

// SnapPoint returns the snap point nearest to offset.
func (v *View) SnapPoint(offset float64) float64 {
	offset = v.clamp(offset)
	if v.snap <= 0 {
		return offset
	}
	maxOffset := v.MaxOffset()
	point := math.Min(math.Round(offset/v.snap)*v.snap, maxOffset)
	if maxOffset-offset < math.Abs(point-offset) {
		point = maxOffset
	}
	return point
}

// SnapStep returns the snap point n intervals away from where the view is
// heading. Without a snap interval it returns the current target.
func (v *View) SnapStep(n int) float64 {
	from := v.SnapPoint(v.target)
	if v.snap <= 0 {
		return from
	}
	return v.SnapPoint(from + float64(n)*v.snap)
}

// Snap starts a smooth scroll to the snap point nearest the current offset,
// ending a native scroll. It does nothing while an animation runs and
// reports whether a scroll started.
func (v *View) Snap() bool {
	if v.snap <= 0 || v.animating {
		return false
	}
	point := v.SnapPoint(v.offset)
	if point == v.offset {
		return false
	}
	v.ScrollTo(point)
	return v.animating
}

func (v *View) clamp(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	return math.Min(x, v.MaxOffset())
}
