package carousel

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/carousel/internal/logging"
)

const (
	// DefaultScrollDebounce coalesces bursts of native scroll events.
	DefaultScrollDebounce = 100 * time.Millisecond
	// DefaultMessageTTL is how long a status message stays announced.
	DefaultMessageTTL = 3000 * time.Millisecond

	// positionEpsilon absorbs float drift from repeated unit steps with
	// fractional geometry. Offsets closer than this to an edge are on it.
	positionEpsilon = 1e-6
)

// Scroller is the host scroll target. ScrollTo requests a smooth scroll and
// returns without waiting for the animation.
type Scroller interface {
	ScrollTo(offset float64)
}

// Option customises an Engine.
type Option func(*Engine)

// WithScheduler sets the scheduler used for both debouncers.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithNotices replaces the announcement texts.
func WithNotices(n Notices) Option {
	return func(e *Engine) { e.notices = n }
}

// WithScrollDebounce overrides DefaultScrollDebounce.
func WithScrollDebounce(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.scrollDelay = d
		}
	}
}

// WithMessageTTL overrides DefaultMessageTTL.
func WithMessageTTL(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.messageTTL = d
		}
	}
}

// Engine tracks where the viewport sits within the item list.
//
// position is the authoritative offset between scroll events: navigation
// updates it optimistically and it is only overwritten by the debounced
// scroll reconciliation. boundary and message have the same writers.
type Engine struct {
	mu sync.Mutex

	id       string
	geo      Geometry
	scroller Scroller
	notices  Notices
	log      logging.Logger

	scheduler   Scheduler
	scrollDelay time.Duration
	messageTTL  time.Duration

	position float64
	boundary Boundary
	message  string

	scrollDebounce debouncer
	messageClear   debouncer

	closed bool
}

// New validates cfg and returns an engine resting at the start.
func New(cfg Config, scroller Scroller, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if scroller == nil {
		return nil, ErrDetached
	}

	e := &Engine{
		id:          uuid.NewString(),
		geo:         cfg.Geometry(),
		scroller:    scroller,
		notices:     NoticesFor("en"),
		log:         logging.Discard(),
		scheduler:   RealScheduler,
		scrollDelay: DefaultScrollDebounce,
		messageTTL:  DefaultMessageTTL,
		boundary:    Start,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.scrollDebounce = debouncer{scheduler: e.scheduler, delay: e.scrollDelay}
	e.messageClear = debouncer{scheduler: e.scheduler, delay: e.messageTTL}

	e.log.Debug("carousel mounted",
		"engine", e.id,
		"items", cfg.ItemLength,
		"viewing", cfg.ViewingCount,
		"max_scroll", e.geo.MaxScrollPosition,
		"fits", e.geo.Fits,
	)
	return e, nil
}

// NavigatePrevious steps the viewport one item back, or back out of the end
// resting position.
func (e *Engine) NavigatePrevious() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrDetached
	}
	if e.geo.Fits {
		e.announce(e.notices.AlreadyAtStart)
		return nil
	}

	switch {
	case e.boundary == Start:
		e.announce(e.notices.AlreadyAtStart)
	case e.boundary == End:
		// The end resting position carries the overscan, so leaving it
		// takes a full page.
		e.stepBack(e.geo.PositionUnit * float64(e.geo.ViewingCount))
		e.setBoundary(Neither)
	case e.position <= positionEpsilon:
		e.position = 0
		e.setBoundary(Start)
	default:
		e.stepBack(e.geo.PositionUnit)
	}
	return nil
}

// stepBack moves the estimate back by d, never past the start.
func (e *Engine) stepBack(d float64) {
	e.position -= d
	if e.position <= positionEpsilon {
		e.position = 0
	}
	e.scroller.ScrollTo(e.position)
}

// NavigateNext steps the viewport one item forward, jumping to the end
// resting position once the last page is reached.
func (e *Engine) NavigateNext() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrDetached
	}
	if e.geo.Fits {
		e.announce(e.notices.AlreadyAtEnd)
		return nil
	}

	if e.boundary == End {
		e.announce(e.notices.AlreadyAtEnd)
		return nil
	}
	if e.boundary == Start {
		e.setBoundary(Neither)
	}

	if e.position >= e.geo.MaxScrollPosition-positionEpsilon {
		e.position += e.geo.PositionUnit * 2
		e.scroller.ScrollTo(e.position)
		e.setBoundary(End)
		return nil
	}

	e.position += e.geo.PositionUnit
	e.scroller.ScrollTo(e.position)
	return nil
}

// OnScroll records a native scroll event. Only the last offset of a burst
// is reconciled, DefaultScrollDebounce after the burst ends.
func (e *Engine) OnScroll(offset float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.scrollDebounce.schedule(func(gen uint64) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed || !e.scrollDebounce.fired(gen) {
			return
		}
		e.reconcile(offset)
	})
}

func (e *Engine) reconcile(offset float64) {
	e.position = offset

	switch {
	case e.geo.Fits:
		e.setBoundary(Start)
		e.clearMessage()
	case offset <= 0:
		e.setBoundary(Start)
		e.announce(e.notices.ReachedStart)
	case offset >= e.geo.EndThreshold:
		e.setBoundary(End)
		e.announce(e.notices.ReachedEnd)
	default:
		e.setBoundary(Neither)
		e.clearMessage()
	}
}

func (e *Engine) setBoundary(b Boundary) {
	if b == e.boundary {
		return
	}
	e.log.Debug("carousel boundary", "engine", e.id, "from", e.boundary, "to", b, "position", e.position)
	e.boundary = b
}

// announce sets a message and (re)arms its clear timer, even when the text
// is unchanged.
func (e *Engine) announce(msg string) {
	e.message = msg
	if msg == "" {
		e.messageClear.stop()
		return
	}
	e.messageClear.schedule(func(gen uint64) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed || !e.messageClear.fired(gen) {
			return
		}
		e.message = ""
	})
}

func (e *Engine) clearMessage() {
	e.announce("")
}

// Close cancels pending timers and releases the scroll target. It is safe
// to call more than once.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	e.scrollDebounce.stop()
	e.messageClear.stop()
	e.scroller = nil
	e.log.Debug("carousel disposed", "engine", e.id, "position", e.position)
	return nil
}

// StatusMessage is the current announcement; empty means nothing to say.
func (e *Engine) StatusMessage() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.message
}

// Boundary returns the current boundary classification.
func (e *Engine) Boundary() Boundary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.boundary
}

// IsAtStart reports whether the previous control should render disabled.
func (e *Engine) IsAtStart() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.geo.Fits || e.boundary == Start
}

// IsAtEnd reports whether the next control should render disabled.
func (e *Engine) IsAtEnd() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.geo.Fits || e.boundary == End
}

// Position returns the engine's current offset estimate.
func (e *Engine) Position() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.position
}

// Geometry returns the derived layout constants.
func (e *Engine) Geometry() Geometry {
	return e.geo
}

// ViewportWidth is Geometry().ViewportWidth.
func (e *Engine) ViewportWidth(hostWidth float64) float64 {
	return e.geo.ViewportWidth(hostWidth)
}

// ControlOffset is Geometry().ControlOffset.
func (e *Engine) ControlOffset() float64 {
	return e.geo.ControlOffset()
}

// ID identifies the engine instance in logs.
func (e *Engine) ID() string {
	return e.id
}

// Closed reports whether Close has been called.
func (e *Engine) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}
