// Package carousel implements the position engine behind the carousel view.
//
// # Overview
//
// An Engine owns three pieces of state for one mounted carousel: the scroll
// offset estimate, the boundary classification (Start, End or Neither) and a
// transient status message meant for assistive technology. The view calls
// NavigatePrevious and NavigateNext for button presses, forwards every native
// scroll event to OnScroll, and reads IsAtStart, IsAtEnd and StatusMessage
// back when it renders.
//
// # Geometry
//
// All distances are pixels and derive from Config once:
//
//	PositionUnit      = ItemWidth + Gap
//	TotalScrollExtent = ItemWidth*ItemLength + Gap*(ItemLength-1)
//	ViewportOverscan  = ItemWidth*(ViewingCount+1) + Gap*ViewingCount
//	MaxScrollPosition = TotalScrollExtent - ViewportOverscan
//	EndThreshold      = MaxScrollPosition + ItemWidth/2
//
// The viewport shows ViewingCount items plus half of the next one. Button
// navigation compares against MaxScrollPosition and overshoots by two units
// to reach the end resting position; scroll reconciliation recognises that
// resting position through EndThreshold.
//
// # Two sources of truth
//
// Navigation updates the offset optimistically and asks the Scroller for a
// smooth scroll without waiting for it. Until the next debounced scroll
// event fires, the estimate is authoritative. When OnScroll's debounce
// fires, the observed offset overwrites the estimate and the boundary is
// recomputed from it.
//
// # Timers
//
// Two independent debouncers hang off each engine: scroll reconciliation
// (100ms trailing) and message clearing (3000ms after the latest
// announcement). Each holds at most one pending task and cancels it before
// scheduling another. Both run on a Scheduler so that hosts with an event
// loop can deliver callbacks on that loop; RealScheduler uses
// time.AfterFunc. Close cancels both and detaches the Scroller.
//
// # Short content
//
// When ItemLength <= ViewingCount nothing ever scrolls. Such an engine
// reports both IsAtStart and IsAtEnd and answers navigation with the
// "already at" notices.
//
// # Errors
//
// New returns a *ConfigurationError (matching ErrConfiguration) for
// non-positive sizes or counts and for a negative gap. Commands after Close
// return ErrDetached. Redundant navigation is never an error; it produces a
// notice instead.
package carousel
