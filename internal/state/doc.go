// Package state shares the item catalog between the reload poller and the UI.
//
// # Overview
//
//	Producer (poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ catalog.Load() │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │ remount/render  │
//	└────────────────┘            └─────────────────┘
//
// Store guards a single Snapshot with a sync.RWMutex. Snapshot copies the
// item slice and wraps the last error, so callers never share memory with
// the store.
//
// # Revisions
//
// Revision increases only when the item list actually changes. The UI
// compares revisions to decide whether to rebuild the carousel, so an
// unchanged file reloaded every few seconds costs nothing.
//
// # Failures
//
// A failed reload keeps the previous items, records the error and bumps
// ConsecutiveFailures. IsStale reports two or more failures in a row; the
// header uses it to warn that the list on screen may be out of date.
package state
