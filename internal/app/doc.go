// Package app provides the orchestration layer for the carousel.
//
// # Overview
//
// This package wires together configuration, logging, the item catalog,
// state management and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()   Layered TOML config
//	       ├─────> logging.Open()  slog file logger
//	       ├─────> prefs.Load()    Saved theme
//	       ├─────> refresh()       First catalog load
//	       ├─────> StartPoller()   Reload the items file
//	       └─────> ui.Run()        Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> catalog.Load()                     │
//	│  └─> store.Update()                     │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The poller re-reads the items file every interval (default 2 seconds).
// Each consecutive failure doubles the wait, capped at 30 seconds, and the
// last good items stay on screen. No poller runs for placeholder items.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid geometry
//   - Log file cannot be opened
//
// Recoverable errors (logged, polling continues):
//   - Items file unreadable or malformed
package app
