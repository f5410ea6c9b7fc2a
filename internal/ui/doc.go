// # Overview
//
// The UI is a Bubble Tea program that hosts one carousel. The terminal plays
// the part of the scroll container: a scrollview.View holds the pixel offset,
// and each frame the visible columns of the rendered card strip are cut out
// with ansi.Cut and framed by the two navigation controls.
//
// # Screen Layout
//
//   - Header: logo, visible item range, boundary, offset and item source
//   - Strip: ‹ control, viewport, › control
//   - Live region: the engine's status message
//   - Footer: short key help
//
// # Event Flow
//
//  1. Run wires the loop scheduler to (*tea.Program).Send
//  2. A tick pulls the latest state.Snapshot; a change in item count
//     remounts the engine and view
//  3. Keys and control clicks call NavigatePrevious or NavigateNext, which
//     ask the view for a smooth scroll
//  4. frameMsg steps the spring animation; every moved frame is passed to
//     Engine.OnScroll
//  5. Wheel notches scroll at once; 150ms after the last one a snapMsg
//     snaps the view to the nearest item start
//  6. Engine debounce timers fire as timerFiredMsg and run inside Update, so
//     the model never races the engine callbacks
//
// # Key Bindings
//
//   - ←/[ and →/]: previous and next
//   - h/l: scroll to the previous or next item start without the controls
//   - g/G: scroll to start or end
//   - T: cycle theme (saved to prefs)
//   - ?: help
//   - q: quit
package ui
