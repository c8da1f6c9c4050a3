// Package ui is the Bubble Tea rendering layer for a single checklist.
//
// The model never owns checklist data. On each poll tick it takes an
// independent snapshot from the engine and renders it; every keystroke that
// changes data goes through an engine method and the next tick picks up the
// result. Rollbacks therefore need no UI cooperation: the screen simply shows
// whatever the engine holds.
//
// Input modes:
//
//   - list: item navigation plus single-key status changes
//   - cost: textinput editing of the selected item's estimated cost; enter
//     flushes the pending debounced write, esc cancels it
//   - append: a small two-field form for a new item
//   - actual: actual-cost entry gating the finalize transition
//
// Toasts arrive over the notify bus. The model keeps one event visible at a
// time and expires it after a few seconds; a fresh event replaces the old
// one immediately.
package ui
