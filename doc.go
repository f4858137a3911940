// Package lineedit reads a single line of input from a terminal.
//
// It owns cursor movement, in-place editing, inline tail completion,
// drop-down suggestion cycling, and incremental terminal rendering.
// Callers supply a Terminal and EventSource (or use the bundled
// internal/termio adapter through cmd/demo) and get back a completed
// or cancelled line.
package lineedit
