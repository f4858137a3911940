package lineedit

import "io"

// Terminal is the write side of the external interface a Session
// renders through: raw-mode enable/disable, a byte sink, and a size
// query. The concrete adapter (internal/termio) backs this with a
// real tty; tests back it with an in-memory buffer.
type Terminal interface {
	io.Writer
	EnableRawMode() error
	DisableRawMode() error
	Size() (cols, rows int, err error)
}

// EventSource is the read side: a single blocking call that returns
// the next decoded input Event. A Session's read loop has exactly one
// suspension point, which is this call (§5).
type EventSource interface {
	ReadEvent() (Event, error)
}
