// Package termio adapts a real tty to lineedit's Terminal and
// EventSource interfaces: raw-mode control via golang.org/x/term and a
// byte-level ANSI decoder for the blocking read loop.
package termio

import (
	"os"

	"golang.org/x/term"
)

// Terminal is the concrete lineedit.Terminal backed by an *os.File.
type Terminal struct {
	f     *os.File
	state *term.State
}

// New wraps f (typically os.Stdout) as a lineedit.Terminal.
func New(f *os.File) *Terminal {
	return &Terminal{f: f}
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.f.Write(p)
}

// EnableRawMode puts the terminal backing f into raw mode, recording
// the prior state so DisableRawMode can restore it.
func (t *Terminal) EnableRawMode() error {
	fd := int(t.f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	t.state = state
	return nil
}

// DisableRawMode restores whatever mode the terminal was in before
// EnableRawMode; a no-op if raw mode was never entered.
func (t *Terminal) DisableRawMode() error {
	if t.state == nil {
		return nil
	}
	fd := int(t.f.Fd())
	err := term.Restore(fd, t.state)
	t.state = nil
	return err
}

// Size reports the terminal's column and row count.
func (t *Terminal) Size() (cols, rows int, err error) {
	return term.GetSize(int(t.f.Fd()))
}
