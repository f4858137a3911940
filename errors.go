package lineedit

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned when a Buffer cursor index is not a valid
// byte offset into the underlying text, or does not land on a UTF-8
// scalar boundary.
var ErrInvalidIndex = errors.New("lineedit: invalid buffer index")

// ErrCancelled is returned by a Session's ReadLine when a Cancel action
// reached the top level (no suggestion overlay active to absorb it).
// The buffer's text at the moment of cancellation is still returned
// alongside it, not discarded.
var ErrCancelled = errors.New("lineedit: read cancelled")

// TerminalError wraps a failure surfaced by a Terminal or EventSource
// backend. The original error is reachable through Unwrap.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("lineedit: terminal: %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

func wrapTerminalErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TerminalError{Op: op, Err: err}
}
