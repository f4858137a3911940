package lineedit

import (
	"bytes"
	"errors"
)

// fakeTerminal is an in-memory Terminal for tests: every write is
// appended to a buffer, raw-mode calls are recorded but inert.
type fakeTerminal struct {
	bytes.Buffer
	rawEnabled bool
	cols, rows int
}

func newFakeTerminal() *fakeTerminal {
	return &fakeTerminal{cols: 80, rows: 24}
}

func (t *fakeTerminal) EnableRawMode() error  { t.rawEnabled = true; return nil }
func (t *fakeTerminal) DisableRawMode() error { t.rawEnabled = false; return nil }
func (t *fakeTerminal) Size() (int, int, error) {
	return t.cols, t.rows, nil
}

// fakeEventSource replays a fixed script of events, then returns
// errEventsExhausted.
type fakeEventSource struct {
	events []Event
	pos    int
}

var errEventsExhausted = errors.New("lineedit: fake event source exhausted")

func newFakeEventSource(events ...Event) *fakeEventSource {
	return &fakeEventSource{events: events}
}

func (e *fakeEventSource) ReadEvent() (Event, error) {
	if e.pos >= len(e.events) {
		return Event{}, errEventsExhausted
	}
	ev := e.events[e.pos]
	e.pos++
	return ev, nil
}

func charEvent(r rune) Event { return Event{Key: KeyChar, Rune: r} }
