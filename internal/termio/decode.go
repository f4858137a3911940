package termio

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/kestrelline/lineedit"
)

const (
	ctrlA = 1
	ctrlB = 2
	ctrlC = 3
	ctrlD = 4
	ctrlE = 5
	ctrlF = 6
	ctrlH = 8
	ctrlJ = 10
	ctrlK = 11
	ctrlL = 12
	ctrlM = 13
	ctrlU = 21
	ctrlW = 23
	escByte = 27
	backspaceByte = 127
)

// EventSource is the concrete lineedit.EventSource backed by raw byte
// reads off f (typically os.Stdin), decoding C0 control bytes and the
// CSI/SS3 escape sequences for arrows, Home, End, Delete and BackTab.
type EventSource struct {
	r *bufio.Reader
}

// NewEventSource wraps f as a lineedit.EventSource.
func NewEventSource(f io.Reader) *EventSource {
	return &EventSource{r: bufio.NewReader(f)}
}

// ReadEvent blocks for the next decoded Event. This is the session's
// single suspension point per iteration (§5).
func (e *EventSource) ReadEvent() (lineedit.Event, error) {
	b, err := e.r.ReadByte()
	if err != nil {
		return lineedit.Event{}, err
	}

	switch {
	case b == escByte:
		return e.decodeEscape()
	case b == ctrlM:
		return lineedit.Event{Key: lineedit.KeyEnter}, nil
	case b == ctrlC:
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'c', Mods: lineedit.ModCtrl}, nil
	case b == ctrlD:
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'd', Mods: lineedit.ModCtrl}, nil
	case b == ctrlA:
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'a', Mods: lineedit.ModCtrl}, nil
	case b == ctrlE:
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'e', Mods: lineedit.ModCtrl}, nil
	case b == ctrlB:
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'b', Mods: lineedit.ModCtrl}, nil
	case b == ctrlF:
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'f', Mods: lineedit.ModCtrl}, nil
	case b == ctrlJ:
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'j', Mods: lineedit.ModCtrl}, nil
	case b == ctrlK:
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'k', Mods: lineedit.ModCtrl}, nil
	case b == ctrlL:
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'l', Mods: lineedit.ModCtrl}, nil
	case b == ctrlU:
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'u', Mods: lineedit.ModCtrl}, nil
	case b == ctrlW:
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'w', Mods: lineedit.ModCtrl}, nil
	// Backspace key and the Ctrl-H chord share byte 8 on the wire; we
	// resolve the ambiguity in favor of Backspace, the far more common
	// keypress, so Ctrl-H's delete-line-backward binding is unreachable
	// from a plain ANSI terminal.
	case b == ctrlH || b == backspaceByte:
		return lineedit.Event{Key: lineedit.KeyBackspace}, nil
	case b == '\t':
		return lineedit.Event{Key: lineedit.KeyTab}, nil
	case b < 0x20:
		return lineedit.Event{Key: lineedit.KeyOther}, nil
	default:
		r, err := e.decodeRune(b)
		if err != nil {
			return lineedit.Event{}, err
		}
		return lineedit.Event{Key: lineedit.KeyChar, Rune: r}, nil
	}
}

// decodeRune reassembles a UTF-8 encoded rune starting with the
// already-consumed lead byte b.
func (e *EventSource) decodeRune(b byte) (rune, error) {
	n := utf8ContinuationCount(b)
	if n == 0 {
		return rune(b), nil
	}
	buf := make([]byte, 1, 1+n)
	buf[0] = b
	for i := 0; i < n; i++ {
		cont, err := e.r.ReadByte()
		if err != nil {
			return 0, err
		}
		buf = append(buf, cont)
	}
	r, _ := utf8.DecodeRune(buf)
	return r, nil
}

func utf8ContinuationCount(b byte) int {
	switch {
	case b&0x80 == 0:
		return 0
	case b&0xE0 == 0xC0:
		return 1
	case b&0xF0 == 0xE0:
		return 2
	case b&0xF8 == 0xF0:
		return 3
	default:
		return 0
	}
}

// decodeEscape consumes an ESC-introduced sequence: either a bare Esc
// key (no further byte already buffered), or a CSI ("\x1b[...") / SS3
// ("\x1bO...") sequence for arrows, Home, End, Delete and BackTab.
func (e *EventSource) decodeEscape() (lineedit.Event, error) {
	if e.r.Buffered() == 0 {
		return lineedit.Event{Key: lineedit.KeyEsc}, nil
	}
	b1, err := e.r.ReadByte()
	if err == io.EOF {
		return lineedit.Event{Key: lineedit.KeyEsc}, nil
	}
	if err != nil {
		return lineedit.Event{}, err
	}

	if b1 == 'b' {
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'b', Mods: lineedit.ModAlt}, nil
	}
	if b1 == 'f' {
		return lineedit.Event{Key: lineedit.KeyChar, Rune: 'f', Mods: lineedit.ModAlt}, nil
	}
	if b1 != '[' && b1 != 'O' {
		return lineedit.Event{Key: lineedit.KeyEsc}, nil
	}

	b2, err := e.r.ReadByte()
	if err != nil {
		return lineedit.Event{}, err
	}

	switch b2 {
	case 'A':
		return lineedit.Event{Key: lineedit.KeyUp}, nil
	case 'B':
		return lineedit.Event{Key: lineedit.KeyDown}, nil
	case 'C':
		return lineedit.Event{Key: lineedit.KeyRight}, nil
	case 'D':
		return lineedit.Event{Key: lineedit.KeyLeft}, nil
	case 'H':
		return lineedit.Event{Key: lineedit.KeyHome}, nil
	case 'F':
		return lineedit.Event{Key: lineedit.KeyEnd}, nil
	case 'Z':
		return lineedit.Event{Key: lineedit.KeyBackTab}, nil
	case '3':
		if _, err := e.r.ReadByte(); err != nil { // trailing '~'
			return lineedit.Event{}, err
		}
		return lineedit.Event{Key: lineedit.KeyDelete}, nil
	default:
		return lineedit.Event{Key: lineedit.KeyOther}, nil
	}
}
