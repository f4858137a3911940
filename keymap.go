package lineedit

// Key identifies a non-character key, or KeyChar when Event.Rune holds
// the pressed character.
type Key int

const (
	KeyChar Key = iota
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyOther
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModNone  Modifiers = 0
	ModCtrl  Modifiers = 1 << iota
	ModAlt
	ModShift
)

func (m Modifiers) has(flag Modifiers) bool { return m&flag != 0 }

// Event is one decoded unit of terminal input: either a named key or
// a character, together with any held modifiers.
type Event struct {
	Key  Key
	Rune rune
	Mods Modifiers
}

// KeyMap is a plain association of Event to Action, usable directly as
// an Overrider (exactly as the original's HashMap<Event, Action> is
// used as an override source), and as the in-memory form that
// bindings_io.go exports to and imports from YAML.
type KeyMap map[Event]Action

// OverrideFor implements Overrider by looking the event up verbatim.
func (km KeyMap) OverrideFor(event Event, _ *Buffer) (Action, bool) {
	a, ok := km[event]
	return a, ok
}

func completeIfAtEndElseMove(buf *Buffer, r Range) Action {
	if buf.AtEnd() {
		if r == RangeWord {
			return Complete(RangeWord)
		}
		return Complete(RangeLine)
	}
	return Move(r, DirectionForward)
}

// defaultAction implements the built-in key table (§4.3): Enter,
// Esc, Tab/BackTab, Backspace/Delete, arrow keys, Home/End, and the
// Ctrl/Alt character chords, including the "complete at end of line"
// dual-purpose rule for Right, End, Ctrl-F and Alt-F.
func defaultAction(event Event, buf *Buffer) Action {
	switch event.Key {
	case KeyEnter:
		return Accept()
	case KeyEsc:
		return Cancel()
	case KeyTab:
		return Suggest(DirectionForward)
	case KeyBackTab:
		return Suggest(DirectionBackward)
	case KeyBackspace:
		return Delete(RelativeScope(RangeSingle, DirectionBackward))
	case KeyDelete:
		return Delete(RelativeScope(RangeSingle, DirectionForward))
	case KeyRight:
		return completeIfAtEndElseMove(buf, RangeSingle)
	case KeyLeft:
		return Move(RangeSingle, DirectionBackward)
	case KeyHome:
		return Move(RangeLine, DirectionBackward)
	case KeyEnd:
		return completeIfAtEndElseMove(buf, RangeLine)
	case KeyChar:
		return defaultCharAction(event, buf)
	default:
		return NoOp()
	}
}

func defaultCharAction(event Event, buf *Buffer) Action {
	c := event.Rune
	switch {
	case event.Mods.has(ModCtrl):
		switch c {
		case 'm', 'd':
			return Accept()
		case 'c':
			return Cancel()
		case 'b':
			return Move(RangeSingle, DirectionBackward)
		case 'f':
			return completeIfAtEndElseMove(buf, RangeSingle)
		case 'a':
			return Move(RangeLine, DirectionBackward)
		case 'e':
			return completeIfAtEndElseMove(buf, RangeLine)
		case 'j':
			return Delete(RelativeScope(RangeWord, DirectionBackward))
		case 'k':
			return Delete(RelativeScope(RangeWord, DirectionForward))
		case 'h':
			return Delete(RelativeScope(RangeLine, DirectionBackward))
		case 'l':
			return Delete(RelativeScope(RangeLine, DirectionForward))
		case 'w':
			return Delete(WholeWordScope())
		case 'u':
			return Delete(WholeLineScope())
		default:
			return NoOp()
		}
	case event.Mods.has(ModAlt):
		switch c {
		case 'b':
			return Move(RangeWord, DirectionBackward)
		case 'f':
			return completeIfAtEndElseMove(buf, RangeWord)
		default:
			return NoOp()
		}
	default:
		return Write(c)
	}
}
