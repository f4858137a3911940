package lineedit

// overlayState is whether the session is plainly editing or showing a
// cycling suggestion list (§4.5).
type overlayState int

const (
	overlayEditing overlayState = iota
	overlaySuggesting
)

// noSelection is the overlay's index value for the Suggesting(None)
// state: a cycle has walked off either end of the option list and is
// showing the pre-open buffer rather than any option.
const noSelection = -1

// suggestionOverlay holds the Suggesting{options, index} state, where
// index is Some(k) (0 <= k < len(options)) or None (noSelection). It is
// the in-memory counterpart of the spec's suggestion overlay state
// machine: any action other than Suggest or Cancel materializes the
// current selection into the buffer before that action is processed.
type suggestionOverlay struct {
	state   overlayState
	options []string
	index   int
}

func (o *suggestionOverlay) active() bool { return o.state == overlaySuggesting }

// hasSelection reports whether index names an option (Some) rather
// than the None "showing the original buffer" state.
func (o *suggestionOverlay) hasSelection() bool {
	return o.state == overlaySuggesting && o.index != noSelection
}

// open queries suggester for buf and enters Suggesting, seeding index
// at the first entry for a forward trigger or the last for a backward
// one. If the suggester returns nothing, the overlay stays Editing.
func (o *suggestionOverlay) open(suggester Suggester, buf *Buffer, dir Direction) {
	options := suggester.SuggestFor(buf)
	if len(options) == 0 {
		o.state = overlayEditing
		o.options = nil
		return
	}

	o.state = overlaySuggesting
	o.options = options
	if dir == DirectionBackward {
		o.index = len(options) - 1
	} else {
		o.index = 0
	}
}

// cycle advances the selection, passing through the None state (the
// pre-open buffer) before wrapping to the opposite end, matching the
// Forward/Backward transition table over Some(index)/None.
func (o *suggestionOverlay) cycle(dir Direction) {
	if len(o.options) == 0 {
		return
	}
	last := len(o.options) - 1

	if dir == DirectionForward {
		switch {
		case o.index == noSelection:
			o.index = 0
		case o.index < last:
			o.index++
		default:
			o.index = noSelection
		}
		return
	}

	switch {
	case o.index == noSelection:
		o.index = last
	case o.index > 0:
		o.index--
	default:
		o.index = noSelection
	}
}

func (o *suggestionOverlay) current() string {
	if !o.hasSelection() || o.index < 0 || o.index >= len(o.options) {
		return ""
	}
	return o.options[o.index]
}

// materialize replaces buf's contents with the selected option, cursor
// at the end, and returns to Editing. In the None state the buffer is
// left untouched, since nothing was ever selected.
func (o *suggestionOverlay) materialize(buf *Buffer) {
	if o.state != overlaySuggesting {
		return
	}
	selected, had := o.current(), o.hasSelection()
	o.state = overlayEditing
	o.options = nil
	o.index = noSelection

	if had {
		buf.Clear()
		buf.WriteStr(selected)
	}
}

// dismiss discards the overlay without touching the buffer.
func (o *suggestionOverlay) dismiss() {
	o.state = overlayEditing
	o.options = nil
	o.index = noSelection
}
