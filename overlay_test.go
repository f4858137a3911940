package lineedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayOpenAndCycle(t *testing.T) {
	var o suggestionOverlay
	suggester := StringsSuggester{"alpha", "beta", "gamma"}
	buf := NewBuffer()

	o.open(suggester, buf, DirectionForward)
	require.True(t, o.active())
	assert.Equal(t, "alpha", o.current())

	o.cycle(DirectionForward)
	assert.Equal(t, "beta", o.current())

	o.cycle(DirectionForward)
	assert.Equal(t, "gamma", o.current())

	// Walking off the last option passes through "no selection" (the
	// pre-open buffer) before wrapping back to the first option: a
	// full forward cycle over N options visits N+1 states.
	o.cycle(DirectionForward)
	assert.True(t, o.active())
	assert.False(t, o.hasSelection())
	assert.Equal(t, "", o.current())

	o.cycle(DirectionForward)
	assert.Equal(t, "alpha", o.current(), "cycling forward should wrap around after the no-selection state")
}

func TestOverlayOpenBackwardSeedsLastOption(t *testing.T) {
	var o suggestionOverlay
	suggester := StringsSuggester{"alpha", "beta", "gamma"}
	buf := NewBuffer()

	o.open(suggester, buf, DirectionBackward)
	assert.Equal(t, "gamma", o.current())

	o.cycle(DirectionBackward)
	assert.Equal(t, "beta", o.current())
}

func TestOverlayOpenWithNoOptionsStaysEditing(t *testing.T) {
	var o suggestionOverlay
	suggester := StringsSuggester{}
	buf := NewBuffer()

	o.open(suggester, buf, DirectionForward)
	assert.False(t, o.active())
}

func TestOverlayMaterialize(t *testing.T) {
	var o suggestionOverlay
	suggester := StringsSuggester{"alpha", "beta"}
	buf := BufferFromString("al")

	o.open(suggester, buf, DirectionForward)
	o.materialize(buf)

	assert.False(t, o.active())
	assert.Equal(t, "alpha", buf.String())
	assert.True(t, buf.AtEnd())
}

func TestOverlayDismissLeavesBufferUntouched(t *testing.T) {
	var o suggestionOverlay
	suggester := StringsSuggester{"alpha", "beta"}
	buf := BufferFromString("al")

	o.open(suggester, buf, DirectionForward)
	o.dismiss()

	assert.False(t, o.active())
	assert.Equal(t, "al", buf.String())
}
