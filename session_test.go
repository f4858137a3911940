package lineedit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLineWith(t *testing.T, opts func(*Builder) *Builder, events ...Event) (string, error) {
	t.Helper()
	b := opts(NewBuilder())
	term := newFakeTerminal()
	return b.ReadLine(context.Background(), term, newFakeEventSource(events...))
}

func TestSessionTypeAndAccept(t *testing.T) {
	line, err := readLineWith(t, func(b *Builder) *Builder { return b },
		charEvent('h'), charEvent('i'), Event{Key: KeyEnter})

	require.NoError(t, err)
	assert.Equal(t, "hi", line)
}

func TestSessionCancelAtTopLevel(t *testing.T) {
	line, err := readLineWith(t, func(b *Builder) *Builder { return b },
		charEvent('h'), Event{Key: KeyEsc})

	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, "h", line, "the in-progress buffer must still reach the caller on cancel")
}

func TestSessionBackspace(t *testing.T) {
	line, err := readLineWith(t, func(b *Builder) *Builder { return b },
		charEvent('h'), charEvent('i'), Event{Key: KeyBackspace}, charEvent('o'), Event{Key: KeyEnter})

	require.NoError(t, err)
	assert.Equal(t, "ho", line)
}

func TestSessionInlineCompletionAcceptedWithEnd(t *testing.T) {
	opts := func(b *Builder) *Builder {
		return b.Completer(StringsCompleter{"status", "stash"})
	}
	line, err := readLineWith(t, opts,
		charEvent('s'), charEvent('t'), charEvent('a'),
		Event{Key: KeyEnd}, // at end of line, Move forward becomes Complete
		Event{Key: KeyEnter})

	require.NoError(t, err)
	assert.Equal(t, "status", line)
}

func TestSessionSuggestionCycleAndMaterialize(t *testing.T) {
	opts := func(b *Builder) *Builder {
		return b.Suggester(StringsSuggester{"alpha", "beta", "gamma"})
	}
	line, err := readLineWith(t, opts,
		Event{Key: KeyTab},               // open overlay on "alpha"
		Event{Key: KeyTab},               // cycle to "beta"
		Event{Key: KeyRight},             // any non-Suggest action materializes the overlay
		Event{Key: KeyEnter},
	)

	require.NoError(t, err)
	assert.Equal(t, "beta", line)
}

func TestSessionCancelDismissesOverlayWithoutEndingRead(t *testing.T) {
	opts := func(b *Builder) *Builder {
		return b.Suggester(StringsSuggester{"alpha", "beta"})
	}
	line, err := readLineWith(t, opts,
		Event{Key: KeyTab},
		Event{Key: KeyEsc}, // dismisses the overlay, buffer stays empty
		charEvent('x'),
		Event{Key: KeyEnter},
	)

	require.NoError(t, err)
	assert.Equal(t, "x", line)
}
