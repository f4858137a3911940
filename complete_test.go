package lineedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringsCompleter(t *testing.T) {
	c := StringsCompleter{"status", "stash", "commit"}

	tail, ok := c.CompleteFor(BufferFromString("sta"))
	assert.True(t, ok)
	assert.Equal(t, "tus", tail)

	_, ok = c.CompleteFor(BufferFromString("zzz"))
	assert.False(t, ok)

	_, ok = c.CompleteFor(NewBuffer())
	assert.False(t, ok)
}

func TestStringsSuggester(t *testing.T) {
	s := StringsSuggester{"one", "two"}
	got := s.SuggestFor(BufferFromString("anything"))
	assert.Equal(t, []string{"one", "two"}, got)

	// The returned slice must be a copy, not an alias of the backing list.
	got[0] = "mutated"
	assert.Equal(t, "one", s[0])
}

func TestCompleterFuncAdapter(t *testing.T) {
	var c Completer = CompleterFunc(func(buf *Buffer) (string, bool) {
		return "!", !buf.IsEmpty()
	})
	tail, ok := c.CompleteFor(BufferFromString("x"))
	assert.True(t, ok)
	assert.Equal(t, "!", tail)
}
