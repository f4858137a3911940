package lineedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferFromString(t *testing.T) {
	b := BufferFromString("hello")
	assert.Equal(t, "hello", b.String())
	assert.Equal(t, 5, b.Cursor())
	assert.True(t, b.AtEnd())
}

func TestBufferSetCursor(t *testing.T) {
	b := BufferFromString("héllo")

	require.NoError(t, b.SetCursor(0))
	assert.Equal(t, 0, b.Cursor())

	// 'é' is 2 bytes; index 2 lands mid-scalar and must be rejected.
	err := b.SetCursor(2)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	require.NoError(t, b.SetCursor(3))
	assert.Equal(t, 3, b.Cursor())

	assert.ErrorIs(t, b.SetCursor(-1), ErrInvalidIndex)
	assert.ErrorIs(t, b.SetCursor(b.Len()+1), ErrInvalidIndex)
}

func TestBufferWrite(t *testing.T) {
	b := NewBuffer()
	b.Write('h')
	b.Write('i')
	assert.Equal(t, "hi", b.String())
	assert.Equal(t, 2, b.Cursor())

	require.NoError(t, b.SetCursor(1))
	b.Write('o')
	assert.Equal(t, "hoi", b.String())
	assert.Equal(t, 2, b.Cursor())
}

func TestBufferWriteRange(t *testing.T) {
	cases := []struct {
		name string
		r    Range
		want string
	}{
		{"single", RangeSingle, "h"},
		{"word", RangeWord, "hello "},
		{"line", RangeLine, "hello world"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBuffer()
			b.WriteRange(c.r, "hello world")
			assert.Equal(t, c.want, b.String())
		})
	}
}

func TestBufferMoveSingle(t *testing.T) {
	b := BufferFromString("abc")
	b.GoToStart()

	b.Move(RangeSingle, DirectionForward)
	assert.Equal(t, 1, b.Cursor())

	b.Move(RangeSingle, DirectionForward)
	b.Move(RangeSingle, DirectionBackward)
	assert.Equal(t, 1, b.Cursor())
}

func TestBufferMoveWord(t *testing.T) {
	b := BufferFromString("foo bar baz")
	b.GoToStart()

	// nextWord lands on the start of the following word, past the
	// separating whitespace, not at the end of the current one.
	b.Move(RangeWord, DirectionForward)
	assert.Equal(t, "foo ", b.String()[:b.Cursor()])

	b.Move(RangeWord, DirectionForward)
	assert.Equal(t, "foo bar ", b.String()[:b.Cursor()])

	b.Move(RangeWord, DirectionBackward)
	assert.Equal(t, "foo ", b.String()[:b.Cursor()])
}

func TestBufferMoveLine(t *testing.T) {
	b := BufferFromString("foo bar")
	b.Move(RangeLine, DirectionBackward)
	assert.Equal(t, 0, b.Cursor())

	b.Move(RangeLine, DirectionForward)
	assert.Equal(t, b.Len(), b.Cursor())
}

func TestBufferDeleteRelative(t *testing.T) {
	b := BufferFromString("foo bar")
	b.GoToEnd()

	b.Delete(RelativeScope(RangeSingle, DirectionBackward))
	assert.Equal(t, "foo ba", b.String())

	b.GoToStart()
	b.Delete(RelativeScope(RangeSingle, DirectionForward))
	assert.Equal(t, "oo ba", b.String())
}

func TestBufferDeleteWholeWord(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		cursor int
		want   string
	}{
		{"middle of word keeps one trailing space", "foo bar baz", 5, "foo baz"},
		{"cursor inside a whitespace gap removes a single space", "foo  bar", 4, "foo bar"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := BufferFromString(c.text)
			require.NoError(t, b.SetCursor(c.cursor))
			b.Delete(WholeWordScope())
			assert.Equal(t, c.want, b.String())
		})
	}
}

func TestBufferDeleteWholeLine(t *testing.T) {
	b := BufferFromString("foo bar")
	b.GoToStart()
	b.Move(RangeWord, DirectionForward)
	b.Delete(WholeLineScope())
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Cursor())
}

func TestBufferClear(t *testing.T) {
	b := BufferFromString("anything")
	b.Clear()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Cursor())
}
