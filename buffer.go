package lineedit

import "unicode/utf8"

// Buffer is a single line of text together with a cursor, expressed
// as a byte offset into the UTF-8 encoded text. The cursor always
// lands on a scalar value boundary (B2); constructors and explicit
// cursor moves either produce a valid cursor or report ErrInvalidIndex
// (B3).
type Buffer struct {
	text   string
	cursor int
}

// NewBuffer returns an empty buffer with the cursor at 0.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// BufferFromString returns a buffer containing s with the cursor at
// the end of the text.
func BufferFromString(s string) *Buffer {
	return &Buffer{text: s, cursor: len(s)}
}

// String returns the buffer's text.
func (b *Buffer) String() string { return b.text }

// Len returns the byte length of the buffer's text.
func (b *Buffer) Len() int { return len(b.text) }

// IsEmpty reports whether the buffer holds no text.
func (b *Buffer) IsEmpty() bool { return len(b.text) == 0 }

// Cursor returns the current cursor byte offset.
func (b *Buffer) Cursor() int { return b.cursor }

// AtEnd reports whether the cursor sits at the end of the text.
func (b *Buffer) AtEnd() bool { return b.cursor == len(b.text) }

// SetCursor moves the cursor to index, failing with ErrInvalidIndex if
// index is out of range or not on a scalar boundary.
func (b *Buffer) SetCursor(index int) error {
	if index < 0 || index > len(b.text) {
		return ErrInvalidIndex
	}
	if index != len(b.text) && !utf8.RuneStart(b.text[index]) {
		return ErrInvalidIndex
	}
	b.cursor = index
	return nil
}

// GoToStart moves the cursor to byte offset 0.
func (b *Buffer) GoToStart() { b.cursor = 0 }

// GoToEnd moves the cursor to the end of the text.
func (b *Buffer) GoToEnd() { b.cursor = len(b.text) }

// Clear empties the buffer and resets the cursor to 0.
func (b *Buffer) Clear() {
	b.text = ""
	b.cursor = 0
}

// Write inserts r at the cursor and advances the cursor past it.
func (b *Buffer) Write(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	b.text = b.text[:b.cursor] + string(buf[:n]) + b.text[b.cursor:]
	b.cursor += n
}

// WriteStr inserts s at the cursor and advances the cursor past it.
func (b *Buffer) WriteStr(s string) {
	b.text = b.text[:b.cursor] + s + b.text[b.cursor:]
	b.cursor += len(s)
}

// WriteRange inserts a portion of s at the cursor: the whole string
// for RangeLine, up to the first word boundary for RangeWord, or only
// the first scalar value for RangeSingle.
func (b *Buffer) WriteRange(r Range, s string) {
	switch r {
	case RangeLine:
		b.WriteStr(s)
	case RangeWord:
		idx := nextWord(0, s)
		b.WriteStr(s[:idx])
	case RangeSingle:
		if s == "" {
			return
		}
		_, size := utf8.DecodeRuneInString(s)
		b.WriteStr(s[:size])
	}
}

// Move repositions the cursor per r and d, using the scalar/word
// navigation primitives.
func (b *Buffer) Move(r Range, d Direction) {
	b.cursor = b.moveTarget(r, d)
}

func (b *Buffer) moveTarget(r Range, d Direction) int {
	switch {
	case r == RangeSingle && d == DirectionForward:
		return nextScalar(b.cursor, b.text)
	case r == RangeSingle && d == DirectionBackward:
		return prevScalar(b.cursor, b.text)
	case r == RangeWord && d == DirectionForward:
		return nextWord(b.cursor, b.text)
	case r == RangeWord && d == DirectionBackward:
		return prevWord(b.cursor, b.text)
	case r == RangeLine && d == DirectionForward:
		return len(b.text)
	case r == RangeLine && d == DirectionBackward:
		return 0
	default:
		return b.cursor
	}
}

// Delete removes the section of text addressed by scope, moving the
// cursor to the start of the removed section.
func (b *Buffer) Delete(scope Scope) {
	switch scope.Kind {
	case ScopeRelative:
		start, end := b.relativeDeleteRange(scope.Range, scope.Direction)
		b.removeRange(start, end)
	case ScopeWholeWord:
		start, end := b.wholeWordRange()
		b.removeRange(start, end)
	case ScopeWholeLine:
		b.Clear()
	}
}

func (b *Buffer) relativeDeleteRange(r Range, d Direction) (start, end int) {
	target := b.moveTarget(r, d)
	if d == DirectionForward {
		return b.cursor, target
	}
	return target, b.cursor
}

// wholeWordRange implements the original's WholeWord delete: the span
// is [prevWordEnd(cursor), nextWord(cursor)), then, unless start is 0,
// exactly one whitespace scalar at its edge is kept out of the span —
// first by checking immediately after start, and only if that is not
// whitespace by checking immediately before end.
func (b *Buffer) wholeWordRange() (start, end int) {
	start = prevWordEnd(b.cursor, b.text)
	end = nextWord(b.cursor, b.text)

	if start > 0 {
		if r, size := utf8.DecodeRuneInString(b.text[start:]); size > 0 && isWhitespace(r) {
			start += size
		} else if r, size := utf8.DecodeLastRuneInString(b.text[:end]); size > 0 && isWhitespace(r) {
			end -= size
		}
	}
	return start, end
}

func (b *Buffer) removeRange(start, end int) {
	if start > end {
		start, end = end, start
	}
	b.text = b.text[:start] + b.text[end:]
	b.cursor = start
}
