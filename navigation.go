package lineedit

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// nextScalar returns the byte offset of the scalar value immediately
// after index, or len(s) if index is already at or past the last one.
func nextScalar(index int, s string) int {
	if index >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[index:])
	if size <= 0 {
		return len(s)
	}
	return index + size
}

// prevScalar returns the byte offset of the scalar value immediately
// before index, or 0 if index is already at or before the first one.
func prevScalar(index int, s string) int {
	if index <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(s[:index])
	if size <= 0 {
		return 0
	}
	return index - size
}

// wordSegmentStarts returns the byte offsets where each word-segmented
// run of s begins, via uniseg's word-boundary algorithm. Each
// returned offset is the start of a segment; segments whose first
// rune is whitespace are not "words" in the rucline sense, but the
// caller filters those out (matching the original's predicate on the
// segment's leading rune).
func wordSegmentStarts(s string) []int {
	var starts []int
	state := -1
	remaining := s
	offset := 0
	for len(remaining) > 0 {
		segment, rest, newState, _ := uniseg.FirstWordInString(remaining, state)
		starts = append(starts, offset)
		offset += len(segment)
		remaining = rest
		state = newState
	}
	return starts
}

func startsWithWhitespace(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return isWhitespace(r)
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// nextWord returns the byte offset of the next word segment that
// starts strictly after pivot and whose leading rune is not
// whitespace; len(s) if none remain.
func nextWord(pivot int, s string) int {
	if pivot == len(s) {
		return pivot
	}
	for _, start := range wordSegmentStarts(s) {
		if start <= pivot {
			continue
		}
		if !startsWithWhitespace(s[start:]) {
			return start
		}
	}
	return len(s)
}

// prevWord returns the byte offset of the last word segment that
// starts strictly before pivot and whose leading rune is not
// whitespace; 0 if none precede it.
func prevWord(pivot int, s string) int {
	if pivot == 0 {
		return pivot
	}
	best := 0
	found := false
	for _, start := range wordSegmentStarts(s) {
		if start >= pivot {
			break
		}
		if !startsWithWhitespace(s[start:]) {
			best = start
			found = true
		}
	}
	if !found {
		return 0
	}
	return best
}

// prevWordEnd returns the byte offset just past the last word segment
// that ends strictly before pivot and whose leading rune is not
// whitespace; 0 if none precede it.
func prevWordEnd(pivot int, s string) int {
	if pivot == 0 {
		return pivot
	}
	starts := wordSegmentStarts(s)
	best := 0
	found := false
	for i, start := range starts {
		end := len(s)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if end >= pivot {
			break
		}
		if !startsWithWhitespace(s[start:]) {
			best = end
			found = true
		}
	}
	if !found {
		return 0
	}
	return best
}
