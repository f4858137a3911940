package lineedit

import "strings"

// Completer supplies an inline tail completion appended after the
// cursor. It is queried read-only after every buffer edit; the
// completion is only rendered, never written into the buffer, until a
// Complete action is issued.
type Completer interface {
	// CompleteFor returns the text to append after buf's current
	// content, and whether a completion applies at all.
	CompleteFor(buf *Buffer) (string, bool)
}

// Suggester supplies a list of candidates to replace the buffer
// contents with, usually bound to Tab. It is queried once per Suggest
// trigger; the returned list is then cycled locally by the overlay
// state machine without requerying.
type Suggester interface {
	SuggestFor(buf *Buffer) []string
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(buf *Buffer) (string, bool)

func (f CompleterFunc) CompleteFor(buf *Buffer) (string, bool) { return f(buf) }

// SuggesterFunc adapts a function to the Suggester interface.
type SuggesterFunc func(buf *Buffer) []string

func (f SuggesterFunc) SuggestFor(buf *Buffer) []string { return f(buf) }

// StringsCompleter completes from a static word list: the first entry
// with buf's text as a prefix, minus that prefix. Mirrors the
// original's blanket Completer implementation for a plain string list.
type StringsCompleter []string

func (list StringsCompleter) CompleteFor(buf *Buffer) (string, bool) {
	if buf.IsEmpty() {
		return "", false
	}
	text := buf.String()
	for _, candidate := range list {
		if strings.HasPrefix(candidate, text) {
			return candidate[len(text):], true
		}
	}
	return "", false
}

// StringsSuggester always suggests its whole word list regardless of
// buffer content, mirroring the original's blanket Suggester
// implementation for a plain string list.
type StringsSuggester []string

func (list StringsSuggester) SuggestFor(_ *Buffer) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
