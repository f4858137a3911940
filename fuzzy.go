package lineedit

import (
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// FuzzySuggester ranks a static corpus against the buffer's current
// text using fuzzy subsequence matching, replacing the simple
// prefix-filter a caller would otherwise have to write by hand (the
// approach pkg/shellinput's updateSuggestions took before this was
// generalized here).
type FuzzySuggester struct {
	Corpus []string
}

func (s FuzzySuggester) SuggestFor(buf *Buffer) []string {
	if buf.IsEmpty() {
		return append([]string(nil), s.Corpus...)
	}
	matches := fuzzy.Find(buf.String(), s.Corpus)
	return lo.Map(matches, func(m fuzzy.Match, _ int) string {
		return m.Str
	})
}

// FuzzyCompleter offers an inline tail completion: the best fuzzy
// match for the buffer's text, minus whatever part of it the buffer
// already contains verbatim as a prefix. If the best match is not a
// prefix extension of the buffer, no completion is offered (a
// fuzzy match that doesn't literally extend the typed text would
// be confusing to splice in inline).
type FuzzyCompleter struct {
	Corpus []string
}

func (c FuzzyCompleter) CompleteFor(buf *Buffer) (string, bool) {
	if buf.IsEmpty() {
		return "", false
	}
	text := buf.String()
	matches := fuzzy.Find(text, c.Corpus)
	if len(matches) == 0 {
		return "", false
	}
	best := matches[0].Str
	if len(best) <= len(text) || best[:len(text)] != text {
		return "", false
	}
	return best[len(text):], true
}
