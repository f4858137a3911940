package lineedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPrevScalar(t *testing.T) {
	s := "aéb" // a, é (2 bytes), b
	assert.Equal(t, 1, nextScalar(0, s))
	assert.Equal(t, 3, nextScalar(1, s))
	assert.Equal(t, len(s), nextScalar(3, s))
	assert.Equal(t, len(s), nextScalar(len(s), s))

	assert.Equal(t, 1, prevScalar(3, s))
	assert.Equal(t, 0, prevScalar(1, s))
	assert.Equal(t, 0, prevScalar(0, s))
}

func TestNextPrevScalarMultiByteCluster(t *testing.T) {
	// A regional-indicator flag is two scalar values joined as one
	// grapheme cluster; scalar navigation still steps one rune at a
	// time, not one cluster.
	flag := "\U0001F1FA\U0001F1F8" // 🇺🇸, 4 bytes per rune
	assert.Equal(t, 4, nextScalar(0, flag))
	assert.Equal(t, 8, nextScalar(4, flag))
	assert.Equal(t, 4, prevScalar(8, flag))
}

func TestNextWord(t *testing.T) {
	s := "foo bar baz"
	assert.Equal(t, 4, nextWord(0, s))
	assert.Equal(t, 8, nextWord(4, s))
	assert.Equal(t, len(s), nextWord(8, s))
	assert.Equal(t, len(s), nextWord(len(s), s))
}

func TestPrevWord(t *testing.T) {
	s := "foo bar baz"
	assert.Equal(t, 8, prevWord(len(s), s))
	assert.Equal(t, 4, prevWord(8, s))
	assert.Equal(t, 0, prevWord(4, s))
	assert.Equal(t, 0, prevWord(0, s))
}

func TestPrevWordEnd(t *testing.T) {
	s := "foo bar baz"
	assert.Equal(t, 7, prevWordEnd(len(s), s))
	assert.Equal(t, 3, prevWordEnd(5, s))
	assert.Equal(t, 0, prevWordEnd(0, s))
}

func TestIsWhitespace(t *testing.T) {
	assert.True(t, isWhitespace(' '))
	assert.True(t, isWhitespace('\t'))
	assert.False(t, isWhitespace('a'))
}
