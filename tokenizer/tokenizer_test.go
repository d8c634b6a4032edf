// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet_Contains(t *testing.T) {
	s := NewSet(", .!?/;:-")

	for _, c := range []byte{',', ' ', '.', '!', '?', '/', ';', ':', '-'} {
		assert.True(t, s.Contains(c), "expected %q to be a separator", c)
	}
	for _, c := range []byte{'a', 'Z', '0', '_', '\'', '"', '\t'} {
		assert.False(t, s.Contains(c), "expected %q not to be a separator", c)
	}
}

func TestNext_TableCases(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want string
	}{
		{name: "word at start", text: "the cat", pos: 0, want: "the"},
		{name: "separator run", text: "the, cat", pos: 3, want: ", "},
		{name: "word after separator", text: "the cat", pos: 4, want: "cat"},
		{name: "word runs to end of line", text: "hello", pos: 0, want: "hello"},
		{name: "separator runs to end of line", text: "end...", pos: 3, want: "..."},
		{name: "single separator between words", text: "a-b", pos: 1, want: "-"},
		{name: "mid-word position", text: "hello", pos: 2, want: "llo"},
		{name: "mixed separator run", text: "x?! :-y", pos: 1, want: "?! :-"},
		{name: "non-separator punctuation stays in word", text: "don't stop", pos: 0, want: "don't"},
		{name: "multi-byte rune inside word", text: "naïve.", pos: 0, want: "naïve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.text, tt.pos, Separators)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext_SpecExampleLine(t *testing.T) {
	line := "the cat sat on the mat."
	want := []string{"the", " ", "cat", " ", "sat", " ", "on", " ", "the", " ", "mat", "."}

	var got []string
	for pos := 0; pos < len(line); {
		tok := Next(line, pos, Separators)
		got = append(got, tok)
		pos += len(tok)
	}

	require.Equal(t, want, got)
}

func TestNext_PanicsOnOutOfRangePosition(t *testing.T) {
	assert.Panics(t, func() { Next("abc", 3, Separators) })
	assert.Panics(t, func() { Next("abc", -1, Separators) })
	assert.Panics(t, func() { Next("", 0, Separators) })
}
