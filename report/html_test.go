// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortWords_CaseInsensitive(t *testing.T) {
	words := []string{"banana", "Apple", "cherry", "apricot"}
	SortWords(words)
	assert.Equal(t, []string{"Apple", "apricot", "banana", "cherry"}, words)
}

func TestSortWords_CaseOnlyTiesKeepInputOrder(t *testing.T) {
	// "A" and "a" compare equal under the lowercased key; the stable sort
	// must keep their first-seen order. Both overall orders from the two
	// possible inputs are acceptable output orders.
	words := []string{"A", "a", "B"}
	SortWords(words)
	assert.Equal(t, []string{"A", "a", "B"}, words)

	words = []string{"a", "B", "A"}
	SortWords(words)
	assert.Equal(t, []string{"a", "A", "B"}, words)
}

func TestSortWords_Empty(t *testing.T) {
	var words []string
	SortWords(words)
	assert.Empty(t, words)
}

func TestRender_ExactDocumentStructure(t *testing.T) {
	words := []string{"cat", "mat", "on", "sat", "the"}
	counts := map[string]int{"the": 2, "cat": 1, "sat": 1, "on": 1, "mat": 1}

	got := Render("data/input.txt", words, counts)

	want := []string{
		"<html>",
		"<head>",
		"<title>Words Counted in data/input.txt</title>",
		"<body>",
		"<h2>Words Counted in data/input.txt</h2>",
		"<hr />",
		`<table border="1">`,
		"<tr>",
		"<th>Words</th>",
		"<th>Counts</th>",
		"</tr>",
		"<tr>", "<td>cat</td>", "<td>1</td>", "</tr>",
		"<tr>", "<td>mat</td>", "<td>1</td>", "</tr>",
		"<tr>", "<td>on</td>", "<td>1</td>", "</tr>",
		"<tr>", "<td>sat</td>", "<td>1</td>", "</tr>",
		"<tr>", "<td>the</td>", "<td>2</td>", "</tr>",
		"</table>",
		"</body>",
		"</html>",
	}
	assert.Equal(t, want, got)
}

func TestRender_EmptyTally(t *testing.T) {
	got := Render("empty.txt", nil, map[string]int{})

	require.Len(t, got, 14)
	assert.Equal(t, `<table border="1">`, got[6])
	// Header row only, then straight to the closing tags.
	assert.Equal(t, "</tr>", got[10])
	assert.Equal(t, "</table>", got[11])
	assert.Equal(t, "</body>", got[12])
	assert.Equal(t, "</html>", got[13])
}

func TestRender_DoesNotMutateInputs(t *testing.T) {
	words := []string{"b", "a"}
	counts := map[string]int{"a": 1, "b": 2}

	Render("in.txt", words, counts)

	assert.Equal(t, []string{"b", "a"}, words)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, counts)
}

func TestRender_WordsEmittedVerbatim(t *testing.T) {
	words := []string{"<b>"}
	counts := map[string]int{"<b>": 3}

	got := Render("in.txt", words, counts)
	assert.Contains(t, got, "<td><b></td>")
	assert.Contains(t, got, "<td>3</td>")
}
