// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

package counter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/textproc/wordcount/testutil"
)

func drawLines(t *rapid.T) []string {
	return rapid.SliceOfN(
		rapid.StringMatching(`[A-Za-z0-9' ,.!?/;:-]{0,40}`),
		0, 20,
	).Draw(t, "lines")
}

// isSeparator mirrors the fixed separator set independently of the
// tokenizer, so the properties do not test the implementation against
// itself.
func isSeparator(r rune) bool {
	return strings.ContainsRune(", .!?/;:-", r)
}

func TestProperty_CountSumEqualsWordTokens(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := drawLines(t)

		tally, err := Count(testutil.LinesOf(lines...))
		require.NoError(t, err)

		wordTokens := 0
		for _, line := range lines {
			wordTokens += len(strings.FieldsFunc(line, isSeparator))
		}
		assert.Equal(t, wordTokens, tally.Total())
	})
}

func TestProperty_OrderMatchesCountKeys(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := drawLines(t)

		tally, err := Count(testutil.LinesOf(lines...))
		require.NoError(t, err)

		seen := make(map[string]bool, len(tally.Order))
		for _, w := range tally.Order {
			assert.False(t, seen[w], "word %q appears twice in Order", w)
			seen[w] = true

			n, ok := tally.Counts[w]
			assert.True(t, ok, "word %q in Order but not in Counts", w)
			assert.Positive(t, n)
		}
		assert.Len(t, tally.Order, len(tally.Counts))
	})
}

func TestProperty_OrderIsFirstSeen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := drawLines(t)

		tally, err := Count(testutil.LinesOf(lines...))
		require.NoError(t, err)

		var firstSeen []string
		known := make(map[string]bool)
		for _, line := range lines {
			for _, w := range strings.FieldsFunc(line, isSeparator) {
				if !known[w] {
					known[w] = true
					firstSeen = append(firstSeen, w)
				}
			}
		}
		assert.Equal(t, firstSeen, tally.Order)
	})
}

func TestProperty_CountingIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := drawLines(t)

		first, err := Count(testutil.LinesOf(lines...))
		require.NoError(t, err)
		second, err := Count(testutil.LinesOf(lines...))
		require.NoError(t, err)

		assert.Equal(t, first.Counts, second.Counts)
		assert.Equal(t, first.Order, second.Order)
	})
}
