// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

package report

import (
	"fmt"
	"slices"
	"strings"
)

// SortWords sorts words in place by case-insensitive lexicographic order.
// The sort is stable: words identical up to case keep their relative input
// order. Stored words are never mutated; comparison uses lowercased copies.
func SortWords(words []string) {
	slices.SortStableFunc(words, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
}

// Render produces the HTML report as a sequence of output lines: a title
// and heading naming the input, then a bordered table with a Words/Counts
// header row and one row per word in the given order. Words are emitted
// verbatim. Render reads its inputs without mutating them; callers sort
// words beforehand (see SortWords).
func Render(inputName string, words []string, counts map[string]int) []string {
	lines := make([]string, 0, 14+4*len(words))
	lines = append(lines,
		"<html>",
		"<head>",
		fmt.Sprintf("<title>Words Counted in %s</title>", inputName),
		"<body>",
		fmt.Sprintf("<h2>Words Counted in %s</h2>", inputName),
		"<hr />",
		`<table border="1">`,
		"<tr>",
		"<th>Words</th>",
		"<th>Counts</th>",
		"</tr>",
	)

	for _, w := range words {
		lines = append(lines,
			"<tr>",
			fmt.Sprintf("<td>%s</td>", w),
			fmt.Sprintf("<td>%d</td>", counts[w]),
			"</tr>",
		)
	}

	lines = append(lines,
		"</table>",
		"</body>",
		"</html>",
	)
	return lines
}
