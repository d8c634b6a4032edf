// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

package tokenizer

import "fmt"

// Set is an immutable set of ASCII separator characters.
//
// The zero value is an empty set. Sets are cheap to copy and safe for
// concurrent reads; there is no way to mutate one after NewSet returns.
type Set struct {
	table [256]bool
}

// NewSet builds a Set containing every byte of chars.
func NewSet(chars string) Set {
	var s Set
	for i := 0; i < len(chars); i++ {
		s.table[chars[i]] = true
	}
	return s
}

// Contains reports whether c is in the set.
func (s Set) Contains(c byte) bool {
	return s.table[c]
}

// Separators is the fixed separator set used by the counting pipeline:
// comma, space, period, exclamation mark, question mark, slash,
// semicolon, colon and hyphen.
var Separators = NewSet(", .!?/;:-")

// Next returns the maximal run in text starting exactly at pos that is
// homogeneous with respect to seps: if text[pos] is a separator, the run
// consists entirely of separators; otherwise it consists entirely of
// non-separators. The run extends until the end of text or until the next
// byte changes category.
//
// The returned token is never empty, and concatenating successive tokens
// (each call starting where the previous token ended) reconstructs the
// remainder of text exactly.
//
// Next panics if pos is out of range; that is a contract violation by the
// caller, not a recoverable error. Scanning is byte-wise: the separator set
// is ASCII, so multi-byte UTF-8 sequences always land inside non-separator
// runs unchanged.
func Next(text string, pos int, seps Set) string {
	if pos < 0 || pos >= len(text) {
		panic(fmt.Sprintf("tokenizer: position %d out of range for text of length %d", pos, len(text)))
	}

	wantSep := seps.Contains(text[pos])
	end := pos + 1
	for end < len(text) && seps.Contains(text[end]) == wantSep {
		end++
	}
	return text[pos:end]
}
