// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

package counter

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/textproc/wordcount/tokenizer"
)

// LineSource yields a finite sequence of text lines, one at a time.
// *textio.ReaderSource satisfies it; tests supply in-memory sources.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// Tally holds the result of one counting pass: per-word occurrence counts
// and the distinct words in order of first appearance. Keys are
// case-sensitive and separator-free; every key in Counts appears exactly
// once in Order.
type Tally struct {
	Counts map[string]int
	Order  []string
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{Counts: make(map[string]int)}
}

func (t *Tally) add(word string) {
	if _, seen := t.Counts[word]; !seen {
		t.Order = append(t.Order, word)
	}
	t.Counts[word]++
}

// Total returns the sum of all counts, which equals the number of word
// tokens extracted from the input.
func (t *Tally) Total() int {
	total := 0
	for _, n := range t.Counts {
		total += n
	}
	return total
}

// Distinct returns the number of distinct words seen.
func (t *Tally) Distinct() int {
	return len(t.Order)
}

// Counter drives the tokenizer over a line source and accumulates a Tally.
type Counter struct {
	logger *zap.Logger
}

// Option configures a Counter.
type Option func(*Counter)

// WithLogger attaches a logger for debug-level progress reporting.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Counter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Counter. Without options it counts silently.
func New(opts ...Option) *Counter {
	c := &Counter{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Count performs one linear pass over src: each line is split into maximal
// separator/word runs, separator runs are skipped, and every word token
// increments its case-sensitive count. The only error condition is a read
// failure reported by the source; well-formed text never fails, and empty
// input yields an empty tally.
func (c *Counter) Count(src LineSource) (*Tally, error) {
	tally := NewTally()

	lines := 0
	for src.Scan() {
		line := src.Text()
		lines++
		for pos := 0; pos < len(line); {
			tok := tokenizer.Next(line, pos, tokenizer.Separators)
			if !tokenizer.Separators.Contains(tok[0]) {
				tally.add(tok)
			}
			pos += len(tok)
		}
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("read input lines: %w", err)
	}

	c.logger.Debug("counting pass complete",
		zap.Int("lines", lines),
		zap.Int("distinct_words", tally.Distinct()),
		zap.Int("word_tokens", tally.Total()),
	)
	return tally, nil
}

// Count runs a counting pass with a default Counter.
func Count(src LineSource) (*Tally, error) {
	return New().Count(src)
}
