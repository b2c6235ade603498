// Package vocab builds the global sorted vocabulary of content words
// across all clue bags and rewrites each bag as a fixed-width row of
// integer word-ids, enabling vectorized set-intersection via plain
// membership tests.
package vocab

import (
	"sort"

	"github.com/cluedef/cluedef/internal/util"
)

// Padding is the sentinel written to numeric-bag slots beyond a row's
// bag size.
const Padding int32 = -1

// Table is the sorted array of distinct content words observed across
// all clue bags.
type Table struct {
	words []string
}

// Build collects every distinct word across bags into a sorted table.
func Build(bags []map[string]struct{}) *Table {
	seen := make(map[string]struct{})
	for _, bag := range bags {
		for w := range bag {
			seen[w] = struct{}{}
		}
	}
	words := make([]string, 0, len(seen))
	for w := range util.CanonicalMapIter(seen) {
		words = append(words, w)
	}
	return &Table{words: words}
}

// Width returns max(bagSizes), the row width needed to hold every bag
// without truncation.
func Width(bagSizes []int) int {
	max := 0
	for _, n := range bagSizes {
		if n > max {
			max = n
		}
	}
	return max
}

// Len returns the vocabulary size V.
func (t *Table) Len() int { return len(t.words) }

// Encode rewrites bag as a width-wide row of word-ids (by binary
// search into the vocabulary), padded with Padding. Word order within
// the row is unspecified; only set-membership matters downstream.
func (t *Table) Encode(bag map[string]struct{}, width int) []int32 {
	row := make([]int32, width)
	for i := range row {
		row[i] = Padding
	}
	i := 0
	for w := range bag {
		idx := sort.SearchStrings(t.words, w)
		if idx < len(t.words) && t.words[idx] == w {
			row[i] = int32(idx)
		}
		i++
	}
	return row
}

// Word returns the vocabulary word at index idx.
func (t *Table) Word(idx int32) string {
	return t.words[idx]
}
