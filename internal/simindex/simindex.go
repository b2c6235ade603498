// Package simindex implements the batch Jaro similarity index the
// redundancy engine queries once per distinct canonical answer.
package simindex

import (
	"errors"
	"sort"

	"github.com/antzucaro/matchr"
)

// ErrEmptyIndex is returned by Build when given zero unique strings;
// it surfaces to the caller as the engine's index-build failure.
var ErrEmptyIndex = errors.New("simindex: cannot build index from zero unique strings")

// Index is an immutable index over a set of unique strings. Query
// results are aligned to the alphabetical order the index was built
// with, regardless of any internal order a future batch-similarity
// backend might use.
type Index struct {
	unique []string // sorted alphabetically
}

// Build constructs an index from unique, a set of distinct strings.
// unique is sorted in place is not required by the caller; Build
// copies and sorts its own record of it.
func Build(unique []string) (*Index, error) {
	if len(unique) == 0 {
		return nil, ErrEmptyIndex
	}
	cp := make([]string, len(unique))
	copy(cp, unique)
	sort.Strings(cp)
	return &Index{unique: cp}, nil
}

// Query returns the classical Jaro similarity between q and every
// indexed string, aligned to the index's alphabetical order (the
// order Build received, sorted).
//
// The probe-and-permute fix-up spec.md's design notes call for is a
// no-op here: each score is computed directly against Index.unique[k]
// in a single pass, so result order is alphabetical by construction.
// A future backend whose batch primitive returns scores in an
// unrelated order would reintroduce the need for that permutation at
// this call site, not in the engine.
func (idx *Index) Query(q string) []float64 {
	scores := make([]float64, len(idx.unique))
	for i, s := range idx.unique {
		scores[i] = jaro(q, s)
	}
	return scores
}

// Unique returns the alphabetically sorted unique strings the index
// was built from. The engine uses this to compute each row's position
// in the index (uq_idxs in spec.md §4.5).
func (idx *Index) Unique() []string {
	return idx.unique
}

// jaro computes the classical Jaro similarity (no Winkler prefix
// bonus) between a and b, in [0,1]. Two empty strings compare as 1.0;
// an empty string against a non-empty one compares as 0.0 — enforced
// explicitly here since that numeric contract is spec-mandated
// regardless of the underlying library's own edge-case handling.
func jaro(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return matchr.Jaro(a, b)
}
