package engine

import (
	"strings"

	"github.com/cluedef/cluedef/internal/clue"
)

// Subset restricts recs to rows whose answer or clue contains the
// given substrings, case-insensitively. A nil term leaves that
// dimension unfiltered. When both are non-nil, the answer filter is
// applied first and the clue filter narrows its result (conjunction).
// Rows with a missing answer are dropped whenever ansTerm is set.
func Subset(recs []clue.Record, ansTerm, clueTerm *string) []clue.Record {
	if ansTerm == nil && clueTerm == nil {
		return recs
	}

	out := recs
	if ansTerm != nil {
		term := strings.ToLower(*ansTerm)
		filtered := make([]clue.Record, 0, len(out))
		for _, r := range out {
			if r.Answer == "" {
				continue
			}
			if strings.Contains(strings.ToLower(r.Answer), term) {
				filtered = append(filtered, r)
			}
		}
		out = filtered
	}
	if clueTerm != nil {
		term := strings.ToLower(*clueTerm)
		filtered := make([]clue.Record, 0, len(out))
		for _, r := range out {
			if strings.Contains(strings.ToLower(r.Clue), term) {
				filtered = append(filtered, r)
			}
		}
		out = filtered
	}
	return out
}
