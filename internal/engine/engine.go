// Package engine implements the redundancy-removal engine: it
// canonicalizes answers, tokenizes clues, blocks on fuzzy answer
// similarity, scores clue overlap within each block, and prunes the
// less-informative clue whenever one dominates another.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/cluedef/cluedef/internal/clue"
	"github.com/cluedef/cluedef/internal/normalize"
	"github.com/cluedef/cluedef/internal/simindex"
	"github.com/cluedef/cluedef/internal/threshold"
	"github.com/cluedef/cluedef/internal/util"
	"github.com/cluedef/cluedef/internal/vocab"
)

// Options configures a single Run.
type Options struct {
	AnswerTerm, ClueTerm *string // Subsetter pre-stage; nil disables that filter
	SkipThresh           int     // minimum occurrences for a canonical answer to be considered; 0 disables
	AnsThresh            float64
	ClueThresh           float64
	SimplifyAnswers      bool
	Ascending            bool
}

// DefaultOptions returns the engine's defaults: the scalar thresholds
// from package threshold, a skip threshold of 3, simplified answers and
// ascending order. The CLI uses its own clue threshold default (0.55).
func DefaultOptions() Options {
	return Options{
		SkipThresh:      3,
		AnsThresh:       threshold.DefaultAnswerThreshold,
		ClueThresh:      threshold.DefaultClueThreshold,
		SimplifyAnswers: true,
		Ascending:       true,
	}
}

type row struct {
	clue.Record
	simpleAnswer string
	clueBag      map[string]struct{}
	bagSize      int
	numericBag   []int32
	uqIdx        int
}

// Run performs the full setup and scan described in spec.md §4.5 and
// returns the surviving records, in the sort order setup established.
// A corpus that is empty after subsetting is not an error: Run
// returns (nil, nil).
func Run(ctx context.Context, recs []clue.Record, opts Options) ([]clue.Record, error) {
	if opts.AnsThresh < 0 || opts.AnsThresh > 1 || opts.ClueThresh < 0 || opts.ClueThresh > 1 {
		return nil, ErrThresholdOutOfRange
	}

	runID := uuid.NewString()
	log := slog.With("run_id", runID)

	subset := Subset(recs, opts.AnswerTerm, opts.ClueTerm)
	if len(subset) == 0 {
		log.Info("empty corpus after subsetting")
		return nil, nil
	}

	rows := make([]row, 0, len(subset))
	for _, r := range subset {
		if strings.TrimSpace(r.Answer) == "" {
			continue // missing answer: dropped in setup, never an error
		}
		rows = append(rows, row{Record: r})
	}
	if len(rows) == 0 {
		log.Info("empty corpus after dropping missing answers")
		return nil, nil
	}

	for i := range rows {
		if opts.SimplifyAnswers {
			rows[i].simpleAnswer = normalize.Answer(rows[i].Answer)
		} else {
			rows[i].simpleAnswer = rows[i].Answer
		}
	}

	freqs := make(map[string]int, len(rows))
	for _, r := range rows {
		freqs[r.simpleAnswer]++
	}

	for i := range rows {
		rows[i].clueBag = normalize.ClueBag(rows[i].Clue)
		rows[i].bagSize = len(rows[i].clueBag)
	}

	sortRows(rows, opts.Ascending)

	bags := util.TransformSlice(rows, func(r row) map[string]struct{} { return r.clueBag })
	bagSizes := util.TransformSlice(rows, func(r row) int { return r.bagSize })
	vocabTable := vocab.Build(bags)
	width := vocab.Width(bagSizes)
	for i := range rows {
		rows[i].numericBag = vocabTable.Encode(rows[i].clueBag, width)
	}

	uniqueAnswers := uniqueStrings(rows)
	idx, err := simindex.Build(uniqueAnswers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexBuildFailure, err)
	}
	alphabetical := idx.Unique()
	for i := range rows {
		rows[i].uqIdx = sort.SearchStrings(alphabetical, rows[i].simpleAnswer)
	}

	log.Info("engine setup complete", "rows", len(rows), "unique_answers", len(alphabetical), "vocab_size", vocabTable.Len())

	deleted := make([]bool, len(rows))
	var prevAnswer string
	havePrev := false
	ansSimMask := make([]bool, len(rows))

	for i := range rows {
		if deleted[i] {
			continue
		}
		if rows[i].simpleAnswer == "" {
			continue // near-empty canonical answer: un-blockable by design (spec.md §9)
		}
		if opts.SkipThresh > 0 && freqs[rows[i].simpleAnswer] < opts.SkipThresh {
			continue
		}

		if !havePrev || rows[i].simpleAnswer != prevAnswer {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			scores := idx.Query(rows[i].simpleAnswer)
			for k := range rows {
				ansSimMask[k] = scores[rows[k].uqIdx] > opts.AnsThresh
			}
			prevAnswer = rows[i].simpleAnswer
			havePrev = true
		}

		for k := 0; k <= i; k++ {
			ansSimMask[k] = false
		}

		for j := range rows {
			if !ansSimMask[j] {
				continue
			}
			overlap := clueOverlap(rows[i], rows[j])
			if overlap <= opts.ClueThresh {
				continue
			}
			switch {
			case rows[j].bagSize < rows[i].bagSize && !deleted[j]:
				deleted[j] = true
			case rows[j].bagSize > rows[i].bagSize:
				deleted[i] = true
			}
		}
	}

	out := make([]clue.Record, 0, len(rows))
	for i, r := range rows {
		if !deleted[i] {
			out = append(out, r.Record)
		}
	}
	log.Info("redundancy removal complete", "kept", len(out), "deleted", len(rows)-len(out))
	return out, nil
}

func sortRows(rows []row, ascending bool) {
	sort.Slice(rows, func(a, b int) bool {
		if rows[a].simpleAnswer != rows[b].simpleAnswer {
			if ascending {
				return rows[a].simpleAnswer < rows[b].simpleAnswer
			}
			return rows[a].simpleAnswer > rows[b].simpleAnswer
		}
		if ascending {
			return rows[a].Clue < rows[b].Clue
		}
		return rows[a].Clue > rows[b].Clue
	})
}

func uniqueStrings(rows []row) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.simpleAnswer]; !ok {
			seen[r.simpleAnswer] = struct{}{}
			out = append(out, r.simpleAnswer)
		}
	}
	return out
}

// clueOverlap computes the overlap coefficient between rows i and j's
// clue bags via numeric-bag membership tests (spec.md §4.3's contract):
// |bag_i ∩ bag_j| / min(|bag_i|, |bag_j|), with 0/0 treated as 1.
func clueOverlap(a, b row) float64 {
	minSz := a.bagSize
	if b.bagSize < minSz {
		minSz = b.bagSize
	}
	if minSz == 0 {
		return 1.0
	}

	bMembers := make(map[int32]struct{}, b.bagSize)
	for _, w := range b.numericBag[:b.bagSize] {
		bMembers[w] = struct{}{}
	}
	shared := 0
	for _, w := range a.numericBag[:a.bagSize] {
		if _, ok := bMembers[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(minSz)
}
