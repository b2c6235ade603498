package main

import (
	"flag"
	"fmt"

	"github.com/cluedef/cluedef"
	"github.com/cluedef/cluedef/internal/engine"
)

// parseOptionsLegacy is a superseded flag.FlagSet-based parser kept
// around the way the teacher kept a pre-go-flags cli.go: not wired
// into main, but a real, adapted, still-buildable alternative entry
// point, exercised by its own test.
func parseOptionsLegacy(args []string) (*cluedef.Options, error) {
	fs := flag.NewFlagSet("cluedef", flag.ContinueOnError)
	output := fs.String("output", "deduped.tsv", "where to write the deduplicated TSV")
	config := fs.String("config", "", "YAML file overriding thresholds")
	ansThresh := fs.Float64("ans-thresh", 0.70, "canonical-answer Jaro similarity cutoff")
	clueThresh := fs.Float64("clue-thresh", 0.55, "clue-overlap cutoff")
	skipThresh := fs.Int("skip-thresh", 3, "minimum occurrences before comparison")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() == 0 {
		return nil, fmt.Errorf("no clue file is specified")
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("multiple clue files are given: %v", fs.Args())
	}

	return &cluedef.Options{
		InputFile:  fs.Arg(0),
		OutputFile: *output,
		ConfigFile: *config,
		Options: engine.Options{
			AnsThresh:       *ansThresh,
			ClueThresh:      *clueThresh,
			SkipThresh:      *skipThresh,
			SimplifyAnswers: true,
			Ascending:       true,
		},
	}, nil
}
