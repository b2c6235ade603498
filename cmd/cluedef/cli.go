package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/cluedef/cluedef"
	"github.com/cluedef/cluedef/internal/engine"
	"github.com/cluedef/cluedef/internal/threshold"
)

var version string

// parseOptions mirrors cmd/mysqldef's flag layout: a flags struct
// decoded by go-flags, then translated into the package's own Options.
func parseOptions(args []string) *cluedef.Options {
	var opts struct {
		Output          string  `short:"o" long:"output" description:"Where to write the deduplicated TSV" value-name:"out_file" default:"deduped.tsv"`
		Config          string  `long:"config" description:"YAML file overriding ans_thresh, clue_thresh, skip_thresh, simplify_answers, ascending"`
		AnsThresh       float64 `long:"ans-thresh" description:"Canonical-answer Jaro similarity cutoff" value-name:"float" default:"0.70"`
		ClueThresh      float64 `long:"clue-thresh" description:"Clue-overlap cutoff" value-name:"float" default:"0.55"`
		SkipThresh      int     `long:"skip-thresh" description:"Minimum occurrences of a canonical answer before it is compared" value-name:"count" default:"3"`
		SimplifyAnswers bool    `long:"simplify-answers" description:"Canonicalize answers before blocking" default:"true"`
		Descending      bool    `long:"descending" description:"Sort descending instead of the default ascending"`
		AnswerFilter    string  `long:"answer" description:"Only consider rows whose answer contains this substring" value-name:"substring"`
		ClueFilter      string  `long:"clue" description:"Only consider rows whose clue contains this substring" value-name:"substring"`
		Debug           bool    `long:"debug" description:"Dump the resolved options before running"`
		Help            bool    `long:"help" description:"Show this help"`
		Version         bool    `long:"version" description:"Show this version"`
	}

	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options] clues.tsv"
	args, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}
	if len(args) == 0 {
		fmt.Print("No clue file is specified!\n\n")
		parser.WriteHelp(os.Stdout)
		os.Exit(1)
	} else if len(args) > 1 {
		fmt.Printf("Multiple clue files are given: %v\n\n", args)
		parser.WriteHelp(os.Stdout)
		os.Exit(1)
	}

	ansFilter, clueFilter := resolveFilters(opts.AnswerFilter, opts.ClueFilter)

	result := &cluedef.Options{
		InputFile:  args[0],
		OutputFile: opts.Output,
		ConfigFile: opts.Config,
		AnswerTerm: ansFilter,
		ClueTerm:   clueFilter,
		Options: engine.Options{
			AnsThresh:       clampedOrDefault(opts.AnsThresh, threshold.DefaultAnswerThreshold),
			ClueThresh:      clampedOrDefault(opts.ClueThresh, 0.55),
			SkipThresh:      opts.SkipThresh,
			SimplifyAnswers: opts.SimplifyAnswers,
			Ascending:       !opts.Descending,
		},
	}

	if opts.Debug {
		dumpOptions(result)
	}
	return result
}

func clampedOrDefault(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

// resolveFilters prompts interactively for both filters when neither
// was given on the command line; if either flag is set, no prompt is
// shown. The prompts are also skipped when stdin isn't a terminal (CI,
// pipes, scripted runs).
func resolveFilters(ansFlag, clueFlag string) (*string, *string) {
	ans := ansFlag
	clue := clueFlag

	if ans == "" && clue == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Print("answer substring filter (empty = none): ")
		if scanner.Scan() {
			ans = strings.TrimSpace(scanner.Text())
		}
		fmt.Print("clue substring filter (empty = none): ")
		if scanner.Scan() {
			clue = strings.TrimSpace(scanner.Text())
		}
	}

	var ansPtr, cluePtr *string
	if ans != "" {
		ansPtr = &ans
	}
	if clue != "" {
		cluePtr = &clue
	}
	return ansPtr, cluePtr
}
