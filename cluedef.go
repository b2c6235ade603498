// Package cluedef wires the TSV collaborator, optional YAML config,
// and the redundancy engine into a single call, the way the teacher's
// root package wires a database adapter and a DDL parser into Run.
package cluedef

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cluedef/cluedef/internal/clue"
	"github.com/cluedef/cluedef/internal/clueconfig"
	"github.com/cluedef/cluedef/internal/clueio"
	"github.com/cluedef/cluedef/internal/engine"
)

// Options is the CLI-facing configuration: an input/output file pair,
// an optional YAML config path, and the subsetter's search terms.
type Options struct {
	InputFile  string
	OutputFile string
	ConfigFile string
	AnswerTerm *string
	ClueTerm   *string

	engine.Options
}

// Run reads InputFile, removes redundant clues per the resolved
// engine options, and writes the survivors to OutputFile.
func Run(ctx context.Context, opts Options) error {
	recs, err := clueio.ReadTSV(opts.InputFile)
	if err != nil {
		return fmt.Errorf("cluedef: %w", err)
	}

	cfg, err := clueconfig.Parse(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("cluedef: %w", err)
	}
	engOpts := cfg.Merge(opts.Options)
	engOpts.AnswerTerm = opts.AnswerTerm
	engOpts.ClueTerm = opts.ClueTerm

	slog.Info("starting redundancy removal", "input", opts.InputFile, "rows", len(recs))
	survivors, err := engine.Run(ctx, recs, engOpts)
	if err != nil {
		return fmt.Errorf("cluedef: %w", err)
	}

	if err := clueio.WriteTSV(opts.OutputFile, nonNil(survivors)); err != nil {
		return fmt.Errorf("cluedef: %w", err)
	}
	slog.Info("wrote deduplicated clues", "output", opts.OutputFile, "rows", len(survivors))
	return nil
}

func nonNil(recs []clue.Record) []clue.Record {
	if recs == nil {
		return []clue.Record{}
	}
	return recs
}
