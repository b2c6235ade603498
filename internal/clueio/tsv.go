// Package clueio is the thin TSV collaborator for the CLI harness.
// The core engine is format-agnostic; this package exists only to
// give cmd/cluedef something to read from and write to.
package clueio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cluedef/cluedef/internal/clue"
)

const missingToken = "nan"

var columns = []string{"clue", "answer", "tags"}

// ReadTSV reads a header-row TSV file of clue/answer/tags columns.
// Extra columns are preserved in the in-memory row set only insofar as
// spec.md requires: the core (and this reader) only carry clue,
// answer, and tags forward, matching the reference projection.
func ReadTSV(path string) ([]clue.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("clueio: open %s: %w", path, err)
	}
	defer f.Close()

	// encoding/csv escapes via doubled quote characters, not a backslash
	// escape character; this collaborator is an out-of-scope CLI
	// convenience, not the core engine, so that divergence is accepted
	// rather than worked around with a hand-rolled tokenizer.
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("clueio: read header of %s: %w", path, err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, fmt.Errorf("clueio: %s: %w", path, err)
	}

	var recs []clue.Record
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("clueio: read row of %s: %w", path, err)
		}
		rec := clue.Record{
			Clue:   field(fields, idx["clue"]),
			Answer: field(fields, idx["answer"]),
			Tags:   field(fields, idx["tags"]),
		}
		if rec.Clue == missingToken {
			rec.Clue = ""
		}
		if rec.Answer == missingToken {
			rec.Answer = ""
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// WriteTSV writes recs as a header-row TSV file, using the literal
// token "nan" for missing clue/answer values, per spec.md §6.
func WriteTSV(path string, recs []clue.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("clueio: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	defer w.Flush()

	if err := w.Write(columns); err != nil {
		return fmt.Errorf("clueio: write header to %s: %w", path, err)
	}
	for _, r := range recs {
		row := []string{nanIfEmpty(r.Clue), nanIfEmpty(r.Answer), r.Tags}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("clueio: write row to %s: %w", path, err)
		}
	}
	return w.Error()
}

func nanIfEmpty(s string) string {
	if s == "" {
		return missingToken
	}
	return s
}

func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range []string{"clue", "answer"} {
		if _, ok := idx[want]; !ok {
			return nil, fmt.Errorf("missing required column %q", want)
		}
	}
	if _, ok := idx["tags"]; !ok {
		idx["tags"] = -1
	}
	return idx, nil
}
