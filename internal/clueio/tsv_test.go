package clueio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cluedef/cluedef/internal/clue"
)

func TestWriteThenReadRoundTrip(t *testing.T) {
	recs := []clue.Record{
		{Clue: "wrote The Bell Jar", Answer: "Sylvia Plath", Tags: "poetry"},
		{Clue: "", Answer: "Homer", Tags: ""},
	}

	path := filepath.Join(t.TempDir(), "clues.tsv")
	assert.NoError(t, WriteTSV(path, recs))

	got, err := ReadTSV(path)
	assert.NoError(t, err)
	assert.Equal(t, recs, got)
}

func TestWriteUsesNanTokenForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clues.tsv")
	assert.NoError(t, WriteTSV(path, []clue.Record{{Clue: "", Answer: "", Tags: ""}}))

	buf, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(buf), "nan\tnan\t")
}

func TestReadMissingRequiredColumnErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tsv")
	assert.NoError(t, os.WriteFile(path, []byte("clue\tanswer_typo\nfoo\tbar\n"), 0o644))

	_, err := ReadTSV(path)
	assert.Error(t, err)
}

func TestReadEmptyFileYieldsNoRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tsv")
	assert.NoError(t, os.WriteFile(path, nil, 0o644))

	recs, err := ReadTSV(path)
	assert.NoError(t, err)
	assert.Nil(t, recs)
}
