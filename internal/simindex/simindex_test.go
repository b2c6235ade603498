package simindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRejectsEmpty(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrEmptyIndex)
}

func TestQueryAlignedToAlphabeticalOrder(t *testing.T) {
	idx, err := Build([]string{"plath", "dostoevsky", "austen"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"austen", "dostoevsky", "plath"}, idx.Unique())

	scores := idx.Query("plath")
	assert.Equal(t, 3, len(scores))
	// plath vs plath must be the maximum score, at the "plath" slot.
	plathIdx := 2
	for i, s := range scores {
		if i != plathIdx {
			assert.LessOrEqual(t, s, scores[plathIdx])
		}
	}
	assert.Equal(t, 1.0, scores[plathIdx])
}

func TestJaroEmptyStringConventions(t *testing.T) {
	idx, err := Build([]string{""})
	assert.NoError(t, err)
	scores := idx.Query("")
	assert.Equal(t, []float64{1.0}, scores)

	idx2, err := Build([]string{"plath"})
	assert.NoError(t, err)
	scores2 := idx2.Query("")
	assert.Equal(t, []float64{0.0}, scores2)
}

func TestFuzzyAnswerMatch(t *testing.T) {
	idx, err := Build([]string{"fyodordostoevsky", "fyodordostoyevsky"})
	assert.NoError(t, err)
	scores := idx.Query("fyodordostoevsky")
	for _, s := range scores {
		assert.Greater(t, s, 0.70)
	}
}
