package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bagOf(words ...string) map[string]struct{} {
	b := make(map[string]struct{}, len(words))
	for _, w := range words {
		b[w] = struct{}{}
	}
	return b
}

func TestWidthIsMaxBagSize(t *testing.T) {
	assert.Equal(t, 5, Width([]int{1, 5, 3, 0}))
	assert.Equal(t, 0, Width(nil))
}

func TestEncodeRoundTrip(t *testing.T) {
	bags := []map[string]struct{}{
		bagOf("poet", "daddy", "ariel"),
		bagOf("daddy", "hughes"),
	}
	tbl := Build(bags)
	width := Width([]int{len(bags[0]), len(bags[1])})

	for _, bag := range bags {
		row := tbl.Encode(bag, width)
		got := make(map[string]struct{})
		for i := 0; i < len(bag); i++ {
			got[tbl.Word(row[i])] = struct{}{}
		}
		assert.Equal(t, bag, got)
		for i := len(bag); i < width; i++ {
			assert.Equal(t, Padding, row[i])
		}
	}
}

func TestEncodeEmptyBag(t *testing.T) {
	tbl := Build([]map[string]struct{}{bagOf("a")})
	row := tbl.Encode(bagOf(), 3)
	for _, v := range row {
		assert.Equal(t, Padding, v)
	}
}

func TestIntersectionViaMembership(t *testing.T) {
	bags := []map[string]struct{}{
		bagOf("poet", "daddy", "ariel", "bell"),
		bagOf("daddy", "bell", "hughes"),
	}
	tbl := Build(bags)
	width := Width([]int{4, 3})
	rowA := tbl.Encode(bags[0], width)
	rowB := tbl.Encode(bags[1], width)

	shared := 0
	memberB := make(map[int32]struct{}, 3)
	for i := 0; i < 3; i++ {
		memberB[rowB[i]] = struct{}{}
	}
	for i := 0; i < 4; i++ {
		if _, ok := memberB[rowA[i]]; ok {
			shared++
		}
	}
	assert.Equal(t, 2, shared) // daddy, bell
}
