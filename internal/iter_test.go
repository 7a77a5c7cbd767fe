package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var first []int
	for v := range seq {
		first = append(first, v)
		if v == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, first)

	assert.Empty(slices.Collect(IterSeqConcat[int]()))
}

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(maps.All(map[string]int{"a": 1}), maps.All(map[string]int{"b": 2}))
	assert.Equal(map[string]int{"a": 1, "b": 2}, maps.Collect(seq))
}
