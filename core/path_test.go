package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kexaron/algograph/core"
)

func TestPathFromParents_SameEndpoints(t *testing.T) {
	path, ok := core.PathFromParents(nil, 4, 4)
	assert.True(t, ok)
	assert.Equal(t, []int{4}, path)
}

func TestPathFromParents_Chain(t *testing.T) {
	// 0 -> 5 -> 2 -> 3 discovery chain.
	parents := map[int]int{5: 0, 2: 5, 3: 2}
	path, ok := core.PathFromParents(parents, 0, 3)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 5, 2, 3}, path)
}

func TestPathFromParents_DestinationNeverReached(t *testing.T) {
	parents := map[int]int{1: 0}
	path, ok := core.PathFromParents(parents, 0, 9)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestPathFromParents_MalformedCycle(t *testing.T) {
	// A table that never closes on src must not loop forever.
	parents := map[int]int{1: 2, 2: 1}
	path, ok := core.PathFromParents(parents, 0, 1)
	assert.False(t, ok)
	assert.Nil(t, path)
}
