package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurjectiveMappingsTooFewSlots(t *testing.T) {
	assert.Nil(t, SurjectiveMappings(1, []int{1, 2}))
}

func TestSurjectiveMappingsSingleSlotSingleValue(t *testing.T) {
	got := SurjectiveMappings(1, []int{7})
	require.Len(t, got, 1)
	assert.Equal(t, []int{7}, got[0])
}

func TestSurjectiveMappingsCoversEveryValue(t *testing.T) {
	got := SurjectiveMappings(2, []int{1, 2})
	require.Len(t, got, 2)
	for _, tup := range got {
		present := map[int]bool{tup[0]: true, tup[1]: true}
		assert.True(t, present[1])
		assert.True(t, present[2])
	}
}

func TestSurjectiveMappingsThreeSlotsTwoValues(t *testing.T) {
	got := SurjectiveMappings(3, []int{1, 2})
	// every length-3 sequence over {1,2} that uses both values:
	// 2^3 - 2 (all-1s, all-2s) = 6
	require.Len(t, got, 6)
	seen := make(map[string]bool)
	for _, tup := range got {
		present := map[int]bool{}
		for _, v := range tup {
			present[v] = true
		}
		assert.True(t, present[1])
		assert.True(t, present[2])
		key := keyOf(tup)
		assert.False(t, seen[key], "duplicate tuple %v", tup)
		seen[key] = true
	}
}

func keyOf(tup []int) string {
	out := ""
	for _, v := range tup {
		out += string(rune('0' + v))
	}
	return out
}
