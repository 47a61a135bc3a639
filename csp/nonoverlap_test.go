package csp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonoverlappingSetsExcludesUsed(t *testing.T) {
	p := NewProblem()
	p.AddVariable(0, []int{1, 2, 3})
	p.AddConstraint(NewNonoverlappingSets([]int{2}), []Var{0})

	sols := p.Solutions(context.Background())
	var got []int
	for {
		sol, ok := sols.Next()
		if !ok {
			break
		}
		got = append(got, sol[0])
	}
	assert.ElementsMatch(t, []int{1, 3}, got)
}

func TestNonoverlappingSetsPreProcessRemovesWhenEmpty(t *testing.T) {
	c := NewNonoverlappingSets(nil)
	remove, infeasible := c.PreProcess(nil, nil)
	assert.True(t, remove)
	assert.False(t, infeasible)
}

func TestNonoverlappingUnorderedPairsExcludesUsedPair(t *testing.T) {
	p := NewProblem()
	p.AddVariable(0, []int{1, 2})
	p.AddVariable(1, []int{1, 2})
	p.AddConstraint(AllDifferent{}, []Var{0, 1})
	p.AddConstraint(NewNonoverlappingUnorderedPairs([][2]int{{1, 2}}), []Var{0, 1})

	sols := p.Solutions(context.Background())
	_, ok := sols.Next()
	require.False(t, ok)
}
