package apply

import (
	"context"
	"testing"

	"github.com/halvard/graphgram/graph"
	"github.com/halvard/graphgram/match"
	"github.com/halvard/graphgram/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagp(s string) *string { return &s }

func firstMatch(t *testing.T, g, l *graph.Graph, rl *rule.Rule) *match.Match {
	t.Helper()
	f := match.NewFinder(g, match.Config{})
	require.NoError(t, f.LeftSide(l))
	require.NoError(t, f.RightSide(rl))
	matches, _, err := f.Matches(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	return matches[0]
}

// A rule that only retags: L = A; A--B (untagged), R = A[kept]; A--B[done].
func TestApplyRetagOnlyNoStructuralChange(t *testing.T) {
	g := graph.New(false)
	require.NoError(t, g.AddNode(0, nil))
	require.NoError(t, g.AddNode(1, nil))
	require.NoError(t, g.AddEdge(0, 1, nil))

	l := graph.New(false)
	require.NoError(t, l.AddNode(0, nil))
	require.NoError(t, l.AddNode(1, nil))
	require.NoError(t, l.AddEdge(0, 1, nil))

	r := graph.New(false)
	require.NoError(t, r.AddNode(0, tagp("kept")))
	require.NoError(t, r.AddNode(1, nil))
	require.NoError(t, r.AddEdge(0, 1, tagp("done")))

	rl, err := rule.New(l, r, map[int]int{0: 0, 1: 1})
	require.NoError(t, err)

	m := firstMatch(t, g, l, rl)
	res, err := Apply(g, m, rl)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Graph.NumNodes())
	ga, _ := m.Node(0)
	gb, _ := m.Node(1)
	tag, _ := res.Graph.NodeTag(ga)
	require.NotNil(t, tag)
	assert.Equal(t, "kept", *tag)
	etag, ok := res.Graph.EdgeTag(ga, gb)
	require.True(t, ok)
	require.NotNil(t, etag)
	assert.Equal(t, "done", *etag)
}

// Rule: A[target]; A--B => B, applied where A's image has exactly one
// neighbor. A's image and the connecting edge are removed; B survives.
func TestApplyDeletesNodeAndItsEdges(t *testing.T) {
	target := tagp("target")
	g := graph.New(false)
	require.NoError(t, g.AddNode(0, target))
	require.NoError(t, g.AddNode(1, nil))
	require.NoError(t, g.AddEdge(0, 1, nil))

	l := graph.New(false)
	require.NoError(t, l.AddNode(0, target))
	require.NoError(t, l.AddNode(1, nil))
	require.NoError(t, l.AddEdge(0, 1, nil))

	r := graph.New(false)
	require.NoError(t, r.AddNode(0, nil))

	rl, err := rule.New(l, r, map[int]int{1: 0})
	require.NoError(t, err)

	m := firstMatch(t, g, l, rl)
	res, err := Apply(g, m, rl)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Graph.NumNodes())
	gb, _ := m.Node(1)
	assert.True(t, res.Graph.HasNode(gb))
	assert.False(t, res.Graph.HasNode(0))
	assert.Empty(t, res.Graph.Edges())
}

// L = A[target]; A--B; A--C; A--D, R = single star-tagged node, with
// B,C,D all merging into it and A deleted. G's hub (A's image) has
// exactly three neighbors with no edges among themselves, so after the
// hub and its edges are gone, merging collapses the three survivors into
// one isolated node.
func TestApplyMergeAfterDeleteLeavesSingleStarNode(t *testing.T) {
	target := tagp("target")
	star := tagp("star")

	g := graph.New(false)
	require.NoError(t, g.AddNode(0, target)) // hub
	require.NoError(t, g.AddNode(1, nil))
	require.NoError(t, g.AddNode(2, nil))
	require.NoError(t, g.AddNode(3, nil))
	require.NoError(t, g.AddEdge(0, 1, nil))
	require.NoError(t, g.AddEdge(0, 2, nil))
	require.NoError(t, g.AddEdge(0, 3, nil))

	l := graph.New(false)
	require.NoError(t, l.AddNode(0, target)) // A
	require.NoError(t, l.AddNode(1, nil))    // B
	require.NoError(t, l.AddNode(2, nil))    // C
	require.NoError(t, l.AddNode(3, nil))    // D
	require.NoError(t, l.AddEdge(0, 1, nil))
	require.NoError(t, l.AddEdge(0, 2, nil))
	require.NoError(t, l.AddEdge(0, 3, nil))

	r := graph.New(false)
	require.NoError(t, r.AddNode(0, star))

	rl, err := rule.New(l, r, map[int]int{1: 0, 2: 0, 3: 0})
	require.NoError(t, err)

	m := firstMatch(t, g, l, rl)
	res, err := Apply(g, m, rl)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Graph.NumNodes())
	assert.Empty(t, res.Graph.Edges())
	survivor := res.Graph.Nodes()[0]
	tag, _ := res.Graph.NodeTag(survivor)
	require.NotNil(t, tag)
	assert.Equal(t, "star", *tag)
}

// L = A; B; A--B, R = single node (A and B merged, the A-B edge becomes
// a self-loop on the surviving node).
func TestApplyMergeOfAdjacentNodesCreatesSelfLoop(t *testing.T) {
	g := graph.New(false)
	require.NoError(t, g.AddNode(0, nil))
	require.NoError(t, g.AddNode(1, nil))
	require.NoError(t, g.AddEdge(0, 1, nil))

	l := graph.New(false)
	require.NoError(t, l.AddNode(0, nil))
	require.NoError(t, l.AddNode(1, nil))
	require.NoError(t, l.AddEdge(0, 1, nil))

	r := graph.New(false)
	require.NoError(t, r.AddNode(0, nil))
	require.NoError(t, r.AddEdge(0, 0, nil)) // R keeps the A-B edge as a self-loop

	rl, err := rule.New(l, r, map[int]int{0: 0, 1: 0})
	require.NoError(t, err)

	m := firstMatch(t, g, l, rl)
	res, err := Apply(g, m, rl)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Graph.NumNodes())
	survivor := res.Graph.Nodes()[0]
	assert.True(t, res.Graph.HasSelfLoop(survivor))
}
