package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvard/graphgram/graph"
)

func TestSVGContainsOneCirclePerNode(t *testing.T) {
	g := graph.New(false)
	tag := "hub"
	require.NoError(t, g.AddNode(0, &tag))
	require.NoError(t, g.AddNode(1, nil))
	require.NoError(t, g.AddEdge(0, 1, nil))

	out := SVG(g)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Equal(t, 2, strings.Count(out, "<circle"))
	assert.Contains(t, out, ">hub<")
	assert.Contains(t, out, "<line")
}

func TestSVGDirectedGraphHasArrowMarker(t *testing.T) {
	g := graph.New(true)
	require.NoError(t, g.AddNode(0, nil))
	require.NoError(t, g.AddNode(1, nil))
	require.NoError(t, g.AddEdge(0, 1, nil))

	out := SVG(g)
	assert.Contains(t, out, "<marker")
	assert.Contains(t, out, "marker-end")
}

func TestSVGSelfLoopDrawsExtraCircle(t *testing.T) {
	g := graph.New(false)
	require.NoError(t, g.AddNode(0, nil))
	require.NoError(t, g.AddEdge(0, 0, nil))

	out := SVG(g)
	assert.Equal(t, 2, strings.Count(out, "<circle"))
}

func TestSVGSingleNodeGraph(t *testing.T) {
	g := graph.New(false)
	require.NoError(t, g.AddNode(0, nil))

	out := SVG(g)
	assert.Contains(t, out, "<circle")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}
