package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAddMapAndFreeze(t *testing.T) {
	m := newMatch()
	require.NoError(t, m.addMap(0, 5))
	require.NoError(t, m.addMap(1, 6))

	g, ok := m.Node(0)
	require.True(t, ok)
	assert.Equal(t, 5, g)

	a, b, ok := m.Edge(0, 1)
	require.True(t, ok)
	assert.Equal(t, 5, a)
	assert.Equal(t, 6, b)

	key := m.freeze()
	assert.Equal(t, "0=5;1=6;", key)
	assert.Error(t, m.addMap(2, 7))
}

func TestMatchNodeMapIsACopy(t *testing.T) {
	m := newMatch()
	require.NoError(t, m.addMap(0, 1))
	cp := m.NodeMap()
	cp[0] = 99
	g, _ := m.Node(0)
	assert.Equal(t, 1, g)
}
