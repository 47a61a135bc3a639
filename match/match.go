package match

import (
	"fmt"
	"sort"
	"strings"
)

// Match is a graph morphism: a mapping from left-pattern node identifiers
// to host-graph node identifiers. It starts mutable (built up one node at
// a time by the finder) and becomes immutable once freeze is called,
// mirroring the hash-on-first-use discipline of the reference
// implementation this package's encoding is modeled on.
type Match struct {
	nodeMap map[int]int
	frozen  bool
}

func newMatch() *Match {
	return &Match{nodeMap: make(map[int]int)}
}

// addMap records leftNode => graphNode. Returns a MatchError if the
// match is already frozen.
func (m *Match) addMap(leftNode, graphNode int) error {
	if m.frozen {
		return newMatchError("match modified after it was frozen")
	}
	m.nodeMap[leftNode] = graphNode
	return nil
}

// Node returns the host-graph node a left-pattern node maps to.
func (m *Match) Node(leftNode int) (int, bool) {
	g, ok := m.nodeMap[leftNode]
	return g, ok
}

// Edge returns the host-graph endpoints a left-pattern edge maps to.
func (m *Match) Edge(a, b int) (ga, gb int, ok bool) {
	ga, okA := m.nodeMap[a]
	gb, okB := m.nodeMap[b]
	return ga, gb, okA && okB
}

// NodeMap returns a copy of the underlying left-to-host mapping.
func (m *Match) NodeMap() map[int]int {
	out := make(map[int]int, len(m.nodeMap))
	for k, v := range m.nodeMap {
		out[k] = v
	}
	return out
}

// freeze locks the match against further mutation and returns a stable
// key, usable to deduplicate matches produced by a solver that may
// revisit the same assignment more than once.
func (m *Match) freeze() string {
	m.frozen = true
	return m.key()
}

func (m *Match) key() string {
	keys := make([]int, 0, len(m.nodeMap))
	for k := range m.nodeMap {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%d=%d;", k, m.nodeMap[k])
	}
	return b.String()
}

func (m *Match) String() string {
	keys := make([]int, 0, len(m.nodeMap))
	for k := range m.nodeMap {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d=>%d", k, m.nodeMap[k]))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
