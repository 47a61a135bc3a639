package matrix

import "github.com/halvard/graphgram/graph"

// Adjacency is a dense boolean adjacency cache over a compacted graph's
// node ids {0,...,n-1}.
type Adjacency struct {
	n        int
	directed bool
	out      [][]bool
	in       [][]bool // nil for undirected; out doubles as the symmetric view
	self     []bool
}

// Build constructs an Adjacency over g. g's node ids must already be the
// dense range {0,...,g.NumNodes()-1}, as produced by graph.Compact — the
// only caller this package is meant to serve. Build panics if g is nil
// or a node id falls outside that range, since either is a programming
// error in the caller, never a condition a user's graph can trigger.
func Build(g *graph.Graph) *Adjacency {
	if g == nil {
		panic("matrix: Build called with a nil graph")
	}

	n := g.NumNodes()
	a := &Adjacency{
		n:        n,
		directed: g.Directed(),
		out:      newBoolMatrix(n),
		self:     make([]bool, n),
	}
	if a.directed {
		a.in = newBoolMatrix(n)
	}

	for _, id := range g.Nodes() {
		if id < 0 || id >= n {
			panic("matrix: Build called with a non-compacted graph")
		}
	}
	for _, e := range g.Edges() {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			panic("matrix: Build called with a non-compacted graph")
		}
		a.out[e.From][e.To] = true
		if a.directed {
			a.in[e.To][e.From] = true
		} else {
			a.out[e.To][e.From] = true
		}
		if e.From == e.To {
			a.self[e.From] = true
		}
	}
	return a
}

func newBoolMatrix(n int) [][]bool {
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	return m
}

// N returns the node count this cache was built over.
func (a *Adjacency) N() int { return a.n }

// HasSelfLoop reports whether i has a self-loop edge.
func (a *Adjacency) HasSelfLoop(i int) bool { return a.self[i] }

// Neighbors returns the sorted set of nodes adjacent to i in either
// direction. For an undirected graph this is OutNeighbors; for a
// directed one it is the union of OutNeighbors and InNeighbors.
func (a *Adjacency) Neighbors(i int) []int {
	if !a.directed {
		return rowToSlice(a.out[i])
	}
	union := make([]bool, a.n)
	for j := 0; j < a.n; j++ {
		union[j] = a.out[i][j] || a.in[i][j]
	}
	return rowToSlice(union)
}

// OutNeighbors returns the sorted set of nodes reachable from i via an
// outgoing edge. For an undirected graph this is identical to Neighbors.
func (a *Adjacency) OutNeighbors(i int) []int { return rowToSlice(a.out[i]) }

// InNeighbors returns the sorted set of nodes with an outgoing edge into
// i. For an undirected graph this is identical to Neighbors.
func (a *Adjacency) InNeighbors(i int) []int {
	if !a.directed {
		return rowToSlice(a.out[i])
	}
	return rowToSlice(a.in[i])
}

func rowToSlice(row []bool) []int {
	var out []int
	for j, present := range row {
		if present {
			out = append(out, j)
		}
	}
	return out
}
