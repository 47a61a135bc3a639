package matrix_test

import (
	"reflect"
	"testing"

	"github.com/halvard/graphgram/graph"
	"github.com/halvard/graphgram/internal/matrix"
)

func TestBuildPanicsOnNilGraph(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil graph, got none")
		}
	}()
	matrix.Build(nil)
}

func TestBuildPanicsOnNonCompactedGraph(t *testing.T) {
	g := graph.New(false)
	_ = g.AddNode(5, nil)
	_ = g.AddNode(9, nil)
	_ = g.AddEdge(5, 9, nil)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a non-compacted graph, got none")
		}
	}()
	matrix.Build(g)
}

func TestAdjacencyUndirected(t *testing.T) {
	g := graph.New(false)
	for i := 0; i < 4; i++ {
		_ = g.AddNode(i, nil)
	}
	_ = g.AddEdge(0, 1, nil)
	_ = g.AddEdge(1, 2, nil)
	_ = g.AddEdge(3, 3, nil)

	a := matrix.Build(g)

	if got := a.Neighbors(1); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("Neighbors(1) = %v, want [0 2]", got)
	}
	if got := a.OutNeighbors(0); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("OutNeighbors(0) = %v, want [1]", got)
	}
	if got := a.InNeighbors(0); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("InNeighbors(0) = %v, want [1]", got)
	}
	if !a.HasSelfLoop(3) {
		t.Error("HasSelfLoop(3) = false, want true")
	}
	if a.HasSelfLoop(0) {
		t.Error("HasSelfLoop(0) = true, want false")
	}
}

func TestAdjacencyDirected(t *testing.T) {
	g := graph.New(true)
	for i := 0; i < 3; i++ {
		_ = g.AddNode(i, nil)
	}
	_ = g.AddEdge(0, 1, nil)
	_ = g.AddEdge(2, 0, nil)

	a := matrix.Build(g)

	if got := a.OutNeighbors(0); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("OutNeighbors(0) = %v, want [1]", got)
	}
	if got := a.InNeighbors(0); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("InNeighbors(0) = %v, want [2]", got)
	}
	if got := a.Neighbors(0); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Neighbors(0) = %v, want [1 2]", got)
	}
}

func TestAdjacencyMatchesGraphMethods(t *testing.T) {
	g, err := buildSampleGraph()
	if err != nil {
		t.Fatalf("buildSampleGraph: %v", err)
	}
	compacted, _ := graph.Compact(g)
	a := matrix.Build(compacted)

	for _, id := range compacted.Nodes() {
		if got, want := a.Neighbors(id), compacted.Neighbors(id); !sameSet(got, want) {
			t.Errorf("Neighbors(%d) = %v, want %v", id, got, want)
		}
		if got, want := a.OutNeighbors(id), compacted.OutNeighbors(id); !sameSet(got, want) {
			t.Errorf("OutNeighbors(%d) = %v, want %v", id, got, want)
		}
		if got, want := a.InNeighbors(id), compacted.InNeighbors(id); !sameSet(got, want) {
			t.Errorf("InNeighbors(%d) = %v, want %v", id, got, want)
		}
		if got, want := a.HasSelfLoop(id), compacted.HasSelfLoop(id); got != want {
			t.Errorf("HasSelfLoop(%d) = %v, want %v", id, got, want)
		}
	}
}

func buildSampleGraph() (*graph.Graph, error) {
	g := graph.New(true)
	a := g.MintNode(nil)
	b := g.MintNode(nil)
	c := g.MintNode(nil)
	if err := g.AddEdge(a, b, nil); err != nil {
		return nil, err
	}
	if err := g.AddEdge(b, c, nil); err != nil {
		return nil, err
	}
	if err := g.AddEdge(c, a, nil); err != nil {
		return nil, err
	}
	if err := g.AddEdge(a, a, nil); err != nil {
		return nil, err
	}
	return g, nil
}

func sameSet(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[int]int)
	for _, v := range got {
		seen[v]++
	}
	for _, v := range want {
		seen[v]--
	}
	for _, c := range seen {
		if c != 0 {
			return false
		}
	}
	return true
}
