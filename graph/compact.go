package graph

// Compact returns a new Graph isomorphic to g with node identifiers
// renumbered to the dense interval {0,...,|V|-1}, plus a back-map from
// compacted id to original id.
//
// Complexity: O(V + E).
func Compact(g *Graph) (compacted *Graph, orig map[int]int) {
	nodes := g.Nodes()
	orig = make(map[int]int, len(nodes))
	fwd := make(map[int]int, len(nodes))
	out := New(g.directed)

	for i, id := range nodes {
		fwd[id] = i
		orig[i] = id
		tag, _ := g.NodeTag(id)
		_ = out.AddNode(i, tag)
	}
	for _, e := range g.Edges() {
		_ = out.AddEdge(fwd[e.From], fwd[e.To], e.Tag)
	}
	return out, orig
}

// Clone returns a deep copy of g sharing no mutable state with it.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := New(g.directed)
	for _, id := range g.Nodes() {
		tag, _ := g.NodeTag(id)
		_ = out.AddNode(id, tag)
	}
	out.nextID = g.nextID
	for _, e := range g.Edges() {
		_ = out.AddEdge(e.From, e.To, e.Tag)
	}
	return out
}

// InducedSubgraph returns a new Graph containing only the nodes in keep
// and the edges of g whose both endpoints are kept.
func (g *Graph) InducedSubgraph(keep []int) *Graph {
	keepSet := make(map[int]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}
	out := New(g.directed)
	for _, id := range keep {
		if !g.HasNode(id) {
			continue
		}
		tag, _ := g.NodeTag(id)
		_ = out.AddNode(id, tag)
	}
	for _, e := range g.Edges() {
		_, fromKept := keepSet[e.From]
		_, toKept := keepSet[e.To]
		if fromKept && toKept {
			_ = out.AddEdge(e.From, e.To, e.Tag)
		}
	}
	return out
}

// NodeTagCache returns (building and memoizing if necessary) the nodes
// carrying the given tag, nil for "no tag."
func (g *Graph) NodeTagCache(tag *string) []int {
	key := cacheKey(tag)
	if g.nodeTagCache == nil {
		g.nodeTagCache = make(map[string][]int)
	}
	if cached, ok := g.nodeTagCache[key]; ok {
		return cached
	}
	var nodes []int
	for _, id := range g.Nodes() {
		t, _ := g.NodeTag(id)
		if TagEqual(t, tag) {
			nodes = append(nodes, id)
		}
	}
	g.nodeTagCache[key] = nodes
	return nodes
}

// EdgeTagCache returns (building and memoizing if necessary) the edges
// carrying the given tag, nil for "no tag."
func (g *Graph) EdgeTagCache(tag *string) []*Edge {
	key := cacheKey(tag)
	if g.edgeTagCache == nil {
		g.edgeTagCache = make(map[string][]*Edge)
	}
	if cached, ok := g.edgeTagCache[key]; ok {
		return cached
	}
	var edges []*Edge
	for _, e := range g.Edges() {
		e := e
		if TagEqual(e.Tag, tag) {
			edges = append(edges, &e)
		}
	}
	g.edgeTagCache[key] = edges
	return edges
}

func cacheKey(tag *string) string {
	if tag == nil {
		return "\x00notag"
	}
	return "\x01" + *tag
}
