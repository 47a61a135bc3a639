package apply

import (
	"github.com/halvard/graphgram/graph"
	"github.com/halvard/graphgram/match"
	"github.com/halvard/graphgram/rule"
)

// Result is the outcome of one rewrite: the new host graph and, for each
// R-node, the H-node it ended up as (useful for chaining rewrites or
// inspecting what a rule introduced).
type Result struct {
	Graph   *graph.Graph
	NodeMap map[int]int // R-node -> H-node
}

// Apply builds H from g by rewriting the sub-image m identifies according
// to rl, leaving g untouched. The six sub-steps run in the fixed order
// the dangling/identification conditions were designed against: verify,
// delete edges, delete nodes, merge, add/retag nodes, add/retag edges.
func Apply(g *graph.Graph, m *match.Match, rl *rule.Rule) (*Result, error) {
	verify(g, m, rl)

	h := g.Clone()

	deleteEdges(h, m, rl)
	deleteNodes(h, m, rl)
	rNodeToH := mergeGroups(h, m, rl)
	addRetagNodes(h, rl, rNodeToH)
	addRetagEdges(h, rl, rNodeToH)

	return &Result{Graph: h, NodeMap: rNodeToH}, nil
}

// verify checks, against g as it stood before any mutation, that every
// deleted edge and node has an image and that simulated edge-deletion
// would leave each deleted node's image with no remaining incidence. It
// panics on violation rather than returning an error: these conditions
// are guaranteed by a match the finder itself produced.
func verify(g *graph.Graph, m *match.Match, rl *rule.Rule) {
	removed := make(map[[2]int]struct{})
	for _, e := range rl.DeletedEdges() {
		ga, gb, ok := m.Edge(e.From, e.To)
		if !ok || !g.HasEdge(ga, gb) {
			panic(errMissingEdgeImage.Error())
		}
		removed[canon(g.Directed(), ga, gb)] = struct{}{}
	}

	for _, n := range rl.DeletedNodes() {
		gn, ok := m.Node(n)
		if !ok || !g.HasNode(gn) {
			panic(errMissingNodeImage.Error())
		}
		for _, e := range g.Edges() {
			if e.From != gn && e.To != gn {
				continue
			}
			if _, gone := removed[canon(g.Directed(), e.From, e.To)]; gone {
				continue
			}
			panic(errDanglingAfterMerge.Error())
		}
	}
}

func canon(directed bool, a, b int) [2]int {
	if directed || a <= b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

func deleteEdges(h *graph.Graph, m *match.Match, rl *rule.Rule) {
	for _, e := range rl.DeletedEdges() {
		ga, gb, ok := m.Edge(e.From, e.To)
		if !ok {
			continue
		}
		_ = h.RemoveEdge(ga, gb)
	}
}

func deleteNodes(h *graph.Graph, m *match.Match, rl *rule.Rule) {
	for _, n := range rl.DeletedNodes() {
		gn, ok := m.Node(n)
		if !ok {
			continue
		}
		_ = h.RemoveNode(gn)
	}
}

// mergeGroups contracts every group of L-nodes that share a Rename
// target into the group's lowest-numbered member, then returns the
// R-node -> H-node map for every R-node with at least one surviving
// L-preimage. R-nodes with no preimage (genuinely new nodes) are left
// for addRetagNodes to mint.
func mergeGroups(h *graph.Graph, m *match.Match, rl *rule.Rule) map[int]int {
	rNodeToH := make(map[int]int)
	for rNode, lNodes := range rl.MergeGroups() {
		if len(lNodes) == 0 {
			continue
		}
		rep := lNodes[0]
		gRep, ok := m.Node(rep)
		if !ok {
			continue
		}
		for _, v := range lNodes[1:] {
			gv, ok := m.Node(v)
			if !ok {
				continue
			}
			contract(h, gv, gRep)
		}
		rNodeToH[rNode] = gRep
	}
	return rNodeToH
}

// contract folds from's incidence into into and removes from. An edge
// between from and into becomes a self-loop on into; an edge of from
// whose new position into already has an edge at is dropped, so into's
// existing edge and its tag are kept ("first wins", per the merge tag
// policy). Where several of from's edges land on the same new position,
// the one earliest in h.Edges() order is kept.
func contract(h *graph.Graph, from, into int) {
	for _, e := range h.Edges() {
		if e.From != from && e.To != from {
			continue
		}
		var other int
		if e.From == from {
			other = e.To
		} else {
			other = e.From
		}

		newFrom, newTo := into, other
		if e.To == from {
			newFrom, newTo = other, into
		}
		if other == from || other == into {
			newFrom, newTo = into, into
		}

		_ = h.RemoveEdge(e.From, e.To)
		if h.HasEdge(newFrom, newTo) {
			continue
		}
		_ = h.AddEdge(newFrom, newTo, e.Tag)
	}
	_ = h.RemoveNode(from)
}

// addRetagNodes gives every R-node a home in h: retag its surviving
// H-identity if mergeGroups already found one, else mint a fresh node
// carrying R's tag.
func addRetagNodes(h *graph.Graph, rl *rule.Rule, rNodeToH map[int]int) {
	for _, x := range rl.R.Nodes() {
		tag, _ := rl.R.NodeTag(x)
		if gx, ok := rNodeToH[x]; ok {
			_ = h.SetNodeTag(gx, tag)
			continue
		}
		rNodeToH[x] = h.MintNode(tag)
	}
}

// addRetagEdges gives every R-edge a home in h: retag it if its image
// already exists (a surviving L-edge, or a self-loop the merge step
// created), else add it fresh with R's tag.
func addRetagEdges(h *graph.Graph, rl *rule.Rule, rNodeToH map[int]int) {
	for _, e := range rl.R.Edges() {
		ga, gb := rNodeToH[e.From], rNodeToH[e.To]
		if h.HasEdge(ga, gb) {
			_ = h.SetEdgeTag(ga, gb, e.Tag)
			continue
		}
		_ = h.AddEdge(ga, gb, e.Tag)
	}
}
