package rule

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/halvard/graphgram/graph"
)

// ErrInvalidRule is returned when a Rule's rename map is malformed: it
// references a node absent from L or R. Rename must map every
// non-deleted L-node to an existing R-node.
var ErrInvalidRule = errors.New("rule: invalid rule")

// Rule is a graph-grammar production (L, R, rename). Rename maps every
// L-node that survives the rewrite (possibly merged with other L-nodes)
// to its identity in R; L-nodes absent from the domain of Rename are
// deleted. Two L-nodes sharing the same Rename value are merged
// ("joined") into one R-identity — see DESIGN.md's Rename/Join Open
// Question entry for why this single map subsumes a separate join map.
type Rule struct {
	L      *graph.Graph
	R      *graph.Graph
	Rename map[int]int // L-node -> R-node, domain = surviving L-nodes
}

// New validates and constructs a Rule. It enforces:
//   - every Rename value names an existing R-node (else ErrInvalidRule).
//   - every Rename key names an existing L-node (else ErrInvalidRule).
//   - L and R share directedness (else ErrInvalidRule).
func New(l, r *graph.Graph, rename map[int]int) (*Rule, error) {
	if l.Directed() != r.Directed() {
		return nil, ErrInvalidRule
	}
	for lNode, rNode := range rename {
		if !l.HasNode(lNode) {
			return nil, ErrInvalidRule
		}
		if !r.HasNode(rNode) {
			return nil, ErrInvalidRule
		}
	}
	cp := make(map[int]int, len(rename))
	for k, v := range rename {
		cp[k] = v
	}
	return &Rule{L: l, R: r, Rename: cp}, nil
}

// DeletedNodes returns the L-nodes not in the domain of Rename, sorted.
func (rl *Rule) DeletedNodes() []int {
	var out []int
	for _, v := range rl.L.Nodes() {
		if _, ok := rl.Rename[v]; !ok {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// RightImage returns the R-edge a deleted-or-surviving L-edge maps to,
// and whether both endpoints survive (a missing Rename entry on either
// side means the image does not exist).
func (rl *Rule) RightImage(a, b int) (ra, rb int, ok bool) {
	ra, okA := rl.Rename[a]
	rb, okB := rl.Rename[b]
	return ra, rb, okA && okB
}

// DeletedEdges returns the L-edges whose right image is not an edge of R
// (accounting for undirected symmetry).
func (rl *Rule) DeletedEdges() []graph.Edge {
	var out []graph.Edge
	for _, e := range rl.L.Edges() {
		ra, rb, ok := rl.RightImage(e.From, e.To)
		if !ok || !rl.R.HasEdge(ra, rb) {
			out = append(out, e)
		}
	}
	return out
}

// MergeGroups partitions the surviving L-nodes by shared Rename value;
// a group with more than one member is a merge ("join").
func (rl *Rule) MergeGroups() map[int][]int {
	groups := make(map[int][]int)
	for _, lNode := range rl.L.Nodes() {
		rNode, ok := rl.Rename[lNode]
		if !ok {
			continue
		}
		groups[rNode] = append(groups[rNode], lNode)
	}
	for _, g := range groups {
		sort.Ints(g)
	}
	return groups
}

// LeftSide returns the pattern a grammar driver should match against.
func (rl *Rule) LeftSide() *graph.Graph { return rl.L }

// RightSide returns rl itself: a plain Rule has no alternatives to pick
// among, so rng is unused. Present so Rule satisfies the same interface
// as ChoiceRule.
func (rl *Rule) RightSide(rng *rand.Rand) *Rule { return rl }

// ChoiceRule is a production with one left-hand pattern and several
// right-hand alternatives; RightSide picks one alternative uniformly at
// random per call.
type ChoiceRule struct {
	L            *graph.Graph
	Alternatives []*Rule // each shares the same L
}

// LeftSide returns the pattern shared by every alternative.
func (c *ChoiceRule) LeftSide() *graph.Graph { return c.L }

// RightSide picks one alternative uniformly at random.
func (c *ChoiceRule) RightSide(rng *rand.Rand) *Rule {
	return c.Alternatives[rng.Intn(len(c.Alternatives))]
}
