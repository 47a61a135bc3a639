package match

import (
	"context"
	"sort"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/halvard/graphgram/csp"
	"github.com/halvard/graphgram/graph"
	"github.com/halvard/graphgram/internal/matrix"
	"github.com/halvard/graphgram/rule"
)

type finderState int

const (
	stateInit finderState = iota
	stateLeftApplied
	stateRightApplied
	stateInfeasible
	stateEnumerating
	stateDone
)

// Finder drives the one-way state machine
// Init -> LeftApplied -> RightApplied -> {Infeasible, Enumerating} -> Done.
// LeftSide, RightSide and Matches each advance the state exactly once;
// calling one out of order returns a MatchError rather than panicking.
type Finder struct {
	cfg Config

	host *graph.Graph     // compacted copy of the caller's host graph
	adj  *matrix.Adjacency // neighbor-lookup cache over host
	orig map[int]int       // compacted id -> original id

	left      *graph.Graph
	leftNodes []int // sorted L-node ids, also the csp.Var order

	problem    *csp.Problem
	infeasible bool
	state      finderState
}

// NewFinder begins a match search over host with the given bounds. host
// is compacted internally; the caller's graph is never mutated.
func NewFinder(host *graph.Graph, cfg Config) *Finder {
	compacted, orig := graph.Compact(host)
	return &Finder{
		cfg:   cfg.withDefaults(),
		host:  compacted,
		adj:   matrix.Build(compacted),
		orig:  orig,
		state: stateInit,
	}
}

// LeftSide specifies the pattern to match: one csp.Var per L-node, a
// node-tag restriction per L-node, an AllDifferent over all L-nodes for
// injectivity, and an edge-tag restriction per L-edge.
func (f *Finder) LeftSide(left *graph.Graph) error {
	if f.state != stateInit {
		return newMatchError("LeftSide called out of order")
	}
	if f.host.Directed() != left.Directed() {
		return newMatchError("directedness mismatch")
	}

	f.left = left
	f.leftNodes = left.Nodes()
	f.problem = csp.NewProblem()

	domain := make([]int, f.host.NumNodes())
	for i := range domain {
		domain[i] = i
	}
	for _, v := range f.leftNodes {
		f.problem.AddVariable(csp.Var(v), domain)
	}

	for _, v := range f.leftNodes {
		tag, _ := left.NodeTag(v)
		candidates := f.host.NodeTagCache(tag)
		if len(candidates) == 0 {
			f.infeasible = true
			continue
		}
		if len(candidates) != f.host.NumNodes() {
			f.problem.AddConstraint(csp.NewTuple(toTuples1(candidates)), []csp.Var{csp.Var(v)})
		}
	}

	f.problem.AddConstraint(csp.AllDifferent{}, varsOf(f.leftNodes))

	for _, e := range left.Edges() {
		pairs := edgeCandidatePairs(f.host, e.Tag, left.Directed())
		if len(pairs) == 0 {
			f.infeasible = true
			continue
		}
		f.problem.AddConstraint(csp.NewTuple(pairs), []csp.Var{csp.Var(e.From), csp.Var(e.To)})
	}

	f.state = stateLeftApplied
	return nil
}

// RightSide specifies the rule's right-hand side (via its deleted-node
// and deleted-edge sets) and encodes the dangling and identification
// conditions. It transitions to Infeasible or Enumerating.
func (f *Finder) RightSide(rl *rule.Rule) error {
	if f.state != stateLeftApplied {
		return newMatchError("RightSide called out of order")
	}
	if rl.L.Directed() != f.left.Directed() {
		return newMatchError("directedness mismatch")
	}

	if !f.infeasible {
		for _, n := range rl.DeletedNodes() {
			if !f.encodeDangling(rl, n) {
				f.infeasible = true
				break
			}
		}
	}

	if f.infeasible {
		f.state = stateInfeasible
	} else {
		f.state = stateEnumerating
	}
	return nil
}

// encodeDangling builds the self-loop-parity and neighborhood
// surjectivity constraints for one deleted node n. Returns false if no
// candidate host node satisfies them, in which case the whole search is
// infeasible.
func (f *Finder) encodeDangling(rl *rule.Rule, n int) bool {
	tag, _ := rl.L.NodeTag(n)
	baseCandidates := f.host.NodeTagCache(tag)

	hasSelfLoopEdge := false
	for _, e := range rl.DeletedEdges() {
		if e.From == n && e.To == n {
			hasSelfLoopEdge = true
		}
	}

	var filtered []int
	for _, i := range baseCandidates {
		if f.adj.HasSelfLoop(i) == hasSelfLoopEdge {
			filtered = append(filtered, i)
		}
	}
	if len(filtered) == 0 {
		return false
	}
	f.problem.AddConstraint(csp.NewTuple(toTuples1(filtered)), []csp.Var{csp.Var(n)})

	if f.left.Directed() {
		outOK := f.encodeDanglingDirection(rl, n, filtered, directedOut(rl, n), f.adj.OutNeighbors)
		inOK := f.encodeDanglingDirection(rl, n, filtered, directedIn(rl, n), f.adj.InNeighbors)
		return outOK && inOK
	}
	return f.encodeDanglingDirection(rl, n, filtered, undirectedIncident(rl, n), f.adj.Neighbors)
}

// encodeDanglingDirection builds (if dOther is non-empty) the
// ConditionalTuple over [n]++dOther keyed on n's value, requiring the
// dOther variables to be assigned a surjective mapping onto the
// candidate's neighborhood (via neighborFn). Returns false if, after
// this filtering, no candidate in filtered remains possible for n.
func (f *Finder) encodeDanglingDirection(rl *rule.Rule, n int, filtered, dOther []int, neighborFn func(int) []int) bool {
	if len(dOther) == 0 {
		return true
	}

	var fullTuples [][]int
	anyFeasible := false
	for _, i := range filtered {
		neighbors := removeSelf(neighborFn(i), i)
		if len(neighbors) > len(dOther) {
			continue
		}
		assignments := csp.SurjectiveMappings(len(dOther), neighbors)
		if len(assignments) == 0 {
			continue
		}
		anyFeasible = true
		for _, a := range assignments {
			t := make([]int, 0, len(a)+1)
			t = append(t, i)
			t = append(t, a...)
			fullTuples = append(fullTuples, t)
		}
	}
	if !anyFeasible {
		return false
	}

	scope := make([]csp.Var, 0, len(dOther)+1)
	scope = append(scope, csp.Var(n))
	for _, d := range dOther {
		scope = append(scope, csp.Var(d))
	}
	f.problem.AddConstraint(csp.NewConditionalTuple(fullTuples), scope)
	return true
}

// Matches drives the solver to completion (or to a configured bound) and
// converts every solution back to original host-graph node identifiers.
func (f *Finder) Matches(ctx context.Context) ([]*Match, Report, error) {
	if f.state != stateEnumerating && f.state != stateInfeasible {
		return nil, Report{}, newMatchError("Matches called out of order")
	}
	start := time.Now()
	defer func() { f.state = stateDone }()

	if f.state == stateInfeasible {
		return nil, Report{EndReason: NoMore, Elapsed: time.Since(start)}, nil
	}

	searchCtx, cancel := context.WithTimeout(ctx, f.cfg.MaxMatchTime)
	defer cancel()

	sols := f.problem.Solutions(searchCtx)
	var out []*Match
	reason := NoMore
	for {
		assignment, ok := sols.Next()
		if !ok {
			break
		}
		out = append(out, f.toMatch(assignment))
		if len(out) >= f.cfg.MaxMatches {
			reason = MaxMatches
			sols.Stop()
			break
		}
	}
	if reason == NoMore && searchCtx.Err() != nil {
		reason = Timeout
	}

	report := Report{
		EndReason: reason,
		Stats:     sols.Stats(),
		Elapsed:   time.Since(start),
	}
	return out, report, nil
}

// Dump returns a developer-facing rendering of the finder's current CSP
// variable domains, keyed by L-node id. Meant for verbose diagnostic
// output (a CLI's --profile -vv), not for programmatic use.
func (f *Finder) Dump() string {
	snapshot := make(map[int][]int, len(f.leftNodes))
	for _, v := range f.leftNodes {
		if d := f.problem.DomainOf(csp.Var(v)); d != nil {
			snapshot[v] = d.Values()
		}
	}
	return spew.Sdump(snapshot)
}

// MatchExists short-circuits Matches after the first solution.
func (f *Finder) MatchExists(ctx context.Context) (bool, error) {
	saved := f.cfg.MaxMatches
	f.cfg.MaxMatches = 1
	matches, _, err := f.Matches(ctx)
	f.cfg.MaxMatches = saved
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

func (f *Finder) toMatch(assignment map[csp.Var]int) *Match {
	m := newMatch()
	for _, v := range f.leftNodes {
		compactedHost := assignment[csp.Var(v)]
		_ = m.addMap(v, f.orig[compactedHost])
	}
	m.freeze()
	return m
}

func toTuples1(vals []int) [][]int {
	out := make([][]int, len(vals))
	for i, v := range vals {
		out[i] = []int{v}
	}
	return out
}

func varsOf(nodes []int) []csp.Var {
	out := make([]csp.Var, len(nodes))
	for i, n := range nodes {
		out[i] = csp.Var(n)
	}
	return out
}

func edgeCandidatePairs(g *graph.Graph, tag *string, directed bool) [][]int {
	var out [][]int
	for _, e := range g.EdgeTagCache(tag) {
		out = append(out, []int{e.From, e.To})
		if !directed {
			out = append(out, []int{e.To, e.From})
		}
	}
	return out
}

func removeSelf(nodes []int, self int) []int {
	out := make([]int, 0, len(nodes))
	for _, n := range nodes {
		if n != self {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// undirectedIncident returns the sorted set of "other endpoint" L-nodes
// of deleted edges incident to n, for an undirected rule.
func undirectedIncident(rl *rule.Rule, n int) []int {
	seen := make(map[int]struct{})
	for _, e := range rl.DeletedEdges() {
		if e.From == n && e.To != n {
			seen[e.To] = struct{}{}
		}
		if e.To == n && e.From != n {
			seen[e.From] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// directedOut returns the sorted set of "other endpoint" L-nodes of
// deleted edges n -> other.
func directedOut(rl *rule.Rule, n int) []int {
	seen := make(map[int]struct{})
	for _, e := range rl.DeletedEdges() {
		if e.From == n && e.To != n {
			seen[e.To] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// directedIn returns the sorted set of "other endpoint" L-nodes of
// deleted edges other -> n.
func directedIn(rl *rule.Rule, n int) []int {
	seen := make(map[int]struct{})
	for _, e := range rl.DeletedEdges() {
		if e.To == n && e.From != n {
			seen[e.From] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
