package gramtext

import (
	"fmt"

	"github.com/halvard/graphgram/graph"
	"github.com/halvard/graphgram/rule"
)

// DirectedHint resolves the directedness of a graph string that contains
// no directed edge at all (so nothing forces the choice). A string with
// at least one '->' or '<-' edge is always directed regardless of hint.
type DirectedHint int

const (
	HintUndirected DirectedHint = iota
	HintDirected
)

type parsedNodeGroup struct {
	vertices []string
}

type parsedEdgeStep struct {
	op tokenType
	to parsedNodeGroup
}

type parsedElement struct {
	first parsedNodeGroup
	steps []parsedEdgeStep
	tag   *string
}

type parsedGraph struct {
	elements []parsedElement
	directed bool
}

type tokenParser struct {
	tokens chan token
	cur    token
}

func newTokenParser(s string) *tokenParser {
	p := &tokenParser{tokens: lex(s)}
	p.advance()
	return p
}

func (p *tokenParser) advance() {
	t, ok := <-p.tokens
	if !ok {
		p.cur = token{typ: tokenEOF}
		return
	}
	p.cur = t
}

func parseGraphTokens(s string) (*parsedGraph, error) {
	p := newTokenParser(s)
	pg := &parsedGraph{}

	if p.cur.typ == tokenEOF {
		return pg, nil
	}
	if p.cur.typ == tokenSemi {
		p.advance()
		if p.cur.typ == tokenEOF {
			return pg, nil
		}
		return nil, newParseError(p.cur, "unexpected ';' before any graph element")
	}

	for {
		el, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		pg.elements = append(pg.elements, el)
		for _, step := range el.steps {
			if step.op != tokenEdgeUndir {
				pg.directed = true
			}
		}

		switch p.cur.typ {
		case tokenSemi:
			p.advance()
			if p.cur.typ == tokenEOF {
				return pg, nil
			}
		case tokenEOF:
			return pg, nil
		default:
			return nil, newParseError(p.cur, "expected ';' or end of input")
		}
	}
}

func (p *tokenParser) parseElement() (parsedElement, error) {
	if p.cur.typ == tokenError {
		return parsedElement{}, newParseError(p.cur, p.cur.val)
	}
	first, err := p.parseNodeExpr()
	if err != nil {
		return parsedElement{}, err
	}
	el := parsedElement{first: first}

	for p.cur.typ == tokenEdgeUndir || p.cur.typ == tokenEdgeFwd || p.cur.typ == tokenEdgeBack {
		op := p.cur.typ
		p.advance()
		to, err := p.parseNodeExpr()
		if err != nil {
			return parsedElement{}, err
		}
		el.steps = append(el.steps, parsedEdgeStep{op: op, to: to})
	}

	if p.cur.typ == tokenTag {
		val := p.cur.val
		el.tag = &val
		p.advance()
	}
	return el, nil
}

func (p *tokenParser) parseNodeExpr() (parsedNodeGroup, error) {
	if p.cur.typ == tokenError {
		return parsedNodeGroup{}, newParseError(p.cur, p.cur.val)
	}
	if p.cur.typ != tokenVertex {
		return parsedNodeGroup{}, newParseError(p.cur, "expected a vertex identifier")
	}
	group := parsedNodeGroup{vertices: []string{p.cur.val}}
	p.advance()

	for p.cur.typ == tokenMerge {
		p.advance()
		if p.cur.typ != tokenVertex {
			return parsedNodeGroup{}, newParseError(p.cur, "expected a vertex identifier after '^'")
		}
		group.vertices = append(group.vertices, p.cur.val)
		p.advance()
	}
	return group, nil
}

// unionFind merges vertex identifiers declared equal by '^'.
type unionFind struct {
	parent map[string]string
	merged bool
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[string]string)}
}

func (u *unionFind) add(v string) {
	if _, ok := u.parent[v]; !ok {
		u.parent[v] = v
	}
}

func (u *unionFind) find(v string) string {
	u.add(v)
	root := v
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[v] != root {
		next := u.parent[v]
		u.parent[v] = root
		v = next
	}
	return root
}

func (u *unionFind) union(a, b string) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
		u.merged = true
	}
}

func recordGroup(u *unionFind, g parsedNodeGroup) {
	for _, v := range g.vertices {
		u.add(v)
	}
	for i := 1; i < len(g.vertices); i++ {
		u.union(g.vertices[0], g.vertices[i])
	}
}

// buildGraphFromParsed constructs a graph.Graph from a parsedGraph,
// applying '^' merge-sets, tag-conflict checking, and the directedness
// inferred while lexing. It returns every vertex name seen mapped to its
// final node id, so callers correlating two separately-parsed graphs (a
// rule's left and right sides) can compute a rename by name.
func buildGraphFromParsed(pg *parsedGraph, allowMerge bool) (*graph.Graph, map[string]int, error) {
	uf := newUnionFind()
	for _, el := range pg.elements {
		recordGroup(uf, el.first)
		for _, step := range el.steps {
			recordGroup(uf, step.to)
		}
	}
	if uf.merged && !allowMerge {
		return nil, nil, &ParseError{Message: "'^' merge not allowed here"}
	}

	g := graph.New(pg.directed)
	idByRoot := make(map[string]int)
	names := make(map[string]int)

	nodeID := func(name string) int {
		root := uf.find(name)
		id, ok := idByRoot[root]
		if !ok {
			id = g.MintNode(nil)
			idByRoot[root] = id
		}
		names[name] = id
		return id
	}

	setNodeTag := func(name string, tag *string) error {
		id := nodeID(name)
		if tag == nil {
			return nil
		}
		existing, _ := g.NodeTag(id)
		if existing != nil {
			if *existing != *tag {
				return &mismatchError{what: "vertex", id: name, oldTag: existing, newTag: tag}
			}
			return nil
		}
		return g.SetNodeTag(id, tag)
	}

	addEdgeTagged := func(a, b int, tag *string) error {
		if g.HasEdge(a, b) {
			existing, _ := g.EdgeTag(a, b)
			if tag == nil {
				return nil
			}
			if existing != nil {
				if *existing != *tag {
					return &mismatchError{what: "edge", id: fmt.Sprintf("%d-%d", a, b), oldTag: existing, newTag: tag}
				}
				return nil
			}
			return g.SetEdgeTag(a, b, tag)
		}
		return g.AddEdge(a, b, tag)
	}

	for _, el := range pg.elements {
		if len(el.steps) == 0 {
			for _, v := range el.first.vertices {
				nodeID(v)
			}
			if err := setNodeTag(el.first.vertices[0], el.tag); err != nil {
				return nil, nil, err
			}
			continue
		}

		prevID := nodeID(el.first.vertices[0])
		for _, step := range el.steps {
			toID := nodeID(step.to.vertices[0])

			var err error
			switch step.op {
			case tokenEdgeUndir:
				err = addEdgeTagged(prevID, toID, el.tag)
				if err == nil && pg.directed && prevID != toID {
					err = addEdgeTagged(toID, prevID, el.tag)
				}
			case tokenEdgeFwd:
				err = addEdgeTagged(prevID, toID, el.tag)
			case tokenEdgeBack:
				err = addEdgeTagged(toID, prevID, el.tag)
			}
			if err != nil {
				return nil, nil, err
			}
			prevID = toID
		}
	}

	return g, names, nil
}

// ParseGraph parses a graph string into a graph.Graph. Merge
// sets ('^') are accepted; hint only matters for a graph string with no
// directed edge at all, since any directed edge makes the whole graph
// directed regardless of hint.
func ParseGraph(s string, hint DirectedHint) (*graph.Graph, error) {
	pg, err := parseGraphTokens(s)
	if err != nil {
		return nil, err
	}
	if hint == HintDirected {
		pg.directed = true
	}
	g, _, err := buildGraphFromParsed(pg, true)
	return g, err
}

// parseLeftSide parses a rule's left-hand graph string. Merges are
// rejected here regardless of caller, per the graph-string grammar.
func parseLeftSide(lhs string) (*graph.Graph, map[string]int, error) {
	lpg, err := parseGraphTokens(lhs)
	if err != nil {
		return nil, nil, err
	}
	return buildGraphFromParsed(lpg, false)
}

// buildRule parses a right-hand graph string against an already-parsed
// left side and derives the rename: a vertex name shared by both sides
// correlates an L node with its R image; an L name absent from the right
// side is deleted.
func buildRule(l *graph.Graph, lNames map[string]int, rhs string) (*rule.Rule, error) {
	rpg, err := parseGraphTokens(rhs)
	if err != nil {
		return nil, err
	}
	r, rNames, err := buildGraphFromParsed(rpg, true)
	if err != nil {
		return nil, err
	}

	rename := make(map[int]int)
	for name, rid := range rNames {
		if lid, ok := lNames[name]; ok {
			rename[lid] = rid
		}
	}
	return rule.New(l, r, rename)
}

// ParseRule parses a left-hand and right-hand graph string into a
// rule.Rule. A vertex name shared by both sides correlates an L node with
// its R image (the rule's rename); an L name absent from the right side
// is deleted. '^' merges are rejected on the left-hand side, per the
// graph-string grammar.
func ParseRule(lhs, rhs string) (*rule.Rule, error) {
	l, lNames, err := parseLeftSide(lhs)
	if err != nil {
		return nil, err
	}
	return buildRule(l, lNames, rhs)
}
