package grammar

import (
	"math/rand"

	"github.com/halvard/graphgram/graph"
	"github.com/halvard/graphgram/rule"
)

// Production is anything a driver can try a match against: a plain
// rule.Rule (one right side) or a rule.ChoiceRule (several, one picked
// per attempt). Both already implement this via their LeftSide/RightSide
// methods.
type Production interface {
	LeftSide() *graph.Graph
	RightSide(rng *rand.Rand) *rule.Rule
}

// Grammar is an ordered rule set plus a start graph. Extensions carries
// the opaque mapping under a grammar file's "extensions" key; the core
// never interprets it, only forwards it to whatever consumer asked.
type Grammar struct {
	Rules      []Production
	Start      *graph.Graph
	Extensions map[string]any
}

// New constructs a Grammar from an already-built rule set and start
// graph.
func New(start *graph.Graph, rules []Production) *Grammar {
	return &Grammar{Start: start, Rules: rules}
}
