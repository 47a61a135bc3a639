package grammar

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/halvard/graphgram/apply"
	"github.com/halvard/graphgram/graph"
	"github.com/halvard/graphgram/match"
)

// ErrNoMatch is returned by Step and Run when no rule, in any order,
// matched the current graph.
var ErrNoMatch = errors.New("grammar: no rule matched")

// Mode controls how many matches a Step collects per rule attempt before
// moving on: ExhaustiveMode lets the finder run to completion (or its
// configured bound), FastMode stops at the first match.
type Mode int

const (
	ExhaustiveMode Mode = iota
	FastMode
)

// StepResult records what one Step did, for the caller's own logging or
// profiling.
type StepResult struct {
	Iteration    int
	RulesChecked int
	MatchesFound int
	Chosen       *match.Match
	Report       match.Report

	// Dump holds the matching Finder's CSP variable/domain state,
	// rendered by match.Finder.Dump, when the Driver that produced this
	// StepResult has Debug set. Empty otherwise.
	Dump string
}

// Driver applies a Grammar to a graph one rewrite at a time. All
// randomness (rule permutation, match selection, choice-rule
// alternative) flows from rng, so a Driver built with a seeded source
// reproduces the same run.
type Driver struct {
	rng  *rand.Rand
	mode Mode
	cfg  match.Config

	// Debug, when true, has Step populate StepResult.Dump with the
	// matching Finder's CSP domain snapshot. Off by default since
	// match.Finder.Dump is a verbose, allocation-heavy debug aid, not
	// something a normal run should pay for.
	Debug bool
}

// NewDriver builds a Driver. A nil rng gets a process-seeded source
// (non-reproducible); pass rand.New(rand.NewSource(seed)) for
// reproducible runs.
func NewDriver(rng *rand.Rand, mode Mode, cfg match.Config) *Driver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Driver{rng: rng, mode: mode, cfg: cfg}
}

// Step runs one iteration: sample a permutation of g.Rules, try each in
// turn until one has a nonempty match set, pick a match uniformly at
// random, and apply it. Returns ErrNoMatch if no rule matched.
func (d *Driver) Step(ctx context.Context, g *graph.Graph, gr *Grammar) (*graph.Graph, StepResult, error) {
	order := d.rng.Perm(len(gr.Rules))
	rulesChecked := 0

	for _, idx := range order {
		prod := gr.Rules[idx]
		rulesChecked++

		rl := prod.RightSide(d.rng)
		cfg := d.cfg
		if d.mode == FastMode {
			cfg.MaxMatches = 1
		}

		f := match.NewFinder(g, cfg)
		if err := f.LeftSide(prod.LeftSide()); err != nil {
			return nil, StepResult{}, err
		}
		if err := f.RightSide(rl); err != nil {
			return nil, StepResult{}, err
		}
		matches, report, err := f.Matches(ctx)
		if err != nil {
			return nil, StepResult{}, err
		}
		if len(matches) == 0 {
			continue
		}

		chosen := matches[d.rng.Intn(len(matches))]
		res, err := apply.Apply(g, chosen, rl)
		if err != nil {
			return nil, StepResult{}, err
		}

		var dump string
		if d.Debug {
			dump = f.Dump()
		}
		return res.Graph, StepResult{
			RulesChecked: rulesChecked,
			MatchesFound: len(matches),
			Chosen:       chosen,
			Report:       report,
			Dump:         dump,
		}, nil
	}

	return nil, StepResult{RulesChecked: rulesChecked}, ErrNoMatch
}

// Run drives Step up to iterations times, stopping early (without error)
// if a Step returns ErrNoMatch. Returns the final graph and one
// StepResult per successful iteration.
func (d *Driver) Run(ctx context.Context, g *graph.Graph, gr *Grammar, iterations int) (*graph.Graph, []StepResult, error) {
	results := make([]StepResult, 0, iterations)
	current := g
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return current, results, err
		}
		next, res, err := d.Step(ctx, current, gr)
		if errors.Is(err, ErrNoMatch) {
			return current, results, nil
		}
		if err != nil {
			return current, results, err
		}
		res.Iteration = i
		results = append(results, res)
		current = next
	}
	return current, results, nil
}
