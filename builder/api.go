// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(directed, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - All public factories are declared here; implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig.
//   - Determinism: same inputs/options/seed and constructor order yield
//     identical graphs.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/halvard/graphgram/graph"
)

// addSymmetric adds u->v, and for a directed graph also v->u, so every
// topology Constructor reads as undirected-shaped regardless of g's
// directedness.
func addSymmetric(g *graph.Graph, u, v int) error {
	if err := g.AddEdge(u, v, nil); err != nil {
		return err
	}
	if g.Directed() && u != v {
		if err := g.AddEdge(v, u, nil); err != nil {
			return err
		}
	}
	return nil
}

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors must validate parameters early and return
// sentinel errors, respect g's directedness, and preserve determinism
// for the same config and call order.
type Constructor func(g *graph.Graph, cfg *builderConfig) error

// BuildGraph creates a new graph.Graph of the given directedness,
// resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately; no partial cleanup is
// attempted.
func BuildGraph(directed bool, bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g := graph.New(directed)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure that adds nodes via
// cfg.idFn (except documented fixed tags like "center"), emits edges in
// a stable order, honors g.Directed(), and returns only sentinel
// errors.

// Cycle builds an n-node simple cycle C_n (n >= 3).
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n >= 2).
//func Path(n int) Constructor

// Star builds a star with a "center"-tagged hub and n-1 leaves (n >= 2).
//func Star(n int) Constructor

// Wheel builds a wheel W_n = C_{n-1} plus a "center"-tagged hub (n >= 4).
//func Wheel(n int) Constructor

// Complete builds the complete simple graph K_n (n >= 1).
//func Complete(n int) Constructor

// CompleteBipartite builds simple K_{n1,n2}, tagging each side with
// cfg.leftPrefix/cfg.rightPrefix plus its index.
//func CompleteBipartite(n1, n2 int) Constructor

// Grid builds an rows x cols 4-neighborhood grid, row-major.
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdos-Renyi-like sparse graph: each admissible
// edge is included independently with probability p. Requires
// cfg.rng != nil for 0 < p < 1.
//func RandomSparse(n int, p float64) Constructor
