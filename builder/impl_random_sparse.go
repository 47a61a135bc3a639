// impl_random_sparse.go - implementation of the RandomSparse(n, p)
// constructor.
//
// Canonical model: an Erdos-Renyi-like generator, including each
// admissible unordered pair independently with probability p.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for a genuinely stochastic draw
//     (0 < p < 1, else ErrNeedRandSource). p==0 and p==1 are
//     deterministic and never touch the RNG.
//   - Stable trial order: i asc, then j>i asc.
//   - Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/halvard/graphgram/graph"
)

// RandomSparse returns a Constructor that samples an Erdos-Renyi-like
// graph over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids := make([]int, n)
		for i := 0; i < n; i++ {
			ids[i] = g.MintNode(tagOrNil(cfg.idFn(i)))
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == 1.0
				if cfg.rng != nil && p > 0.0 && p < 1.0 {
					include = cfg.rng.Float64() <= p
				}
				if !include {
					continue
				}
				if err := addSymmetric(g, ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d->%d): %w", MethodRandomSparse, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
