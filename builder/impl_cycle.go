// impl_cycle.go - implementation of the Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Adds n nodes in ascending index order, tagged via cfg.idFn.
//   - Emits edges i -> (i+1)%n for i=0..n-1 in stable order.
//   - Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/halvard/graphgram/graph"
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		ids := make([]int, n)
		for i := 0; i < n; i++ {
			ids[i] = g.MintNode(tagOrNil(cfg.idFn(i)))
		}

		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			if err := addSymmetric(g, u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d->%d): %w", MethodCycle, u, v, err)
			}
		}

		return nil
	}
}
