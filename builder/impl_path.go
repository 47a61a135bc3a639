// impl_path.go - implementation of the Path(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Adds n nodes in ascending index order, tagged via cfg.idFn.
//   - Emits edges (i-1) -> i for i=1..n-1 in stable order.
//   - Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/halvard/graphgram/graph"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		ids := make([]int, n)
		for i := 0; i < n; i++ {
			ids[i] = g.MintNode(tagOrNil(cfg.idFn(i)))
		}

		for i := 1; i < n; i++ {
			u, v := ids[i-1], ids[i]
			if err := addSymmetric(g, u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d->%d): %w", MethodPath, u, v, err)
			}
		}

		return nil
	}
}
