// impl_complete.go - implementation of the Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - Adds n nodes in ascending index order, tagged via cfg.idFn.
//   - Emits each unordered pair {i,j} with i<j exactly once.
//   - Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/halvard/graphgram/graph"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		ids := make([]int, n)
		for i := 0; i < n; i++ {
			ids[i] = g.MintNode(tagOrNil(cfg.idFn(i)))
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addSymmetric(g, ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d->%d): %w", MethodComplete, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
