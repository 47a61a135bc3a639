// impl_bipartite.go - implementation of the CompleteBipartite(n1,n2)
// constructor.
//
// Contract:
//   - n1 >= 1 and n2 >= 1 (else ErrTooFewVertices).
//   - Left nodes are tagged "{cfg.leftPrefix}{i}", right nodes
//     "{cfg.rightPrefix}{j}".
//   - Emits every cross pair left[i] -> right[j] in stable order.
//   - Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/halvard/graphgram/graph"
)

// CompleteBipartite returns a Constructor for the complete bipartite
// graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		left := make([]int, n1)
		for i := 0; i < n1; i++ {
			tag := fmt.Sprintf("%s%d", cfg.leftPrefix, i)
			left[i] = g.MintNode(&tag)
		}
		right := make([]int, n2)
		for j := 0; j < n2; j++ {
			tag := fmt.Sprintf("%s%d", cfg.rightPrefix, j)
			right[j] = g.MintNode(&tag)
		}

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addSymmetric(g, left[i], right[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d->%d): %w", MethodCompleteBipartite, left[i], right[j], err)
				}
			}
		}

		return nil
	}
}
