// impl_star.go - implementation of the Star(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Adds a "center"-tagged hub plus n-1 leaves tagged via cfg.idFn.
//   - Emits spokes center -> leaf[i] in ascending leaf-index order.
//   - Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/halvard/graphgram/graph"
)

// Star returns a Constructor that builds a star topology with n nodes:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		tag := centerTag
		center := g.MintNode(&tag)

		for i := 1; i < n; i++ {
			leaf := g.MintNode(tagOrNil(cfg.idFn(i)))
			if err := addSymmetric(g, center, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%d->%d): %w", MethodStar, center, leaf, err)
			}
		}

		return nil
	}
}
