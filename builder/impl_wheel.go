// impl_wheel.go - implementation of the Wheel(n) constructor.
//
// Canonical definition: W_n = a cycle of (n-1) rim nodes plus one
// "center"-tagged hub. n >= 4, since the rim must itself be a valid
// cycle (n-1 >= 3).
//
// Contract:
//   - n >= 4 (else ErrTooFewVertices).
//   - Builds the rim as a cycle over n-1 nodes tagged via cfg.idFn.
//   - Adds the hub, then a spoke hub -> rim[i] for every rim node.
//   - Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/halvard/graphgram/graph"
)

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} plus a
// center hub.
func Wheel(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		rimSize := n - 1
		rim := make([]int, rimSize)
		for i := 0; i < rimSize; i++ {
			rim[i] = g.MintNode(tagOrNil(cfg.idFn(i)))
		}
		for i := 0; i < rimSize; i++ {
			u, v := rim[i], rim[(i+1)%rimSize]
			if err := addSymmetric(g, u, v); err != nil {
				return fmt.Errorf("%s: rim AddEdge(%d->%d): %w", MethodWheel, u, v, err)
			}
		}

		tag := centerTag
		hub := g.MintNode(&tag)
		for _, rimID := range rim {
			if err := addSymmetric(g, hub, rimID); err != nil {
				return fmt.Errorf("%s: spoke AddEdge(%d->%d): %w", MethodWheel, hub, rimID, err)
			}
		}

		return nil
	}
}
