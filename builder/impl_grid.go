// impl_grid.go - implementation of the Grid(rows, cols) constructor.
//
// Canonical model: a 2D orthogonal grid with 4-neighborhood (right and
// bottom neighbors per cell). Nodes are tagged "r,c" in row-major
// order; this is a deliberate exception to cfg.idFn, to keep grid
// coordinates explicit and legible regardless of the configured ID
// scheme.
//
// Contract:
//   - rows >= 1 and cols >= 1 (else ErrTooFewVertices).
//   - Adds edges to the right and bottom neighbors where they exist.
//   - Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/halvard/graphgram/graph"
)

// Grid returns a Constructor that builds a rows x cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		ids := make([][]int, rows)
		for r := 0; r < rows; r++ {
			ids[r] = make([]int, cols)
			for c := 0; c < cols; c++ {
				tag := fmt.Sprintf("%d,%d", r, c)
				ids[r][c] = g.MintNode(&tag)
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addSymmetric(g, ids[r][c], ids[r][c+1]); err != nil {
						return fmt.Errorf("%s: AddEdge(%d->%d): %w", MethodGrid, ids[r][c], ids[r][c+1], err)
					}
				}
				if r+1 < rows {
					if err := addSymmetric(g, ids[r][c], ids[r+1][c]); err != nil {
						return fmt.Errorf("%s: AddEdge(%d->%d): %w", MethodGrid, ids[r][c], ids[r+1][c], err)
					}
				}
			}
		}

		return nil
	}
}
