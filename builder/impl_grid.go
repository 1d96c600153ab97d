// SPDX-License-Identifier: MIT
// Package: pathnet/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal lattice with 4-neighborhood (right & bottom neighbors per cell).
//   - Cell (r,c) becomes node base + r*cols + c, where base = g.NodeCount()
//     before the call, positioned at origin + (c*spacing, r*spacing).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   - Adds nodes in row-major order.
//   - Adds edges to the right (r,c+1) and bottom (r+1,c) neighbors where they exist.
//
// Complexity:
//   - Time: O(rows*cols) nodes + O(rows*cols) edges, each edge O(E) for the duplicate scan.
//
// Determinism:
//   - Stable node order: row-major (r asc, then c asc).
//   - Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathnet/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}

		// 2) Add all nodes in row-major order.
		base := g.NodeCount()
		cell := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				x := cfg.originX + float64(c)*cfg.spacing
				y := cfg.originY + float64(r)*cfg.spacing
				if err := g.AddNode(core.NewNode(cell(r, c), x, y)); err != nil {
					return fmt.Errorf("%s: AddNode(%d,%d): %w", methodGrid, r, c, err)
				}
			}
		}

		// 3) Emit edges: Right then Bottom per cell.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cell(r, c)
				if c+1 < cols {
					if err := g.AddEdge(core.NewEdge(u, cell(r, c+1))); err != nil {
						return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodGrid, u, cell(r, c+1), err)
					}
				}
				if r+1 < rows {
					if err := g.AddEdge(core.NewEdge(u, cell(r+1, c))); err != nil {
						return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodGrid, u, cell(r+1, c), err)
					}
				}
			}
		}

		return nil
	}
}
