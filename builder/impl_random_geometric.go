// SPDX-License-Identifier: MIT
// Package: pathnet/builder
//
// impl_random_geometric.go - implementation of RandomGeometric(n, width, height, radius).
//
// Canonical model:
//   - Random geometric graph: n points drawn uniformly from the rectangle
//     [origin.x, origin.x+width) × [origin.y, origin.y+height); every pair
//     closer than or exactly at radius is joined.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - width > 0, height > 0, radius > 0 (else ErrInvalidParameter).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Nodes are appended starting at g.NodeCount().
//
// Complexity:
//   - Time: O(n) nodes + O(n²) distance checks (+ O(E) per added edge).
//
// Determinism:
//   - Stable draw order: for each i asc draw x then y.
//   - Stable edge-trial order: for each i asc, j asc with j > i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathnet/core"
)

const (
	methodRandomGeometric = "RandomGeometric"
	minRandomGeometric    = 1
)

// RandomGeometric returns a Constructor that samples a random geometric graph.
func RandomGeometric(n int, width, height, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < minRandomGeometric {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomGeometric, n, minRandomGeometric, ErrTooFewNodes)
		}
		if width <= 0 || height <= 0 || radius <= 0 {
			return fmt.Errorf("%s: width=%g, height=%g, radius=%g (each must be > 0): %w",
				methodRandomGeometric, width, height, radius, ErrInvalidParameter)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		// 2) Draw and append nodes.
		base := g.NodeCount()
		nodes := make([]core.Node, n)
		for i := 0; i < n; i++ {
			x := cfg.originX + cfg.rng.Float64()*width
			y := cfg.originY + cfg.rng.Float64()*height
			nodes[i] = core.NewNode(base+i, x, y)
			if err := g.AddNode(nodes[i]); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", methodRandomGeometric, base+i, err)
			}
		}

		// 3) Join every pair within radius.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if core.Distance(nodes[i], nodes[j]) > radius {
					continue
				}
				if err := g.AddEdge(core.NewEdge(nodes[i].Index, nodes[j].Index)); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w",
						methodRandomGeometric, nodes[i].Index, nodes[j].Index, err)
				}
			}
		}

		return nil
	}
}
