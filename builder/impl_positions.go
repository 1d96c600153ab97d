// SPDX-License-Identifier: MIT
// Package: pathnet/builder
//
// impl_positions.go - Positions(pts...) and Connect(pairs...) constructors.
//
// Contract:
//   - Positions appends one node per point, in argument order, at indices
//     g.NodeCount(), g.NodeCount()+1, ...
//   - Connect adds one edge per pair, in argument order. Duplicate pairs are
//     absorbed by core (no-op); unknown endpoints surface core.ErrEdgeEndpointInvalid.
//
// Complexity:
//   - Positions: O(k). Connect: O(k·E) for the duplicate scans.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathnet/core"
)

const (
	methodPositions = "Positions"
	methodConnect   = "Connect"
)

// Point is an (x, y) coordinate pair.
type Point [2]float64

// Positions returns a Constructor that appends a node at every point.
func Positions(pts ...Point) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		base := g.NodeCount()
		for i, p := range pts {
			if err := g.AddNode(core.NewNode(base+i, p[0], p[1])); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", methodPositions, base+i, err)
			}
		}

		return nil
	}
}

// Connect returns a Constructor that adds an edge for every index pair.
func Connect(pairs ...[2]int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, p := range pairs {
			if err := g.AddEdge(core.NewEdge(p[0], p[1])); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodConnect, p[0], p[1], err)
			}
		}

		return nil
	}
}
