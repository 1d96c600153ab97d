// SPDX-License-Identifier: MIT
// Package: pathnet/builder
//
// impl_terrain.go - Terrain(rows, diagonal) constructor over a text occupancy map.
//
// Contract:
//   - rows follow gridgraph.ParseRows: '.' open, '#' blocked, digits as values.
//   - One node per open cell, appended in row-major order starting at
//     g.NodeCount(); cell (x, y) sits at origin + (x*spacing, y*spacing).
//   - Open neighbors are joined; diagonal=true adds the four diagonals.
//
// Errors:
//   - ErrInvalidParameter for maps gridgraph rejects (empty, ragged, unknown cell).
//   - ErrTooFewNodes if the map has no open cell.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathnet/core"
	"github.com/katalvlaran/pathnet/gridgraph"
)

const methodTerrain = "Terrain"

// Terrain returns a Constructor that builds a lattice over the open cells of rows.
func Terrain(rows []string, diagonal bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		conn := gridgraph.Conn4
		if diagonal {
			conn = gridgraph.Conn8
		}
		gg, err := gridgraph.ParseRows(rows, conn)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", methodTerrain, ErrInvalidParameter, err)
		}

		before := g.NodeCount()
		_, err = gg.AddTo(g, func(x, y int) (float64, float64) {
			return cfg.originX + float64(x)*cfg.spacing, cfg.originY + float64(y)*cfg.spacing
		})
		if err != nil {
			return fmt.Errorf("%s: %w", methodTerrain, err)
		}
		if g.NodeCount() == before {
			return fmt.Errorf("%s: map has no open cell: %w", methodTerrain, ErrTooFewNodes)
		}

		return nil
	}
}

