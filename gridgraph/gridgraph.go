// Package gridgraph treats a 2D occupancy map as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Emission of passable cells as positioned nodes of a *core.Graph
//   - Identification of connected components of passable cells
//   - Fewest-cleared-cells bridges between components
//
// Cells with value < LandThreshold are blocked; cells with value ≥ LandThreshold are passable.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathnet/core"
)

// Unmapped marks a blocked cell in the slice returned by AddTo.
const Unmapped = -1

// Map characters understood by ParseRows.
const (
	cellOpen    = '.'
	cellBlocked = '#'
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// ParseRows builds a GridGraph from a text map, one string per row:
// '.' is open (1), '#' is blocked (0) and a digit is taken as the cell value.
func ParseRows(rows []string, conn Connectivity) (*GridGraph, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, 0, len(row))
		for x, ch := range []byte(row) {
			switch {
			case ch == cellOpen:
				values[y] = append(values[y], 1)
			case ch == cellBlocked:
				values[y] = append(values[y], 0)
			case ch >= '0' && ch <= '9':
				values[y] = append(values[y], int(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrUnknownCell, ch, y, x)
			}
		}
	}

	return NewGridGraph(values, GridOptions{LandThreshold: 1, Conn: conn})
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and not blocked.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// AddTo appends one node per passable cell to g, in row-major order, at the
// position returned by place, then joins passable neighbors under gg.Conn.
// Each neighbor pair is joined once, from the earlier cell in row-major order.
//
// The result maps every cell index (see Index) to its node index, or to
// Unmapped for blocked cells.
// Complexity: O(W×H×d) cells plus the core.Graph edge scans.
func (gg *GridGraph) AddTo(g *core.Graph, place func(x, y int) (float64, float64)) ([]int, error) {
	nodeOf := make([]int, gg.Width*gg.Height)
	next := g.NodeCount()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i := gg.Index(x, y)
			if !gg.Passable(x, y) {
				nodeOf[i] = Unmapped
				continue
			}
			px, py := place(x, y)
			if err := g.AddNode(core.NewNode(next, px, py)); err != nil {
				return nil, fmt.Errorf("gridgraph: cell (%d,%d): %w", x, y, err)
			}
			nodeOf[i] = next
			next++
		}
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			u := nodeOf[gg.Index(x, y)]
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Passable(nx, ny) || gg.Index(nx, ny) < gg.Index(x, y) {
					continue
				}
				v := nodeOf[gg.Index(nx, ny)]
				if err := g.AddEdge(core.NewEdge(u, v)); err != nil {
					return nil, fmt.Errorf("gridgraph: edge (%d,%d)-(%d,%d): %w", x, y, nx, ny, err)
				}
			}
		}
	}

	return nodeOf, nil
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
