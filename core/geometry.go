// File: geometry.go
// Role: Planar measures between nodes (edge cost and heuristic primitives).
//
// Determinism:
//   - Distance is computed as Sqrt(dx*dx + dy*dy) so ties between equal-cost
//     routes compare exactly; path selection in astar depends on it.

package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec returns the node's position as a gonum plane vector.
func (n Node) Vec() r2.Vec {
	return r2.Vec{X: n.X, Y: n.Y}
}

// Distance returns the Euclidean distance between a and b.
// Complexity: O(1).
func Distance(a, b Node) float64 {
	return math.Sqrt(r2.Norm2(r2.Sub(a.Vec(), b.Vec())))
}

// ManhattanDistance returns |ax-bx| + |ay-by|.
// Complexity: O(1).
func ManhattanDistance(a, b Node) float64 {
	d := r2.Sub(a.Vec(), b.Vec())

	return math.Abs(d.X) + math.Abs(d.Y)
}

// Midpoint returns the point halfway between a and b.
// Complexity: O(1).
func Midpoint(a, b Node) r2.Vec {
	return r2.Scale(0.5, r2.Add(a.Vec(), b.Vec()))
}
