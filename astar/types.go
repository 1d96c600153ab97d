// Package astar defines the types and configuration options for heuristic
// shortest-path search over a core.Graph.
//
// Options:
//
//	– WithHeuristic:  estimate of the remaining cost (default Euclidean).
//	– WithFrontier:   FrontierLinear (default) or FrontierOrdered.
//	– WithOnExpand:   hook invoked for every node removed from the frontier.
//	– WithOnRelax:    hook invoked for every improved tentative cost.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrNilHeuristic  if WithHeuristic(nil) was given.
//	– ErrNodeNotFound  if start or goal is not an active node (also matches core.ErrOutOfRangeIndex).
//	– ErrPathNotFound  if the frontier empties before the goal is reached.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathnet/core"
)

// Sentinel errors returned by Search and Run.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates that WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNodeNotFound indicates that start or goal does not address an active node.
	ErrNodeNotFound = errors.New("astar: node not found")

	// ErrPathNotFound indicates that goal is unreachable from start.
	ErrPathNotFound = errors.New("astar: path not found")

	// ErrUnknownFrontier indicates an unrecognised frontier name.
	ErrUnknownFrontier = errors.New("astar: unknown frontier kind")

	// ErrUnknownHeuristic indicates an unrecognised heuristic name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// Heuristic estimates the remaining cost from a node to the goal.
// Admissible heuristics (never overestimating) keep the returned path optimal.
type Heuristic func(from, goal core.Node) float64

// Euclidean is the straight-line heuristic; it matches the edge cost exactly
// on a direct edge and is the default.
func Euclidean(from, goal core.Node) float64 { return core.Distance(from, goal) }

// Manhattan is |dx| + |dy|. It is admissible only when every edge is axis-aligned.
func Manhattan(from, goal core.Node) float64 { return core.ManhattanDistance(from, goal) }

// Zero turns the search into Dijkstra's algorithm.
func Zero(_, _ core.Node) float64 { return 0 }

// ParseHeuristic maps "euclidean", "manhattan" or "zero" to a Heuristic.
// The empty string selects Euclidean.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "", "euclidean":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	case "zero":
		return Zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// FrontierKind selects the open-set implementation.
type FrontierKind int

const (
	// FrontierLinear keeps the open set in insertion order and scans it for
	// the lowest f on every selection. O(V) per selection.
	FrontierLinear FrontierKind = iota

	// FrontierOrdered keeps the open set in a B-tree keyed by (f, insertion
	// sequence). O(log V) per selection, same tie-break, same paths.
	FrontierOrdered
)

// String implements fmt.Stringer.
func (k FrontierKind) String() string {
	switch k {
	case FrontierLinear:
		return "linear"
	case FrontierOrdered:
		return "ordered"
	default:
		return "unknown"
	}
}

// ParseFrontierKind maps "linear" or "ordered" to a FrontierKind.
// The empty string selects FrontierLinear.
func ParseFrontierKind(s string) (FrontierKind, error) {
	switch s {
	case "", "linear":
		return FrontierLinear, nil
	case "ordered":
		return FrontierOrdered, nil
	default:
		return FrontierLinear, fmt.Errorf("%w: %q", ErrUnknownFrontier, s)
	}
}

// Options configures a search.
type Options struct {
	Heuristic Heuristic                     // remaining-cost estimate
	Frontier  FrontierKind                  // open-set implementation
	OnExpand  func(index int, f float64)    // called per node taken off the frontier
	OnRelax   func(from, to int, g float64) // called per improved tentative cost
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithHeuristic replaces the default Euclidean heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithFrontier selects the open-set implementation.
func WithFrontier(k FrontierKind) Option {
	return func(o *Options) {
		o.Frontier = k
	}
}

// WithOnExpand installs a hook called with each node's index and f-score
// as it is taken off the frontier, the goal included.
func WithOnExpand(fn func(index int, f float64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithOnRelax installs a hook called whenever a cheaper route to a node is found.
func WithOnRelax(fn func(from, to int, g float64)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// DefaultOptions returns Euclidean over the linear frontier with no hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		Frontier:  FrontierLinear,
	}
}

// Result is the outcome of a successful Run.
type Result struct {
	Path     []int   // node indices from start to goal, both inclusive
	Cost     float64 // sum of Euclidean edge lengths along Path
	Expanded int     // nodes taken off the frontier, goal included
}
