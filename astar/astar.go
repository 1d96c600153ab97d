// Package astar implements A* shortest-path search over a core.Graph.
//
// Edge cost is the Euclidean distance between endpoint positions; the
// heuristic (Euclidean by default) steers expansion toward the goal.
//
// Complexity:
//
//   - Time:  O(V·(V + E)) with FrontierLinear, O(V·(log V + E)) with FrontierOrdered;
//     the E term is the per-expansion neighbor scan of core.Graph.ConnectedNodes.
//   - Space: O(V) for the score tables and the predecessor table.
package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathnet/core"
)

// noParent marks a node without a predecessor.
const noParent = -1

// Search returns the node indices of a lowest-cost path from start to goal,
// both inclusive. It is Run without the bookkeeping.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. The heuristic must be non-nil (ErrNilHeuristic) and the frontier kind known (ErrUnknownFrontier).
//  3. start and goal must be active nodes (ErrNodeNotFound, which also matches core.ErrOutOfRangeIndex).
//
// When start == goal the result is [start]. When the goal is unreachable the
// error is ErrPathNotFound.
func Search(g *core.Graph, start, goal int, opts ...Option) ([]int, error) {
	res, err := Run(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Run performs the search and reports the path with its cost and the number
// of expanded nodes.
//
// Implementation:
//   - Stage 1: Validate inputs and options.
//   - Stage 2: g-scores and f-scores start at +Inf; start gets g=0, f=h(start).
//   - Stage 3: Repeatedly take the lowest-f node off the frontier (earliest
//     entry wins ties). Stop at the goal.
//   - Stage 4: Relax every neighbor in edge slot order; a strictly cheaper
//     route records the predecessor and enters the node into the frontier
//     if it is not already there.
//   - Stage 5: Walk predecessors back from the goal and reverse.
//
// The graph is read, never written. Mutating g while Run executes is a logic error.
func Run(g *core.Graph, start, goal int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Heuristic == nil {
		return nil, ErrNilHeuristic
	}
	if cfg.Frontier != FrontierLinear && cfg.Frontier != FrontierOrdered {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFrontier, int(cfg.Frontier))
	}

	startNode, err := g.GetNode(start)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrNodeNotFound, err)
	}
	goalNode, err := g.GetNode(goal)
	if err != nil {
		return nil, fmt.Errorf("%w: goal: %w", ErrNodeNotFound, err)
	}

	// 2) Trivial path
	if start == goal {
		if cfg.OnExpand != nil {
			cfg.OnExpand(start, cfg.Heuristic(startNode, goalNode))
		}
		return &Result{Path: []int{start}, Expanded: 1}, nil
	}

	r := newRunner(g, cfg, goalNode)
	r.init(startNode)

	return r.process(goal)
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *core.Graph // read-only within the search
	options  Options
	goal     core.Node
	gScore   []float64 // cheapest known cost from start
	fScore   []float64 // gScore plus heuristic
	parent   []int     // predecessor on the cheapest known route
	open     frontier
	expanded int
}

func newRunner(g *core.Graph, cfg Options, goal core.Node) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		gScore:  make([]float64, n),
		fScore:  make([]float64, n),
		parent:  make([]int, n),
	}
	r.open = newFrontier(cfg.Frontier, r.fScore)

	return r
}

// init sets every score to +Inf and seeds the frontier with start.
func (r *runner) init(start core.Node) {
	for i := range r.gScore {
		r.gScore[i] = math.Inf(1)
		r.fScore[i] = math.Inf(1)
		r.parent[i] = noParent
	}
	r.gScore[start.Index] = 0
	r.fScore[start.Index] = r.options.Heuristic(start, r.goal)
	r.open.push(start.Index)
}

// process is the main loop.
func (r *runner) process(goal int) (*Result, error) {
	for r.open.len() > 0 {
		current := r.open.pop()
		r.expanded++
		if r.options.OnExpand != nil {
			r.options.OnExpand(current, r.fScore[current])
		}
		if current == goal {
			return &Result{
				Path:     r.reconstruct(goal),
				Cost:     r.gScore[goal],
				Expanded: r.expanded,
			}, nil
		}

		currentNode, err := r.g.GetNode(current)
		if err != nil {
			return nil, fmt.Errorf("astar: expanding %d: %w", current, err)
		}
		for _, nb := range r.g.ConnectedNodes(currentNode) {
			if nb.Index >= len(r.gScore) {
				return nil, fmt.Errorf("astar: neighbor %d: %w", nb.Index, core.ErrOutOfRangeIndex)
			}
			tentative := r.gScore[current] + core.Distance(currentNode, nb)
			if tentative >= r.gScore[nb.Index] {
				continue
			}
			oldF := r.fScore[nb.Index]
			r.parent[nb.Index] = current
			r.gScore[nb.Index] = tentative
			r.fScore[nb.Index] = tentative + r.options.Heuristic(nb, r.goal)
			if r.options.OnRelax != nil {
				r.options.OnRelax(current, nb.Index, tentative)
			}
			if r.open.contains(nb.Index) {
				r.open.update(nb.Index, oldF)
			} else {
				r.open.push(nb.Index)
			}
		}
	}

	return nil, fmt.Errorf("%w: %d nodes expanded", ErrPathNotFound, r.expanded)
}

// reconstruct follows predecessors from goal back to start.
func (r *runner) reconstruct(goal int) []int {
	path := []int{goal}
	for at := r.parent[goal]; at != noParent; at = r.parent[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
