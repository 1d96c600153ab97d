package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathnet/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// Reachable reports whether goal can be reached from start.
func Reachable(g *core.Graph, start, goal int) (bool, error) {
	res, err := BFS(g, start, WithOnVisit(func(index, _ int) error {
		if index == goal {
			return errFound
		}
		return nil
	}))
	switch {
	case errors.Is(err, errFound):
		return true, nil
	case err != nil:
		return false, err
	}

	return res.Reached(goal), nil
}

// errFound stops Reachable early.
var errFound = errors.New("bfs: goal found")

func (w *walker) enqueue(index, depth, parent int) {
	w.res.Depth[index] = depth
	w.res.Parent[index] = parent
	w.queue = append(w.queue, index)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[cur]
		w.res.Order = append(w.res.Order, cur)
		if err := w.opts.OnVisit(cur, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", cur, err)
		}
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.graph.NeighborIndices(cur) {
			if nb >= len(w.res.Depth) || w.res.Depth[nb] != Unreached {
				continue
			}
			if !w.opts.FilterNeighbor(cur, nb) {
				continue
			}
			w.enqueue(nb, depth+1, cur)
		}
	}

	return nil
}
