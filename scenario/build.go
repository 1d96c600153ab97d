package scenario

import (
	"fmt"

	"github.com/katalvlaran/pathnet/builder"
	"github.com/katalvlaran/pathnet/core"
	"github.com/katalvlaran/pathnet/spatial"
)

// Build constructs the scenario graph and applies its mutations in order.
func (sc *Scenario) Build(gopts ...core.GraphOption) (*core.Graph, error) {
	bopts := []builder.BuilderOption{builder.WithOrigin(sc.Origin[0], sc.Origin[1])}
	var lattice []builder.Constructor

	switch {
	case sc.Grid != nil:
		if sc.Grid.Spacing > 0 {
			bopts = append(bopts, builder.WithSpacing(sc.Grid.Spacing))
		}
		lattice = append(lattice, builder.Grid(sc.Grid.Rows, sc.Grid.Cols))
	case sc.Terrain != nil:
		if sc.Terrain.Spacing > 0 {
			bopts = append(bopts, builder.WithSpacing(sc.Terrain.Spacing))
		}
		lattice = append(lattice, builder.Terrain(sc.Terrain.Rows, sc.Terrain.Diagonal))
	}
	if sc.Random != nil {
		bopts = append(bopts, builder.WithSeed(sc.Random.Seed))
		lattice = append(lattice, builder.RandomGeometric(sc.Random.N, sc.Random.Width, sc.Random.Height, sc.Random.Radius))
	}

	g, err := builder.BuildGraph(gopts, bopts, lattice...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sc.Name, err)
	}

	// Listed nodes follow whatever the generators produced.
	var listed []builder.Constructor
	if len(sc.Nodes) > 0 {
		base := g.NodeCount()
		listed = append(listed, builder.Positions(sc.Nodes...))
		if sc.Chain {
			listed = append(listed, builder.Chain(base, base+len(sc.Nodes)-1))
		}
	}
	if len(sc.Edges) > 0 {
		listed = append(listed, builder.Connect(sc.Edges...))
	}
	if err := builder.Apply(g, bopts, listed...); err != nil {
		return nil, fmt.Errorf("%s: %w", sc.Name, err)
	}

	for i, m := range sc.Mutations {
		if err := m.Apply(g); err != nil {
			return nil, fmt.Errorf("%s: mutation #%d: %w", sc.Name, i, err)
		}
	}

	return g, nil
}

// Apply performs the mutation on g.
func (m Mutation) Apply(g *core.Graph) error {
	switch m.Op {
	case OpAddEdge:
		return g.AddEdge(core.NewEdge(m.Edge[0], m.Edge[1]))
	case OpRemoveEdge:
		for slot, e := range g.Edges() {
			if e.Connects(m.Edge[0], m.Edge[1]) {
				return g.RemoveEdge(slot)
			}
		}
		return fmt.Errorf("%w: %s: no edge %d-%d", ErrInvalidScenario, m.Op, m.Edge[0], m.Edge[1])
	case OpAddNode:
		return g.AddNode(core.NewNode(m.Node, m.At[0], m.At[1]))
	case OpAddNodeBetween:
		return g.AddNodeBetween(core.NewNode(m.Node, m.At[0], m.At[1]), m.Between[0], m.Between[1])
	case OpRemoveNode:
		return g.RemoveNode(m.Node)
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, m.Op)
	}
}

// Resolve maps the start and goal endpoints onto node indices of g. Point
// endpoints snap to the nearest active node.
func (sc *Scenario) Resolve(g *core.Graph) (start, goal int, err error) {
	var ix *spatial.Index
	resolve := func(e Endpoint) (int, error) {
		if e.Index != nil {
			return *e.Index, nil
		}
		if e.At == nil {
			return 0, fmt.Errorf("%w: endpoint unset", ErrInvalidScenario)
		}
		if ix == nil {
			built, err := spatial.FromGraph(g)
			if err != nil {
				return 0, err
			}
			ix = built
		}
		n, err := ix.Nearest(e.At[0], e.At[1])
		if err != nil {
			return 0, fmt.Errorf("endpoint %v: %w", e, err)
		}

		return n.Index, nil
	}

	if start, err = resolve(sc.Start); err != nil {
		return 0, 0, fmt.Errorf("%s: start: %w", sc.Name, err)
	}
	if goal, err = resolve(sc.Goal); err != nil {
		return 0, 0, fmt.Errorf("%s: goal: %w", sc.Name, err)
	}

	return start, goal, nil
}
