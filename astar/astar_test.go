package astar_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathnet/astar"
	"github.com/katalvlaran/pathnet/bfs"
	"github.com/katalvlaran/pathnet/core"
)

// basicPositions are the ten nodes of the demo network.
var basicPositions = [][2]float64{
	{50, 299}, {190, 255}, {260, 154}, {304, 190}, {380, 205},
	{318, 442}, {142, 363}, {253, 232}, {140, 200}, {96, 173},
}

var frontiers = []astar.FrontierKind{astar.FrontierLinear, astar.FrontierOrdered}

func newGraph(t *testing.T, pos [][2]float64, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, p := range pos {
		require.NoError(t, g.AddNode(core.NewNode(i, p[0], p[1])))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(core.NewEdge(e[0], e[1])))
	}

	return g
}

// basicGraph is the demo network: a 0..9 chain plus 1–7, 0–6 and 5–3.
func basicGraph(t *testing.T) *core.Graph {
	t.Helper()
	var edges [][2]int
	for i := 1; i < len(basicPositions); i++ {
		edges = append(edges, [2]int{i - 1, i})
	}
	edges = append(edges, [2]int{1, 7}, [2]int{0, 6}, [2]int{5, 3})

	return newGraph(t, basicPositions, edges...)
}

// gridGraph is a 10×10 lattice with spacing 50 and padding 50, joined to the
// right and downward neighbors.
func gridGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		require.NoError(t, g.AddNode(core.NewNode(i, float64(i%10*50+50), float64(i/10*50+50))))
	}
	for i := 0; i < 100; i++ {
		if i%10 != 9 {
			require.NoError(t, g.AddEdge(core.NewEdge(i, i+1)))
		}
		if i < 90 {
			require.NoError(t, g.AddEdge(core.NewEdge(i, i+10)))
		}
	}

	return g
}

// requireValidPath checks endpoints, edge adjacency, and the reported cost.
func requireValidPath(t *testing.T, g *core.Graph, res *astar.Result, start, goal int) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	require.Equal(t, start, res.Path[0])
	require.Equal(t, goal, res.Path[len(res.Path)-1])
	cost := 0.0
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		require.True(t, g.HasEdgeBiDirectional(a, b), "no edge %d–%d", a, b)
		na, _ := g.GetNode(a)
		nb, _ := g.GetNode(b)
		cost += core.Distance(na, nb)
	}
	require.InDelta(t, cost, res.Cost, 1e-9)
}

type SearchSuite struct {
	suite.Suite
	kind astar.FrontierKind
}

func TestSearchLinear(t *testing.T) {
	suite.Run(t, &SearchSuite{kind: astar.FrontierLinear})
}

func TestSearchOrdered(t *testing.T) {
	suite.Run(t, &SearchSuite{kind: astar.FrontierOrdered})
}

func (s *SearchSuite) run(g *core.Graph, start, goal int, opts ...astar.Option) (*astar.Result, error) {
	return astar.Run(g, start, goal, append([]astar.Option{astar.WithFrontier(s.kind)}, opts...)...)
}

func (s *SearchSuite) TestShortcut() {
	// Chain 0-1-2-3-4 plus a direct 0–4 edge.
	g := newGraph(s.T(), basicPositions[:5], [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{0, 4})

	res, err := s.run(g, 0, 4)
	s.Require().NoError(err)
	s.Require().Equal([]int{0, 4}, res.Path)
	s.Require().Equal(2, res.Expanded)
	requireValidPath(s.T(), g, res, 0, 4)
}

func (s *SearchSuite) TestShortcutCollinearTie() {
	// On a straight line the chain and the shortcut cost exactly the same;
	// the shortcut reaches the goal's frontier entry first.
	pos := [][2]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	g := newGraph(s.T(), pos, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{0, 4})

	path, err := astar.Search(g, 0, 4, astar.WithFrontier(s.kind))
	s.Require().NoError(err)
	s.Require().Equal([]int{0, 4}, path)
}

func (s *SearchSuite) TestNoPath() {
	g := newGraph(s.T(), basicPositions[:5], [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{0, 4})
	s.Require().NoError(g.RemoveEdge(4)) // 0–4
	s.Require().NoError(g.RemoveEdge(3)) // 3–4

	path, err := s.run(g, 0, 4)
	s.Require().ErrorIs(err, astar.ErrPathNotFound)
	s.Require().Nil(path)
}

func (s *SearchSuite) TestBasicNetwork() {
	g := basicGraph(s.T())

	res, err := s.run(g, 0, 4)
	s.Require().NoError(err)
	s.Require().Equal([]int{0, 1, 2, 3, 4}, res.Path)
	s.Require().InDelta(403.9544200137925, res.Cost, 1e-9)
	s.Require().Equal(7, res.Expanded)
	requireValidPath(s.T(), g, res, 0, 4)
}

func (s *SearchSuite) TestAlternativePath() {
	g := basicGraph(s.T())
	s.Require().NoError(g.RemoveEdge(4)) // 4–5
	s.Require().NoError(g.AddEdge(core.NewEdge(1, 4)))

	path, err := astar.Search(g, 0, 4, astar.WithFrontier(s.kind))
	s.Require().NoError(err)
	s.Require().Equal([]int{0, 1, 4}, path)
}

func (s *SearchSuite) TestTrivialPath() {
	g := basicGraph(s.T())
	for i := 0; i < g.NodeCount(); i++ {
		res, err := s.run(g, i, i)
		s.Require().NoError(err)
		s.Require().Equal([]int{i}, res.Path)
		s.Require().Zero(res.Cost)
	}
}

func (s *SearchSuite) TestGrid() {
	g := gridGraph(s.T())

	res, err := s.run(g, 90, 29)
	s.Require().NoError(err)
	s.Require().Equal([]int{90, 91, 92, 82, 83, 73, 74, 64, 65, 55, 56, 46, 47, 37, 38, 28, 29}, res.Path)
	s.Require().Equal(800.0, res.Cost)
	requireValidPath(s.T(), g, res, 90, 29)

	// Every step moves one column right or one row up.
	for i := 1; i < len(res.Path); i++ {
		step := res.Path[i] - res.Path[i-1]
		s.Require().True(step == 1 || step == -10, "step %d→%d", res.Path[i-1], res.Path[i])
	}
}

func (s *SearchSuite) TestGridManhattanAndZero() {
	g := gridGraph(s.T())
	want := []int{90, 80, 70, 60, 50, 40, 30, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29}

	for _, h := range []astar.Heuristic{astar.Manhattan, astar.Zero} {
		res, err := s.run(g, 90, 29, astar.WithHeuristic(h))
		s.Require().NoError(err)
		s.Require().Equal(want, res.Path)
		s.Require().Equal(800.0, res.Cost)
	}
}

func (s *SearchSuite) TestHooks() {
	g := basicGraph(s.T())
	var expanded []int
	relaxed := 0

	res, err := s.run(g, 0, 4,
		astar.WithOnExpand(func(index int, _ float64) { expanded = append(expanded, index) }),
		astar.WithOnRelax(func(from, to int, gScore float64) {
			relaxed++
			s.Require().True(g.HasEdgeBiDirectional(from, to))
			s.Require().Positive(gScore)
		}),
	)
	s.Require().NoError(err)
	s.Require().Len(expanded, res.Expanded)
	s.Require().Equal(0, expanded[0])
	s.Require().Equal(4, expanded[len(expanded)-1])
	s.Require().GreaterOrEqual(relaxed, len(res.Path)-1)
}

func (s *SearchSuite) TestValidation() {
	g := basicGraph(s.T())

	_, err := s.run(nil, 0, 1)
	s.Require().ErrorIs(err, astar.ErrNilGraph)

	_, err = s.run(g, 0, 10)
	s.Require().ErrorIs(err, astar.ErrNodeNotFound)
	s.Require().ErrorIs(err, core.ErrOutOfRangeIndex)

	_, err = s.run(g, -1, 3)
	s.Require().ErrorIs(err, astar.ErrNodeNotFound)

	_, err = s.run(g, 0, 1, astar.WithHeuristic(nil))
	s.Require().ErrorIs(err, astar.ErrNilHeuristic)

	_, err = astar.Run(g, 0, 1, astar.WithFrontier(astar.FrontierKind(9)))
	s.Require().ErrorIs(err, astar.ErrUnknownFrontier)
}

func (s *SearchSuite) TestDisconnectedNode() {
	g := basicGraph(s.T())
	s.Require().NoError(g.AddNode(core.NewNode(10, 0, 0)))

	_, err := s.run(g, 0, 10)
	s.Require().True(errors.Is(err, astar.ErrPathNotFound))
}

func TestParseFrontierKind(t *testing.T) {
	for in, want := range map[string]astar.FrontierKind{
		"":        astar.FrontierLinear,
		"linear":  astar.FrontierLinear,
		"ordered": astar.FrontierOrdered,
	} {
		got, err := astar.ParseFrontierKind(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
		if in != "" {
			require.Equal(t, in, got.String())
		}
	}
	_, err := astar.ParseFrontierKind("heap")
	require.ErrorIs(t, err, astar.ErrUnknownFrontier)
}

// randomGraph places n nodes on a small integer lattice, so equal-cost
// routes and equal f-scores are common.
func randomGraph(t *testing.T, rng *rand.Rand, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.NewNode(i, float64(rng.Intn(10)), float64(rng.Intn(10)))))
	}
	for k := rng.Intn(3*n + 1); k > 0; k-- {
		require.NoError(t, g.AddEdge(core.NewEdge(rng.Intn(n), rng.Intn(n))))
	}

	return g
}

// TestFrontiersAgree checks that both frontiers make identical selections on
// tie-heavy random graphs, that every returned path is valid and optimal, and
// that a path is missing exactly when the goal is unreachable.
func TestFrontiersAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	heuristics := []astar.Heuristic{astar.Euclidean, astar.Manhattan, astar.Zero}

	for trial := 0; trial < 300; trial++ {
		n := 2 + rng.Intn(29)
		g := randomGraph(t, rng, n)
		start, goal := rng.Intn(n), rng.Intn(n)
		reachable, err := bfs.Reachable(g, start, goal)
		require.NoError(t, err)

		for hi, h := range heuristics {
			var results [2]*astar.Result
			var errs [2]error
			for fi, kind := range frontiers {
				results[fi], errs[fi] = astar.Run(g, start, goal, astar.WithHeuristic(h), astar.WithFrontier(kind))
			}
			require.Equal(t, errs[0] == nil, errs[1] == nil, "trial %d heuristic %d", trial, hi)
			require.Equal(t, reachable, errs[0] == nil, "trial %d heuristic %d", trial, hi)
			if errs[0] != nil {
				require.ErrorIs(t, errs[0], astar.ErrPathNotFound)
				require.ErrorIs(t, errs[1], astar.ErrPathNotFound)
				continue
			}
			require.Equal(t, results[0], results[1], "trial %d heuristic %d", trial, hi)
			requireValidPath(t, g, results[0], start, goal)
		}

		// Euclidean is admissible, so it matches the uninformed optimum.
		withEuclid, errE := astar.Run(g, start, goal)
		withZero, errZ := astar.Run(g, start, goal, astar.WithHeuristic(astar.Zero))
		if errE == nil && errZ == nil {
			require.InDelta(t, withZero.Cost, withEuclid.Cost, 1e-9)
		}
	}
}

func TestParseHeuristic(t *testing.T) {
	a, b := core.NewNode(0, 0, 0), core.NewNode(1, 3, 4)
	for name, want := range map[string]float64{"": 5, "euclidean": 5, "manhattan": 7, "zero": 0} {
		h, err := astar.ParseHeuristic(name)
		require.NoError(t, err)
		require.Equal(t, want, h(a, b), name)
	}
	_, err := astar.ParseHeuristic("chebyshev")
	require.ErrorIs(t, err, astar.ErrUnknownHeuristic)
}
