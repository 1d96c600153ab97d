package spatial_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathnet/core"
	"github.com/katalvlaran/pathnet/spatial"
)

type IndexSuite struct {
	suite.Suite
	nodes []core.Node
	ix    *spatial.Index
}

// SetupTest indexes a 10×10 lattice at spacing 50 from (50,50).
func (s *IndexSuite) SetupTest() {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		s.Require().NoError(g.AddNode(core.NewNode(i, float64(i%10*50+50), float64(i/10*50+50))))
	}
	ix, err := spatial.FromGraph(g)
	s.Require().NoError(err)
	s.ix = ix
	s.nodes = g.Nodes()
}

func TestIndexSuite(t *testing.T) {
	suite.Run(t, new(IndexSuite))
}

func (s *IndexSuite) TestLen() {
	s.Require().Equal(100, s.ix.Len())
}

func (s *IndexSuite) TestNearestSnapsToLattice() {
	n, err := s.ix.Nearest(52, 498)
	s.Require().NoError(err)
	s.Require().Equal(90, n.Index)

	n, err = s.ix.Nearest(1000, -1000)
	s.Require().NoError(err)
	s.Require().Equal(9, n.Index)
}

func (s *IndexSuite) TestNearestTieTakesLowestIndex() {
	// (75,75) is equidistant from nodes 0, 1, 10 and 11.
	n, err := s.ix.Nearest(75, 75)
	s.Require().NoError(err)
	s.Require().Equal(0, n.Index)
}

func (s *IndexSuite) TestWithinIsClosedAndOrdered() {
	got := s.ix.Within(100, 100, 150, 150)
	s.Require().Equal([]int{11, 12, 21, 22}, indices(got))

	// Swapped corners and a degenerate box.
	s.Require().Equal([]int{11, 12, 21, 22}, indices(s.ix.Within(150, 150, 100, 100)))
	s.Require().Equal([]int{11}, indices(s.ix.Within(100, 100, 100, 100)))
	s.Require().Empty(s.ix.Within(60, 60, 90, 90))
}

func (s *IndexSuite) TestRadius() {
	got := s.ix.Radius(100, 100, 50)
	s.Require().Equal([]int{1, 10, 11, 12, 21}, indices(got))
	s.Require().Empty(s.ix.Radius(100, 100, -1))
}

func (s *IndexSuite) TestKNearest() {
	got := s.ix.KNearest(51, 51, 3)
	s.Require().Len(got, 3)
	s.Require().Equal(0, got[0].Index)
	s.Require().ElementsMatch([]int{1, 10}, indices(got[1:]))
	s.Require().Empty(s.ix.KNearest(0, 0, 0))
}

func TestEmptyIndex(t *testing.T) {
	ix := spatial.NewIndex(nil)
	_, err := ix.Nearest(0, 0)
	require.ErrorIs(t, err, spatial.ErrEmptyIndex)
	require.Empty(t, ix.Within(-1, -1, 1, 1))
	require.Empty(t, ix.KNearest(0, 0, 5))

	_, err = spatial.FromGraph(nil)
	require.ErrorIs(t, err, spatial.ErrNilGraph)
}

func TestNewIndexSkipsInactive(t *testing.T) {
	ix := spatial.NewIndex([]core.Node{core.NewNode(0, 1, 1), core.InactiveNode()})
	require.Equal(t, 1, ix.Len())
}

// TestNearestMatchesScan compares against a brute-force scan on random points.
func TestNearestMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	nodes := make([]core.Node, 500)
	for i := range nodes {
		nodes[i] = core.NewNode(i, float64(rng.Intn(200)), float64(rng.Intn(200)))
	}
	ix := spatial.NewIndex(nodes)

	for q := 0; q < 200; q++ {
		x, y := rng.Float64()*220-10, rng.Float64()*220-10
		probe := core.NewNode(0, x, y)
		want := nodes[0]
		for _, n := range nodes[1:] {
			if core.Distance(probe, n) < core.Distance(probe, want) {
				want = n
			}
		}
		got, err := ix.Nearest(x, y)
		require.NoError(t, err)
		require.Equal(t, want, got, "query (%v,%v)", x, y)

		inBox := ix.Within(x-20, y-20, x+20, y+20)
		var scan []int
		for _, n := range nodes {
			if n.X >= x-20 && n.X <= x+20 && n.Y >= y-20 && n.Y <= y+20 {
				scan = append(scan, n.Index)
			}
		}
		sort.Ints(scan)
		if len(scan) == 0 {
			require.Empty(t, inBox)
		} else {
			require.Equal(t, scan, indices(inBox))
		}
	}
}

func indices(nodes []core.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Index
	}

	return out
}
