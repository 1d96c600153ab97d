package scenario

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Report is the outcome of one Run.
type Report struct {
	RunID     string
	Scenario  string
	Nodes     int
	Edges     int
	Start     int
	Goal      int
	Heuristic string
	Frontier  string
	Found     bool
	Path      []int
	Cost      float64
	Expanded  int
	Duration  time.Duration

	// Reachable counts the nodes in start's component, start included.
	Reachable int
	// Hops is the fewest-edge distance from start to goal, -1 if unreachable.
	Hops int
}

// WriteTo prints the report as a header line followed by one "  ↳ i" line
// per path node.
func (rep *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, rep.String())
	return int64(n), err
}

func (rep *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d nodes, %d edges, %d -> %d (%s, %s)\n",
		rep.Scenario, rep.Nodes, rep.Edges, rep.Start, rep.Goal, rep.Heuristic, rep.Frontier)
	if !rep.Found {
		fmt.Fprintf(&b, "No path (%d expanded)\n", rep.Expanded)
		return b.String()
	}
	fmt.Fprintf(&b, "Path (cost %.3f, %d expanded):\n", rep.Cost, rep.Expanded)
	for _, i := range rep.Path {
		fmt.Fprintf(&b, "  ↳ %d\n", i)
	}

	return b.String()
}
