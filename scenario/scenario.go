// Package scenario describes reproducible search runs: how to build a graph,
// how to edit it, where to search from and to, and what the outcome must be.
//
// Scenarios are YAML documents:
//
//	scenarios:
//	  - name: shortcut
//	    nodes: [[50, 299], [190, 255], [260, 154], [304, 190], [380, 205]]
//	    chain: true
//	    edges: [[0, 4]]
//	    start: 0
//	    goal: 4
//	    expect:
//	      path: [0, 4]
//
// A graph may instead come from a grid, a terrain map or a seeded random
// layout:
//
//	terrain:
//	  spacing: 10
//	  rows: ["....", ".##.", "...."]
//
// An endpoint is either a node index or an [x, y] point; a point resolves to
// the nearest active node once the graph is built and mutated.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathnet/builder"
	"github.com/katalvlaran/pathnet/config"
)

//go:embed builtin.yaml
var builtinYAML []byte

var (
	// ErrInvalidScenario is returned for definitions that cannot be run.
	ErrInvalidScenario = errors.New("scenario: invalid")

	// ErrUnknownScenario is returned by Builtin for names it does not know.
	ErrUnknownScenario = errors.New("scenario: unknown")

	// ErrUnexpectedResult is returned when a run contradicts its expectation.
	ErrUnexpectedResult = errors.New("scenario: unexpected result")
)

// Scenario is one search run.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Graph sources, applied in this order: Grid or Terrain, Random, Nodes, Chain, Edges.
	Origin  builder.Point   `yaml:"origin,omitempty"`
	Grid    *GridSpec       `yaml:"grid,omitempty"`
	Terrain *TerrainSpec    `yaml:"terrain,omitempty"`
	Random  *RandomSpec     `yaml:"random,omitempty"`
	Nodes   []builder.Point `yaml:"nodes,omitempty"`
	Chain   bool            `yaml:"chain,omitempty"` // join Nodes in listed order
	Edges   [][2]int        `yaml:"edges,omitempty"`

	Mutations []Mutation `yaml:"mutations,omitempty"`

	Start  Endpoint             `yaml:"start"`
	Goal   Endpoint             `yaml:"goal"`
	Search *config.SearchConfig `yaml:"search,omitempty"`
	Expect *Expectation         `yaml:"expect,omitempty"`
}

// GridSpec is a rows×cols lattice joined to right and lower neighbors.
type GridSpec struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Spacing float64 `yaml:"spacing,omitempty"`
}

// TerrainSpec is a text occupancy map: '.' open, '#' blocked, one string per row.
type TerrainSpec struct {
	Rows     []string `yaml:"rows"`
	Diagonal bool     `yaml:"diagonal,omitempty"`
	Spacing  float64  `yaml:"spacing,omitempty"`
}

// RandomSpec is a seeded random geometric graph.
type RandomSpec struct {
	N      int     `yaml:"n"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
	Seed   int64   `yaml:"seed"`
}

// Expectation pins the outcome of a run.
type Expectation struct {
	Path   []int `yaml:"path,omitempty"`
	NoPath bool  `yaml:"no_path,omitempty"`
}

// Endpoint addresses a node by index or by position.
type Endpoint struct {
	Index *int
	At    *builder.Point
}

// AtIndex returns an Endpoint for node i.
func AtIndex(i int) Endpoint { return Endpoint{Index: &i} }

// AtPoint returns an Endpoint resolved to the node nearest (x, y).
func AtPoint(x, y float64) Endpoint {
	p := builder.Point{x, y}
	return Endpoint{At: &p}
}

// IsSet reports whether exactly one addressing mode is used.
func (e Endpoint) IsSet() bool { return (e.Index == nil) != (e.At == nil) }

func (e Endpoint) String() string {
	switch {
	case e.Index != nil:
		return fmt.Sprintf("%d", *e.Index)
	case e.At != nil:
		return fmt.Sprintf("(%g, %g)", e.At[0], e.At[1])
	default:
		return "<unset>"
	}
}

// UnmarshalYAML accepts `3`, `[120.5, 40]` or `{index: 3}` / `{at: [x, y]}`.
func (e *Endpoint) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var i int
		if err := value.Decode(&i); err != nil {
			return fmt.Errorf("endpoint index: %w", err)
		}
		e.Index = &i
	case yaml.SequenceNode:
		var p builder.Point
		if err := value.Decode(&p); err != nil {
			return fmt.Errorf("endpoint point: %w", err)
		}
		e.At = &p
	case yaml.MappingNode:
		var raw struct {
			Index *int           `yaml:"index"`
			At    *builder.Point `yaml:"at"`
		}
		if err := value.Decode(&raw); err != nil {
			return fmt.Errorf("endpoint: %w", err)
		}
		e.Index, e.At = raw.Index, raw.At
	default:
		return fmt.Errorf("endpoint: line %d: want an index or an [x, y] point", value.Line)
	}

	return nil
}

// MarshalYAML writes the short form.
func (e Endpoint) MarshalYAML() (interface{}, error) {
	switch {
	case e.Index != nil:
		return *e.Index, nil
	case e.At != nil:
		return []float64{e.At[0], e.At[1]}, nil
	default:
		return nil, nil
	}
}

// Mutation operations.
const (
	OpAddEdge        = "add_edge"
	OpRemoveEdge     = "remove_edge"
	OpAddNode        = "add_node"
	OpAddNodeBetween = "add_node_between"
	OpRemoveNode     = "remove_node"
)

// Mutation edits the graph after it is built. Node indices refer to the
// graph as it stands when the mutation runs, so earlier mutations may have
// shifted them.
type Mutation struct {
	Op      string        `yaml:"op"`
	Edge    [2]int        `yaml:"edge,omitempty"`    // add_edge, remove_edge
	Node    int           `yaml:"node,omitempty"`    // add_node, add_node_between, remove_node
	At      builder.Point `yaml:"at,omitempty"`      // add_node, add_node_between
	Between [2]int        `yaml:"between,omitempty"` // add_node_between
}

type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Parse decodes a scenario document and validates every entry.
func Parse(data []byte) ([]Scenario, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	seen := make(map[string]bool, len(f.Scenarios))
	for i := range f.Scenarios {
		sc := &f.Scenarios[i]
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("scenario #%d: %w", i, err)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidScenario, sc.Name)
		}
		seen[sc.Name] = true
	}

	return f.Scenarios, nil
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}

	scs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return scs, nil
}

// Builtins returns the bundled scenarios in file order.
func Builtins() []Scenario {
	scs, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("scenario: bundled definitions: %v", err))
	}

	return scs
}

// Builtin returns the bundled scenario called name.
func Builtin(name string) (Scenario, error) {
	for _, sc := range Builtins() {
		if sc.Name == name {
			return sc, nil
		}
	}

	return Scenario{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownScenario, name, BuiltinNames())
}

// BuiltinNames lists the bundled scenario names, sorted.
func BuiltinNames() []string {
	scs := Builtins()
	names := make([]string, len(scs))
	for i, sc := range scs {
		names[i] = sc.Name
	}
	sort.Strings(names)

	return names
}

// Validate reports definitions that can never run. Errors that depend on the
// built graph (unknown indices, capacity) surface from Build and Run instead.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}
	if sc.Grid == nil && sc.Terrain == nil && sc.Random == nil && len(sc.Nodes) == 0 {
		return fmt.Errorf("%w: %s: no grid, terrain, random or nodes", ErrInvalidScenario, sc.Name)
	}
	if sc.Grid != nil && sc.Terrain != nil {
		return fmt.Errorf("%w: %s: grid and terrain are exclusive", ErrInvalidScenario, sc.Name)
	}
	if sc.Grid != nil && sc.Grid.Spacing < 0 {
		return fmt.Errorf("%w: %s: grid.spacing %g < 0", ErrInvalidScenario, sc.Name, sc.Grid.Spacing)
	}
	if sc.Terrain != nil && sc.Terrain.Spacing < 0 {
		return fmt.Errorf("%w: %s: terrain.spacing %g < 0", ErrInvalidScenario, sc.Name, sc.Terrain.Spacing)
	}
	if sc.Chain && len(sc.Nodes) < 2 {
		return fmt.Errorf("%w: %s: chain needs at least 2 nodes", ErrInvalidScenario, sc.Name)
	}
	if !sc.Start.IsSet() {
		return fmt.Errorf("%w: %s: start must be an index or a point", ErrInvalidScenario, sc.Name)
	}
	if !sc.Goal.IsSet() {
		return fmt.Errorf("%w: %s: goal must be an index or a point", ErrInvalidScenario, sc.Name)
	}
	for i, m := range sc.Mutations {
		switch m.Op {
		case OpAddEdge, OpRemoveEdge, OpAddNode, OpAddNodeBetween, OpRemoveNode:
		default:
			return fmt.Errorf("%w: %s: mutation #%d: unknown op %q", ErrInvalidScenario, sc.Name, i, m.Op)
		}
	}
	if sc.Search != nil {
		if _, err := config.SearchOptions(sc.searchConfig(config.SearchConfig{
			Heuristic: config.DefaultHeuristic,
			Frontier:  config.DefaultFrontier,
		})); err != nil {
			return fmt.Errorf("%w: %s: search: %w", ErrInvalidScenario, sc.Name, err)
		}
	}
	if sc.Expect != nil && sc.Expect.NoPath && len(sc.Expect.Path) > 0 {
		return fmt.Errorf("%w: %s: expect has both path and no_path", ErrInvalidScenario, sc.Name)
	}

	return nil
}

// searchConfig overlays the scenario's search settings on defaults.
func (sc *Scenario) searchConfig(defaults config.SearchConfig) config.SearchConfig {
	out := defaults
	if sc.Search == nil {
		return out
	}
	if sc.Search.Heuristic != "" {
		out.Heuristic = sc.Search.Heuristic
	}
	if sc.Search.Frontier != "" {
		out.Frontier = sc.Search.Frontier
	}

	return out
}
