package scenario

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathnet/astar"
	"github.com/katalvlaran/pathnet/bfs"
	"github.com/katalvlaran/pathnet/config"
	"github.com/katalvlaran/pathnet/core"
	"github.com/katalvlaran/pathnet/metrics"
)

// Runner builds and searches scenarios. The zero value is not usable; call NewRunner.
type Runner struct {
	logger    *slog.Logger
	metrics   *metrics.Recorder
	graphOpts []core.GraphOption
	search    config.SearchConfig
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records every run on rec.
func WithMetrics(rec *metrics.Recorder) RunnerOption {
	return func(r *Runner) { r.metrics = rec }
}

// WithGraphOptions passes options to every graph the Runner builds.
func WithGraphOptions(opts ...core.GraphOption) RunnerOption {
	return func(r *Runner) { r.graphOpts = append(r.graphOpts, opts...) }
}

// WithSearchDefaults sets the heuristic and frontier used when a scenario
// does not name its own.
func WithSearchDefaults(s config.SearchConfig) RunnerOption {
	return func(r *Runner) { r.search = s }
}

// NewRunner returns a Runner with euclidean/linear search defaults.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: slog.Default(),
		search: config.SearchConfig{
			Heuristic: config.DefaultHeuristic,
			Frontier:  config.DefaultFrontier,
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run builds sc, searches it and checks the expectation, if any.
//
// An unreachable goal is a result, not an error: the Report has Found=false
// and Run returns nil unless sc expects a path. Invalid definitions, graph
// construction failures and unknown endpoints are returned as errors.
func (r *Runner) Run(ctx context.Context, sc Scenario) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	rep := &Report{RunID: uuid.New().String(), Scenario: sc.Name}
	log := r.logger.With("run_id", rep.RunID, "scenario", sc.Name)

	g, err := sc.Build(r.graphOpts...)
	if err != nil {
		log.ErrorContext(ctx, "build failed", "error", err)
		return nil, err
	}
	rep.Nodes, rep.Edges = g.NodeCount(), g.EdgeCount()
	r.metrics.SetGraphSize(sc.Name, rep.Nodes, rep.Edges)
	log.DebugContext(ctx, "graph built", "nodes", rep.Nodes, "edges", rep.Edges, "mutations", len(sc.Mutations))

	if rep.Start, rep.Goal, err = sc.Resolve(g); err != nil {
		log.ErrorContext(ctx, "resolve failed", "error", err)
		return nil, err
	}

	search := sc.searchConfig(r.search)
	rep.Heuristic, rep.Frontier = search.Heuristic, search.Frontier
	opts, err := config.SearchOptions(search)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sc.Name, err)
	}
	expanded := 0
	opts = append(opts, astar.WithOnExpand(func(index int, f float64) {
		expanded++
		log.DebugContext(ctx, "expand", "node", index, "f", f)
	}))

	began := time.Now()
	res, err := astar.Run(g, rep.Start, rep.Goal, opts...)
	rep.Duration = time.Since(began)
	rep.Expanded = expanded

	if err == nil || errors.Is(err, astar.ErrPathNotFound) {
		walk, werr := bfs.BFS(g, rep.Start, bfs.WithContext(ctx))
		if werr != nil {
			return nil, fmt.Errorf("%s: %w", sc.Name, werr)
		}
		rep.Reachable, rep.Hops = len(walk.Order), bfs.Unreached
		if walk.Reached(rep.Goal) {
			rep.Hops = walk.Depth[rep.Goal]
		}
	}

	switch {
	case err == nil:
		rep.Found, rep.Path, rep.Cost = true, res.Path, res.Cost
		r.metrics.ObserveSearch(search.Frontier, metrics.OutcomeFound, rep.Duration, expanded, len(res.Path))
		log.InfoContext(ctx, "path found",
			"start", rep.Start, "goal", rep.Goal, "path", rep.Path,
			"cost", rep.Cost, "hops", rep.Hops, "expanded", expanded, "duration", rep.Duration)
	case errors.Is(err, astar.ErrPathNotFound):
		r.metrics.ObserveSearch(search.Frontier, metrics.OutcomeNotFound, rep.Duration, expanded, 0)
		log.InfoContext(ctx, "no path",
			"start", rep.Start, "goal", rep.Goal, "expanded", expanded, "reachable", rep.Reachable)
	default:
		r.metrics.ObserveSearch(search.Frontier, metrics.OutcomeError, rep.Duration, 0, 0)
		log.ErrorContext(ctx, "search failed", "error", err)
		return nil, fmt.Errorf("%s: %w", sc.Name, err)
	}

	if err := rep.check(sc.Expect); err != nil {
		log.WarnContext(ctx, "expectation failed", "error", err)
		return rep, err
	}

	return rep, nil
}

// RunAll runs every scenario in order and returns the reports of those that
// ran. Failures do not stop the batch; they are joined into the error.
func (r *Runner) RunAll(ctx context.Context, scs []Scenario) ([]*Report, error) {
	reports := make([]*Report, 0, len(scs))
	var errs []error
	for _, sc := range scs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		rep, err := r.Run(ctx, sc)
		if rep != nil {
			reports = append(reports, rep)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	return reports, errors.Join(errs...)
}

// check compares the report with exp. A nil exp always passes.
func (rep *Report) check(exp *Expectation) error {
	if exp == nil {
		return nil
	}
	if exp.NoPath && rep.Found {
		return fmt.Errorf("%w: %s: want no path, got %v", ErrUnexpectedResult, rep.Scenario, rep.Path)
	}
	if len(exp.Path) > 0 && !slices.Equal(exp.Path, rep.Path) {
		if !rep.Found {
			return fmt.Errorf("%w: %s: want %v, got no path", ErrUnexpectedResult, rep.Scenario, exp.Path)
		}
		return fmt.Errorf("%w: %s: want %v, got %v", ErrUnexpectedResult, rep.Scenario, exp.Path, rep.Path)
	}

	return nil
}
