// Command pathnet builds graph scenarios and runs A* over them.
//
//	pathnet                          run every bundled scenario
//	pathnet -scenario basic,grid     run the named bundled scenarios
//	pathnet -file extra.yaml         also run the scenarios in a file
//	pathnet -list                    list bundled scenarios
//	pathnet -serve                   keep serving /metrics until interrupted
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/pathnet/config"
	"github.com/katalvlaran/pathnet/metrics"
	"github.com/katalvlaran/pathnet/scenario"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pathnet:", err)
		stop()
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	scenarios   string
	files       []string
	heuristic   string
	frontier    string
	metricsAddr string
	serve       bool
	list        bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	fs := flag.NewFlagSet("pathnet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "config file (default: $"+config.EnvConfigPath+", ./"+config.ConfigFileName+", XDG)")
	fs.StringVar(&o.scenarios, "scenario", "", "comma-separated bundled scenarios to run (default: all)")
	fs.Func("file", "scenario file to run (repeatable)", func(s string) error {
		o.files = append(o.files, s)
		return nil
	})
	fs.StringVar(&o.heuristic, "heuristic", "", "override search.heuristic (euclidean, manhattan, zero)")
	fs.StringVar(&o.frontier, "frontier", "", "override search.frontier (linear, ordered)")
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (enables metrics)")
	fs.BoolVar(&o.serve, "serve", false, "keep serving metrics after the runs until interrupted")
	fs.BoolVar(&o.list, "list", false, "list bundled scenarios and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return &o, nil
}

func loadConfig(o *options) (*config.Config, string, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if o.configPath != "" {
		cfg, path, err = config.LoadFromPath(o.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return nil, path, err
	}

	if o.heuristic != "" {
		cfg.Search.Heuristic = o.heuristic
	}
	if o.frontier != "" {
		cfg.Search.Frontier = o.frontier
	}
	if o.metricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Addr = o.metricsAddr
	}

	return cfg, path, cfg.Validate()
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// selectScenarios resolves the bundled names plus every file listed in the
// config and on the command line.
func selectScenarios(o *options, cfg *config.Config) ([]scenario.Scenario, error) {
	var scs []scenario.Scenario
	switch {
	case o.scenarios != "":
		for _, name := range strings.Split(o.scenarios, ",") {
			sc, err := scenario.Builtin(strings.TrimSpace(name))
			if err != nil {
				return nil, err
			}
			scs = append(scs, sc)
		}
	case len(o.files) == 0 && len(cfg.Scenarios) == 0:
		scs = scenario.Builtins()
	}

	for _, path := range append(append([]string{}, cfg.Scenarios...), o.files...) {
		more, err := scenario.LoadFile(path)
		if err != nil {
			return nil, err
		}
		scs = append(scs, more...)
	}

	return scs, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if o.list {
		for _, sc := range scenario.Builtins() {
			fmt.Fprintf(stdout, "%-12s %s\n", sc.Name, sc.Description)
		}
		return nil
	}

	cfg, path, err := loadConfig(o)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, stderr)
	if path != "" {
		logger.Info("config loaded", "path", path)
	}

	runnerOpts := []scenario.RunnerOption{
		scenario.WithLogger(logger),
		scenario.WithGraphOptions(cfg.GraphOptions()...),
		scenario.WithSearchDefaults(cfg.Search),
	}

	var srv *http.Server
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		runnerOpts = append(runnerOpts, scenario.WithMetrics(metrics.New(reg)))

		srv, err = serveMetrics(cfg.Metrics, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown(srv, logger)
	}

	scs, err := selectScenarios(o, cfg)
	if err != nil {
		return err
	}
	reports, runErr := scenario.NewRunner(runnerOpts...).RunAll(ctx, scs)
	for _, rep := range reports {
		if _, err := rep.WriteTo(stdout); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	if o.serve && srv != nil {
		logger.Info("serving metrics until interrupted", "addr", srv.Addr, "path", cfg.Metrics.Path)
		<-ctx.Done()
	}

	return nil
}

func serveMetrics(mc config.MetricsConfig, reg *prometheus.Registry, logger *slog.Logger) (*http.Server, error) {
	ln, err := net.Listen("tcp", mc.Addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(mc.Path, metrics.Handler(reg))
	srv := &http.Server{
		Addr:              ln.Addr().String(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()
	logger.Info("metrics listening", "addr", srv.Addr, "path", mc.Path)

	return srv, nil
}

func shutdown(srv *http.Server, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("metrics shutdown", "error", err)
	}
}
