package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathnet/config"
	"github.com/katalvlaran/pathnet/metrics"
	"github.com/katalvlaran/pathnet/scenario"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func quietConfig(t *testing.T) string {
	return writeFile(t, "pathnet.yaml", "log:\n  level: error\n")
}

func TestRunBundledScenarios(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", quietConfig(t), "-scenario", "shortcut, no-path"}, &stdout, &stderr)
	require.NoError(t, err)
	require.Equal(t, `shortcut: 5 nodes, 5 edges, 0 -> 4 (euclidean, linear)
Path (cost 343.127, 2 expanded):
  ↳ 0
  ↳ 4
no-path: 5 nodes, 3 edges, 0 -> 4 (euclidean, linear)
No path (4 expanded)
`, stdout.String())
	require.Empty(t, stderr.String())
}

func TestRunAllBundledByDefault(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", quietConfig(t)}, &stdout, io.Discard))
	for _, name := range scenario.BuiltinNames() {
		require.Contains(t, stdout.String(), name+": ")
	}
}

func TestRunFileWithOverrides(t *testing.T) {
	file := writeFile(t, "extra.yaml", `
scenarios:
  - name: triangle
    nodes: [[0, 0], [4, 0], [4, 3]]
    edges: [[0, 1], [1, 2], [0, 2]]
    start: [0.1, 0.1]
    goal: 2
    expect: {path: [0, 2]}
`)
	var stdout bytes.Buffer
	err := run(context.Background(),
		[]string{"-config", quietConfig(t), "-file", file, "-frontier", "ordered", "-heuristic", "zero"},
		&stdout, io.Discard)
	require.NoError(t, err)
	require.Equal(t, `triangle: 3 nodes, 3 edges, 0 -> 2 (zero, ordered)
Path (cost 5.000, 3 expanded):
  ↳ 0
  ↳ 2
`, stdout.String())
}

func TestRunErrors(t *testing.T) {
	cfg := quietConfig(t)
	cases := map[string][]string{
		"unknown scenario": {"-config", cfg, "-scenario", "atlantis"},
		"bad frontier":     {"-config", cfg, "-frontier", "fib"},
		"missing config":   {"-config", filepath.Join(t.TempDir(), "none.yaml")},
		"missing file":     {"-config", cfg, "-file", filepath.Join(t.TempDir(), "none.yaml")},
		"stray argument":   {"-config", cfg, "basic"},
		"unknown flag":     {"-nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, run(context.Background(), args, io.Discard, io.Discard))
		})
	}
}

func TestRunExpectationFailure(t *testing.T) {
	file := writeFile(t, "bad.yaml", `
scenarios:
  - name: pair
    nodes: [[0, 0], [1, 0]]
    start: 0
    goal: 1
    expect: {path: [0, 1]}
`)
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-config", quietConfig(t), "-file", file}, &stdout, io.Discard)
	require.ErrorIs(t, err, scenario.ErrUnexpectedResult)
	require.Contains(t, stdout.String(), "No path")
}

func TestRunList(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-list"}, &stdout, io.Discard))
	require.Contains(t, stdout.String(), "grid")
	require.Contains(t, stdout.String(), "ten-node demo network")
}

func TestRunWithMetrics(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(),
		[]string{"-config", quietConfig(t), "-scenario", "basic", "-metrics-addr", "127.0.0.1:0"},
		&stdout, io.Discard)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "  ↳ 4")
}

func TestServeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg).SetGraphSize("basic", 10, 12)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := serveMetrics(config.MetricsConfig{Addr: "127.0.0.1:0", Path: "/metrics"}, reg, logger)
	require.NoError(t, err)
	defer shutdown(srv, logger)

	resp, err := http.Get("http://" + srv.Addr + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `pathnet_graph_edges{scenario="basic"} 12`)
}
