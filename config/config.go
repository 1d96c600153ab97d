// Package config provides configuration management for pathnet.
//
// Config file locations (priority order):
//  1. $PATHNET_CONFIG
//  2. ./pathnet.yaml
//  3. $XDG_CONFIG_HOME/pathnet/config.yaml
//  4. ~/.config/pathnet/config.yaml
//
// Missing files are not an error: Load falls back to DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathnet/astar"
	"github.com/katalvlaran/pathnet/core"
)

// ErrInvalidConfig is returned by Validate, wrapped with the offending field.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the root of pathnet.yaml.
type Config struct {
	Version   int           `yaml:"version"`
	Log       LogConfig     `yaml:"log"`
	Graph     GraphConfig   `yaml:"graph"`
	Search    SearchConfig  `yaml:"search"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Scenarios []string      `yaml:"scenarios,omitempty"` // extra scenario files to run
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// GraphConfig carries the graph ceilings.
type GraphConfig struct {
	MaxNodes int `yaml:"max_nodes"`
	MaxEdges int `yaml:"max_edges"`
}

// SearchConfig carries the default search options. Scenarios may override them.
type SearchConfig struct {
	Heuristic string `yaml:"heuristic"` // euclidean, manhattan, zero
	Frontier  string `yaml:"frontier"`  // linear, ordered
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Path    string `yaml:"path"`
}

// Defaults.
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultHeuristic   = "euclidean"
	DefaultFrontier    = "linear"
	DefaultMetricsAddr = ":9090"
	DefaultMetricsPath = "/metrics"
)

// Load finds and loads the config file, or returns defaults if none found.
// The returned string is the path used ("" for defaults).
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path, fills defaults and validates.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Parse decodes YAML, fills defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes config to the specified path.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Graph.MaxNodes == 0 {
		c.Graph.MaxNodes = core.DefaultMaxNodes
	}
	if c.Graph.MaxEdges == 0 {
		c.Graph.MaxEdges = core.DefaultMaxEdges
	}
	if c.Search.Heuristic == "" {
		c.Search.Heuristic = DefaultHeuristic
	}
	if c.Search.Frontier == "" {
		c.Search.Frontier = DefaultFrontier
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = DefaultMetricsAddr
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if c.Graph.MaxNodes < 0 || c.Graph.MaxEdges < 0 {
		return fmt.Errorf("%w: graph ceilings must be >= 0 (0 means default)", ErrInvalidConfig)
	}
	if _, err := astar.ParseHeuristic(c.Search.Heuristic); err != nil {
		return fmt.Errorf("%w: search.heuristic: %w", ErrInvalidConfig, err)
	}
	if _, err := astar.ParseFrontierKind(c.Search.Frontier); err != nil {
		return fmt.Errorf("%w: search.frontier: %w", ErrInvalidConfig, err)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path %q must start with /", ErrInvalidConfig, c.Metrics.Path)
	}

	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.Log.Level)
	return lvl
}

// GraphOptions returns the core options for the configured ceilings.
func (c *Config) GraphOptions() []core.GraphOption {
	return []core.GraphOption{core.WithMaxNodes(c.Graph.MaxNodes), core.WithMaxEdges(c.Graph.MaxEdges)}
}

// SearchOptions returns the astar options for the configured defaults.
func (c *Config) SearchOptions() ([]astar.Option, error) {
	return SearchOptions(c.Search)
}

// SearchOptions converts a SearchConfig into astar options.
func SearchOptions(s SearchConfig) ([]astar.Option, error) {
	h, err := astar.ParseHeuristic(s.Heuristic)
	if err != nil {
		return nil, err
	}
	kind, err := astar.ParseFrontierKind(s.Frontier)
	if err != nil {
		return nil, err
	}

	return []astar.Option{astar.WithHeuristic(h), astar.WithFrontier(kind)}, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, s)
	}

	return lvl, nil
}
