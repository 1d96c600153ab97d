// SPDX-License-Identifier: MIT
// Package: pathnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   - origin  = (0, 0)
//   - spacing = 1
//   - rng     = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Lattice placement.
	originX, originY float64
	spacing          float64

	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

const defaultSpacing = 1.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{spacing: defaultSpacing}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
