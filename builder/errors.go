// SPDX-License-Identifier: MIT
// Package: pathnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context using `%w`.
//   - Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols, chain span)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidParameter indicates a geometric parameter outside its domain,
// e.g. a non-positive radius or area.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed, e.g. a nil
// constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// Priority when several validations fail:
//   - ErrTooFewNodes       size checks first (n, rows, cols).
//   - ErrInvalidParameter  then geometric domains.
//   - ErrNeedRandSource    then RNG presence for stochastic builders.
//   - core sentinels       surface unchanged (wrapped) from graph mutations.
