// Package builder provides reusable functional-options-style constructors
// for positioned graphs. It lives alongside core to centralize fixtures:
// lattices, hand-placed networks, and seeded random layouts.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new graph, options resolved once, constructors run in order.
//     – Apply(g, bopts, cons...):          the same against an existing graph.
//   - Constructors (Constructor):
//     – Positions(pts...):                 append nodes at explicit coordinates.
//     – Chain(first, last):                link consecutive indices.
//     – Connect(pairs...):                 explicit edges.
//     – Grid(rows, cols):                  4-neighborhood lattice, right then down edges.
//     – RandomGeometric(n, w, h, radius):  seeded random points joined within radius.
//   - Configuration primitives (BuilderOption):
//     – WithOrigin(x, y), WithSpacing(s):  lattice placement.
//     – WithSeed(seed), WithRand(r):       RNG for stochastic constructors.
//
// Guarantees:
//
//   - Determinism: identical inputs, options, seed, and constructor order
//     produce identical graphs, slot for slot.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping builder and core sentinels.
package builder
