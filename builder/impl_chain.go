// SPDX-License-Identifier: MIT
// Package: pathnet/builder
//
// impl_chain.go - implementation of Chain(first, last) constructor.
//
// Contract:
//   - last - first ≥ 1 (else ErrTooFewNodes).
//   - Emits edges (i-1) → i for i = first+1..last in stable increasing order.
//   - Adds no nodes; every index in first..last must already exist
//     (else core.ErrEdgeEndpointInvalid, wrapped).
//
// Complexity:
//   - Time: O((last-first)·E) for the duplicate scans.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathnet/core"
)

const (
	methodChain  = "Chain"
	minChainSpan = 1
)

// Chain returns a Constructor that links nodes first..last into a path.
func Chain(first, last int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if last-first < minChainSpan {
			return fmt.Errorf("%s: first=%d, last=%d (span must be ≥ %d): %w",
				methodChain, first, last, minChainSpan, ErrTooFewNodes)
		}
		for i := first + 1; i <= last; i++ {
			if err := g.AddEdge(core.NewEdge(i-1, i)); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodChain, i-1, i, err)
			}
		}

		return nil
	}
}
