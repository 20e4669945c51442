// SPDX-License-Identifier: MIT
// Package: mstree/builder
//
// api.go - public entry point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Same inputs, options, seed and constructor order give identical graphs.
//   - Constructors return sentinel errors; only option constructors panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstree/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return
// sentinel errors wrapped with the method name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity: O(len(bopts)) to resolve options plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topology factories, implemented in impl_*.go. Each returns a Constructor
// that adds vertices via cfg.idFn (except the fixed hub "Center") and emits
// edges in a stable, documented order with weights from cfg.weightFn.
//
//	Path(n)               P_n, n ≥ 2,           edges i-(i+1)
//	Cycle(n)              C_n, n ≥ 3,           edges i-(i+1)%n
//	Star(n)               Center + n-1 leaves,  n ≥ 2
//	Wheel(n)              C_{n-1} + Center,     n ≥ 4
//	Complete(n)           K_n, n ≥ 1,           pairs i<j row-major
//	Grid(rows, cols)      4-neighbourhood,      IDs "r,c"
//	RandomSparse(n, p)    Erdős–Rényi G(n,p),   needs an RNG
//	RandomConnected(n, k) random spanning tree + k extra edges, needs an RNG
