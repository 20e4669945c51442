// SPDX-License-Identifier: MIT
// Package: mstree/builder
//
// impl_classic.go - Path, Cycle, Star, Wheel and Complete constructors.
//
// Contract:
//   - Vertices are added via cfg.idFn in ascending index order before any edge.
//   - Edges are emitted in the order documented per constructor.
//   - Weights come from cfg.weightFn, one draw per edge in emission order.
//
// Complexity: O(V + E) time, O(V) extra space for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstree/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

// checkSize returns ErrTooFewVertices wrapped with method context when n < min.
func checkSize(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}

// Path returns a Constructor for the simple path P_n (n ≥ 2).
// Edge order: i-(i+1) for i = 0..n-2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodPath, n, minPathNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Edge order: i-(i+1)%n for i = 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor for a star with hub cfg.hub and n-1 leaves
// (n ≥ 2). Leaves take IDs cfg.idFn(1..n-1). Edge order: hub-leaf by index.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodStar, n, minStarNodes); err != nil {
			return err
		}
		if _, err := g.AddVertex(cfg.hub); err != nil {
			return builderErrorf(methodStar, err, "AddVertex(%s)", cfg.hub)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, cfg.hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: a ring C_{n-1} over cfg.idFn(0..n-2)
// plus hub spokes (n ≥ 4). Edge order: ring edges first, then spokes.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, cfg.hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n (n ≥ 1).
// Edge order: (i,j) for i < j in row-major order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
