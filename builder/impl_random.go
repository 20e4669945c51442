// SPDX-License-Identifier: MIT
// Package: mstree/builder
//
// impl_random.go - RandomSparse and RandomConnected constructors.
//
// Both require cfg.rng (ErrNeedRandSource otherwise) and are deterministic
// for a fixed seed: the RNG stream is consumed in a fixed order, edge
// decisions first and weight draws interleaved per emitted edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstree/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"

	minRandomNodes = 1
)

// RandomSparse returns a Constructor for an Erdős–Rényi G(n,p) graph:
// each unordered pair i<j is kept with probability p, pairs visited row-major.
// The result may be disconnected.
//
// Errors: ErrTooFewVertices (n < 1), ErrInvalidProbability, ErrNeedRandSource.
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodRandomSparse, n, minRandomNodes); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = addEdge(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomConnected returns a Constructor for a connected graph on n vertices:
// a random spanning tree (vertex i > 0 attaches to a uniformly chosen
// earlier vertex) followed by up to extra additional distinct edges.
// Extra edges stop early once the graph is complete.
//
// Errors: ErrTooFewVertices (n < 1 or extra < 0), ErrNeedRandSource.
// Complexity: O(n + extra) expected while the graph is far from complete.
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodRandomConnected, n, minRandomNodes); err != nil {
			return err
		}
		if extra < 0 {
			return fmt.Errorf("%s: extra=%d < 0: %w", methodRandomConnected, extra, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, methodRandomConnected, n)
		if err != nil {
			return err
		}

		// 1. Spanning tree.
		for i := 1; i < n; i++ {
			j := cfg.rng.Intn(i)
			if err = addEdge(g, cfg, methodRandomConnected, ids[j], ids[i]); err != nil {
				return err
			}
		}

		// 2. Extra edges, bounded by the free pairs left.
		free := n*(n-1)/2 - (n - 1)
		if extra > free {
			extra = free
		}
		for added := 0; added < extra; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v || g.HasEdge(ids[u], ids[v]) {
				continue
			}
			if err = addEdge(g, cfg, methodRandomConnected, ids[u], ids[v]); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
