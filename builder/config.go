// SPDX-License-Identifier: MIT
// Package: mstree/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn     = DefaultIDFn        ("0","1","2",...)
//   - rng      = nil                (no randomness unless seeded)
//   - weightFn = DefaultWeightFn    (constant DefaultEdgeWeight)
//   - hub      = "Center"           (Star and Wheel hub vertex)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	hub      string
}

const defaultHub = "Center"

// newBuilderConfig applies opts over the defaults in order (last wins).
// An empty hub name falls back to defaultHub.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		hub:      defaultHub,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hub == "" {
		cfg.hub = defaultHub
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
