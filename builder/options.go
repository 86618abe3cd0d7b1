// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the deterministic city name generator: idx -> name.
// Panics on nil.
func WithNameScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.name = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpacing sets the distance between neighbouring cities of regular
// layouts (Grid, Ring, Star) and the side of the RandomSparse square per
// city. Panics on spacing < 1.
func WithSpacing(spacing int) BuilderOption {
	if spacing < 1 {
		panic("builder: WithSpacing must be at least 1")
	}
	return func(c *builderConfig) {
		c.spacing = spacing
	}
}

// WithOrigin shifts every placed city by (x, y).
func WithOrigin(x, y int) BuilderOption {
	return func(c *builderConfig) {
		c.originX, c.originY = x, y
	}
}
