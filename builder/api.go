// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// api.go — public entry point and functional options for the builder.
//
// Design contract:
//   • One orchestrator: Build(opts, cons...). Creates the graph, resolves
//     the config, runs constructors in order.
//   • Functional options resolve into an immutable builderConfig
//     (no global state).
//   • Determinism: same options/seed and constructor order ⇒ identical
//     graphs.
//   • Safety: constructors never panic at runtime; they return sentinel
//     errors. Option constructors validate and panic on programmer error.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bimatch/bigraph"
)

// Deterministic defaults (named, no magic values).
const (
	defaultLeftPrefix  = "L" // left-side vertex label prefix
	defaultRightPrefix = "R" // right-side vertex label prefix
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type builderConfig struct {
	// Bipartite ID prefixes. Empty → defaults resolved in newBuilderConfig.
	leftPrefix  string
	rightPrefix string

	// RNG for stochastic constructors; nil means "no randomness".
	rng *rand.Rand
}

// Option customizes the behavior of a constructor by mutating a
// builderConfig before construction begins.
type Option func(*builderConfig)

// WithPartitionPrefix sets the left/right vertex ID prefixes.
// Empty values mean "use defaults" ("L"/"R"), not an error.
func WithPartitionPrefix(left, right string) Option {
	return func(c *builderConfig) {
		c.leftPrefix = left
		c.rightPrefix = right
	}
}

// WithSeed creates a seeded *rand.Rand for reproducible stochastic
// constructors. Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil to surface the
// programmer error early; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// newBuilderConfig applies opts over deterministic defaults, last-wins.
// Complexity: O(len(opts))
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Resolve empty prefixes back to defaults (deterministic fallback).
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors must validate parameters early, return only
// sentinel errors, and preserve determinism for a fixed config.
type Constructor func(g *bigraph.Graph, cfg builderConfig) error

// Build creates a new bigraph.Graph, resolves the builder configuration
// from opts, and applies all constructors in order. Any constructor error
// is wrapped with the "Build: %w" context and returned immediately; no
// partial cleanup is attempted.
func Build(opts []Option, cons ...Constructor) (*bigraph.Graph, error) {
	g := bigraph.New()
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
