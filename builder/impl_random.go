// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// impl_random.go — implementation of the RandomBipartite(n1,n2,p)
// constructor.
//
// Canonical model:
//   • Erdős–Rényi-like generator over the cross pairs: include each edge
//     L_i – R_j independently with probability p.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n1 + n2) vertices + O(n1·n2) Bernoulli trials.
//   • Space: O(n1 + n2).
//
// Determinism:
//   • Stable trial order (i asc, inner j asc) ⇒ identical outcomes for a
//     fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bimatch/bigraph"
)

// File-local constants (stable method tag and probability domain).
const (
	methodRandomBipartite = "RandomBipartite"
	probMin               = 0.0
	probMax               = 1.0
)

// RandomBipartite returns a Constructor that samples a bipartite graph
// over n1+n2 vertices with independent cross-edge probability p.
func RandomBipartite(n1, n2 int, p float64) Constructor {
	// The returned closure captures (n1, n2, p); Build supplies (g, cfg).
	return func(g *bigraph.Graph, cfg builderConfig) error {
		// Validate probability before touching the graph (fail fast).
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomBipartite, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required for true stochastic sampling.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomBipartite, ErrNeedRandSource)
		}

		leftIDs, rightIDs, err := addPartitions(g, cfg, methodRandomBipartite, n1, n2)
		if err != nil {
			return err
		}

		// p == 0: vertex-only graph, nothing to sample.
		if p == probMin {
			return nil
		}

		// Bernoulli trials in stable (i asc, j asc) order.
		for _, u := range leftIDs {
			for _, v := range rightIDs {
				if p < probMax && cfg.rng.Float64() > p {
					continue
				}
				if err = g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s–%s): %w", methodRandomBipartite, u, v, err)
				}
			}
		}

		return nil
	}
}
