// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// impl_complete.go — implementation of the CompleteBipartite(n1,n2)
// constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Adds left IDs "{leftPrefix}{i}", i=0..n1-1, and right IDs
//     "{rightPrefix}{j}", j=0..n2-1 (prefixes resolved in newBuilderConfig).
//   • Emits every cross pair L_i – R_j.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n1 + n2) vertices + O(n1·n2) edges.
//   • Space: O(n1 + n2) for the ID slices.
//
// Determinism:
//   • Deterministic IDs via (prefix, index).
//   • Deterministic edge emission order: i asc over L, inner j asc over R.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bimatch/bigraph"
)

// File-local constants for method tag and minima (no magic numbers).
const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite
// graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	// The closure captures (n1,n2); Build supplies (g,cfg).
	return func(g *bigraph.Graph, cfg builderConfig) error {
		leftIDs, rightIDs, err := addPartitions(g, cfg, methodCompleteBipartite, n1, n2)
		if err != nil {
			return err
		}

		// Emit all cross edges in stable (i over left, j over right) order.
		for _, u := range leftIDs {
			for _, v := range rightIDs {
				if err = g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s–%s): %w", methodCompleteBipartite, u, v, err)
				}
			}
		}

		return nil
	}
}

// addPartitions validates the sizes and registers both sides with
// deterministic "{prefix}{index}" IDs, returning the ID slices in
// ascending index order.
func addPartitions(g *bigraph.Graph, cfg builderConfig, method string, n1, n2 int) (left, right []string, err error) {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return nil, nil, fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
			method, n1, n2, minPartitionSize, ErrTooFewVertices)
	}

	left = make([]string, n1)
	for i := 0; i < n1; i++ {
		id := fmt.Sprintf("%s%d", cfg.leftPrefix, i)
		left[i] = id
		if err = g.AddVertex(id, bigraph.Left); err != nil {
			return nil, nil, fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	right = make([]string, n2)
	for j := 0; j < n2; j++ {
		id := fmt.Sprintf("%s%d", cfg.rightPrefix, j)
		right[j] = id
		if err = g.AddVertex(id, bigraph.Right); err != nil {
			return nil, nil, fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return left, right, nil
}
