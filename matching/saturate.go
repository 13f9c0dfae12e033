package matching

import (
	"github.com/katalvlaran/bimatch/bigraph"
)

// Saturate builds a matching covering every left vertex of g, or proves
// that none exists.
//
// The driver is an explicit loop with an accumulator matching: left
// vertices are processed in ascending lexicographic order, and for each
// one still uncovered an alternating BFS either yields an augmenting path
// (applied via Augment, growing the matching by one edge) or gets stuck.
// A stuck search is conclusive: the left vertices visited by the failed
// search form a deficient set — every right vertex the search reached is
// matched back into that set, so |N(S)| = |S| − 1 — and Saturate returns
// it as a *HallViolation via the error result (branch with errors.As).
//
// An empty left side returns the empty matching immediately, no search
// performed.
//
// Options: WithContext, WithSearchBudget, WithOnAugment.
//
// Complexity: O(L·(V+E)) worst case for L left vertices; each of the ≤ L
// searches is O(V+E). Memory: O(V).
func Saturate(g *bigraph.Graph, opts ...Option) (*Matching, error) {
	return construct(g, true, opts)
}

// Maximum builds a maximum matching of g: the same augmenting-path loop
// as Saturate, but a stuck left vertex is skipped rather than reported,
// so the driver always returns a matching of maximum size (by Berge's
// lemma, a matching with no augmenting path is maximum).
//
// Options: WithContext, WithSearchBudget, WithOnAugment.
//
// Complexity: O(L·(V+E)). Memory: O(V).
func Maximum(g *bigraph.Graph, opts ...Option) (*Matching, error) {
	return construct(g, false, opts)
}

// construct is the shared driver loop. stopOnStuck selects Saturate
// semantics (deficiency witness) over Maximum semantics (skip).
func construct(g *bigraph.Graph, stopOnStuck bool, opts []Option) (*Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	m := New()
	searches := 0
	for _, s := range g.SideVertices(bigraph.Left) {
		// Augmentation only ever covers the start vertex on the left side,
		// so s is still free here; the check guards the invariant cheaply.
		if m.Covers(s) {
			continue
		}
		if o.searchBudget > 0 && searches == o.searchBudget {
			return nil, ErrBudgetExceeded
		}
		searches++

		out, err := alternatingBFS(o.ctx, g, m, s)
		if err != nil {
			return nil, err
		}
		if out.path == nil {
			if !stopOnStuck {
				continue
			}

			return nil, deficiencyWitness(g, out)
		}

		next, err := Augment(g, m, out.path)
		if err != nil {
			// Unreachable for paths produced by the search; surfaced rather
			// than swallowed in case of an internal invariant break.
			return nil, err
		}
		m = next
		o.onAugment(out.path)
	}

	return m, nil
}

// deficiencyWitness converts the frontier of a failed search into a
// HallViolation. The visited left set S and its image are recomputed
// against the graph so the witness is independently checkable.
func deficiencyWitness(g *bigraph.Graph, out *searchOutcome) error {
	set := sortedKeys(out.visitedLeft)
	image, err := NeighborImage(g, set)
	if err != nil {
		return err
	}

	return &HallViolation{Set: set, Image: image}
}
