// Package matching implements bipartite matching over a bigraph.Graph:
// the vertex-disjoint Matching data structure, alternating-path search,
// whole-path augmentation, Hall's-condition checking, and the
// Saturate/Maximum construction drivers.
//
// What
//
//   - Matching: a set of graph edges with pairwise-disjoint vertices,
//     backed by an explicit partner map. Exposes support, the Opposite
//     pairing (a partial involution), disjoint union, and validation.
//   - AugmentingPath: breadth-first search from an unmatched left vertex,
//     alternating between non-matching and matching edges; returns a
//     shortest augmenting path when one exists.
//   - Augment: flips edge membership along an augmenting path, growing
//     the matching by exactly one edge.
//   - NeighborImage / IsDeficient: Hall's-condition oracle — is |N(S)| < |S|?
//   - Saturate: repeatedly augments until every left vertex is covered, or
//     returns a *HallViolation carrying a deficient set and its neighbor
//     image (the König/Hall duality witness extracted from the final
//     frontier of the failed search).
//   - Maximum: same loop, skipping stuck vertices — a maximum matching.
//
// Why
//
//   - Hall's marriage theorem, constructively: the driver terminates either
//     with a matching saturating the left side or with a subset S of the
//     left side whose neighbor image is smaller than S — a human-checkable
//     proof that no saturating matching exists.
//
// Error taxonomy
//
//   - Expected outcome, not a fault: *HallViolation from Saturate. Branch
//     with errors.As; len(Image) < len(Set) always holds.
//   - Programmer errors (unreachable through a correct driver):
//     ErrNotMatched, ErrOverlappingSupport, ErrInvalidPath, ErrStartCovered,
//     ErrNotLeftVertex — construction discipline keeps them out of the
//     driver's reach, and they are surfaced rather than retried.
//   - Input errors: ErrGraphNil, ErrMatchingNil, ErrVertexNotFound,
//     ErrOptionViolation, ErrBudgetExceeded.
//
// Determinism
//
//	Left vertices are processed in ascending lexicographic order, and
//	bigraph sorts every neighbor enumeration, so matchings, paths, and
//	deficiency witnesses are fully reproducible run to run.
//
// Concurrency
//
//	The construction is single-threaded and synchronous; the driver owns
//	its matching exclusively for the duration of a run and only reads the
//	graph. Cancellation flows through WithContext; WithSearchBudget bounds
//	the number of alternating searches on degenerate inputs.
//
// Complexity (V = |Vertices|, E = |Edges|, L = |Left|)
//
//   - One alternating search: O(V + E)
//   - Saturate / Maximum: O(L·(V+E)) worst case
//     (the O(√V·E) phase-batched Hopcroft–Karp refinement is out of scope)
//
// Usage
//
//	g := bigraph.New()
//	// ... AddVertex / AddEdge ...
//	m, err := matching.Saturate(g)
//	var hv *matching.HallViolation
//	switch {
//	case errors.As(err, &hv):
//	    // no saturating matching: hv.Set, hv.Image prove it
//	case err != nil:
//	    // cancellation, budget, or programmer error
//	default:
//	    // m covers every left vertex
//	}
package matching
