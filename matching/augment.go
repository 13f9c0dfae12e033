package matching

import (
	"fmt"

	"github.com/katalvlaran/bimatch/bigraph"
)

// Augment applies the augmenting path to m and returns the strictly larger
// matching M' = (M \ {matched edges of path}) ∪ {unmatched edges of path}.
// m itself is not mutated.
//
// Postconditions on success:
//   - M' is a valid matching,
//   - |M'| = |M| + 1,
//   - support(M') = support(M) ∪ {path[0], path[last]}.
//
// The path must visit an even number of distinct vertices, start and end
// at uncovered vertices, carry graph edges not in M at even positions and
// edges of M at odd positions; any violation fails with ErrInvalidPath.
// Complexity: O(len(path))
func Augment(g *bigraph.Graph, m *Matching, path []string) (*Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if m == nil {
		return nil, ErrMatchingNil
	}
	if err := checkAlternating(g, m, path); err != nil {
		return nil, err
	}

	out := m.Clone()
	// Drop the matched (odd-position) edges first so the interior vertices
	// are free before re-linking; the two passes never race on a vertex.
	for i := 1; i+1 < len(path); i += 2 {
		out.unlink(path[i], path[i+1])
	}
	for i := 0; i+1 < len(path); i += 2 {
		out.link(path[i], path[i+1])
	}

	return out, nil
}

// checkAlternating validates the structural requirements of an augmenting
// path against g and m. Every failure wraps ErrInvalidPath.
func checkAlternating(g *bigraph.Graph, m *Matching, path []string) error {
	if len(path) < 2 || len(path)%2 != 0 {
		return fmt.Errorf("%w: length %d, want even and ≥ 2", ErrInvalidPath, len(path))
	}
	if m.Covers(path[0]) {
		return fmt.Errorf("%w: start %q already covered", ErrInvalidPath, path[0])
	}
	if m.Covers(path[len(path)-1]) {
		return fmt.Errorf("%w: end %q already covered", ErrInvalidPath, path[len(path)-1])
	}

	// No repeated vertex: repeats would let two new edges share a vertex.
	seen := make(map[string]struct{}, len(path))
	for _, v := range path {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: vertex %q repeats", ErrInvalidPath, v)
		}
		seen[v] = struct{}{}
	}

	// Strict alternation: even positions cross fresh graph edges, odd
	// positions follow existing matching edges.
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if i%2 == 0 {
			if !g.HasEdge(u, v) {
				return fmt.Errorf("%w: %s–%s is not a graph edge", ErrInvalidPath, u, v)
			}
			if m.ContainsEdge(u, v) {
				return fmt.Errorf("%w: %s–%s already matched", ErrInvalidPath, u, v)
			}
		} else if !m.ContainsEdge(u, v) {
			return fmt.Errorf("%w: %s–%s not matched", ErrInvalidPath, u, v)
		}
	}

	return nil
}
