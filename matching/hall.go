package matching

import (
	"fmt"

	"github.com/katalvlaran/bimatch/bigraph"
)

// NeighborImage returns N(S): the union of graph-neighbors of the vertices
// in set, sorted. Duplicate entries in set are ignored.
// Fails with ErrVertexNotFound if set references an unknown vertex.
// Complexity: O(Σ deg + |N(S)| log |N(S)|)
func NeighborImage(g *bigraph.Graph, set []string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	image := make(map[string]struct{})
	for _, v := range set {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
		}
		for _, n := range nbrs {
			image[n] = struct{}{}
		}
	}

	return sortedKeys(image), nil
}

// IsDeficient reports whether set violates Hall's condition, i.e.
// |N(S)| < |S| counting set as a set (duplicates ignored).
// Complexity: same as NeighborImage
func IsDeficient(g *bigraph.Graph, set []string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	uniq := make(map[string]struct{}, len(set))
	for _, v := range set {
		uniq[v] = struct{}{}
	}
	image, err := NeighborImage(g, set)
	if err != nil {
		return false, err
	}

	return len(image) < len(uniq), nil
}
