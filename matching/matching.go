package matching

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bimatch/bigraph"
)

// Edge is an unordered pair of distinct vertices. NewEdge normalizes the
// endpoint order, so two Edge values denoting the same pair compare equal
// with == regardless of construction order.
type Edge struct {
	// U is the lexicographically smaller endpoint.
	U string

	// V is the lexicographically larger endpoint.
	V string
}

// NewEdge builds a normalized Edge over {u, v}.
func NewEdge(u, v string) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Matching is a vertex-disjoint set of graph edges.
//
// It is represented as an explicit partner map storing both directions of
// every edge, so Opposite is a constant-time lookup rather than a scan.
// The zero representation invariant: partner[u] == v ⇔ partner[v] == u,
// and u != v; it holds at every observable state.
//
// A Matching starts empty and grows only through whole-path augmentation
// (Augment) or validated bulk construction (FromEdges, DisjointUnion);
// there is no single-edge insertion, which is what keeps the disjointness
// invariant unbreakable from outside the package.
type Matching struct {
	partner map[string]string
}

// New returns an empty matching. Never fails.
func New() *Matching {
	return &Matching{partner: make(map[string]string)}
}

// FromEdges builds a matching from explicit edges, validating each against
// the graph. It fails with ErrEdgeNotInGraph if an edge is absent from g,
// or ErrOverlappingSupport if two edges share a vertex.
// Complexity: O(len(edges))
func FromEdges(g *bigraph.Graph, edges ...Edge) (*Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	m := New()
	for _, e := range edges {
		if !g.HasEdge(e.U, e.V) {
			return nil, fmt.Errorf("%w: %s–%s", ErrEdgeNotInGraph, e.U, e.V)
		}
		if m.Covers(e.U) || m.Covers(e.V) {
			return nil, fmt.Errorf("%w: edge %s–%s reuses a covered vertex", ErrOverlappingSupport, e.U, e.V)
		}
		m.link(e.U, e.V)
	}

	return m, nil
}

// Len returns the number of edges in the matching.
// Complexity: O(1)
func (m *Matching) Len() int {
	return len(m.partner) / 2
}

// Edges returns the matching as normalized edges, sorted by (U, V).
// Complexity: O(n log n) for n edges
func (m *Matching) Edges() []Edge {
	out := make([]Edge, 0, m.Len())
	for u, v := range m.partner {
		if u < v {
			out = append(out, Edge{U: u, V: v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// ContainsEdge reports whether the unordered edge {u, v} is in the matching.
// Complexity: O(1)
func (m *Matching) ContainsEdge(u, v string) bool {
	return u != v && m.partner[u] == v
}

// Covers reports whether id belongs to the support of the matching.
// Complexity: O(1)
func (m *Matching) Covers(id string) bool {
	_, ok := m.partner[id]

	return ok
}

// Support returns the covered vertices in ascending lexicographic order.
// Complexity: O(n log n)
func (m *Matching) Support() []string {
	out := make([]string, 0, len(m.partner))
	for v := range m.partner {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Opposite returns the unique vertex matched with id. It is a partial
// involution: Opposite(Opposite(v)) == v, and Opposite(v) != v.
// Fails with ErrNotMatched for a vertex outside the support.
// Complexity: O(1)
func (m *Matching) Opposite(id string) (string, error) {
	w, ok := m.partner[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotMatched, id)
	}

	return w, nil
}

// Clone returns an independent copy of the matching.
// Complexity: O(n)
func (m *Matching) Clone() *Matching {
	c := &Matching{partner: make(map[string]string, len(m.partner))}
	for k, v := range m.partner {
		c.partner[k] = v
	}

	return c
}

// DisjointUnion returns a new matching containing the edges of both m and
// other. It requires the supports to be disjoint and fails with
// ErrOverlappingSupport otherwise; two valid inputs with disjoint supports
// yield a valid result by construction. A nil other is treated as empty,
// and DisjointUnion(New()) returns an equal matching.
// Complexity: O(len(m) + len(other))
func (m *Matching) DisjointUnion(other *Matching) (*Matching, error) {
	out := m.Clone()
	if other == nil {
		return out, nil
	}
	for u, v := range other.partner {
		if m.Covers(u) {
			return nil, fmt.Errorf("%w: vertex %q", ErrOverlappingSupport, u)
		}
		out.partner[u] = v
	}

	return out, nil
}

// Validate checks both matching invariants against g:
// every edge of the matching is an edge of the graph, and no vertex
// appears in two distinct edges. A nil return means the matching is valid.
// Intended as a property check, not a hot-path call.
// Complexity: O(n)
func (m *Matching) Validate(g *bigraph.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	for u, v := range m.partner {
		// Involution consistency: v must point back at u, otherwise some
		// vertex is claimed by two edges.
		if back, ok := m.partner[v]; !ok || back != u {
			return fmt.Errorf("%w: partner map not involutive at %q", ErrOverlappingSupport, u)
		}
		// Graph irreflexivity also rules out self-pairings here.
		if !g.HasEdge(u, v) {
			return fmt.Errorf("%w: %s–%s", ErrEdgeNotInGraph, u, v)
		}
	}

	return nil
}

// link records the edge u–v in both directions.
func (m *Matching) link(u, v string) {
	m.partner[u] = v
	m.partner[v] = u
}

// unlink removes the edge u–v in both directions.
func (m *Matching) unlink(u, v string) {
	delete(m.partner, u)
	delete(m.partner, v)
}
