// Package bigraph provides the bipartite graph view consumed by the
// matching algorithms: a finite vertex set split into Left and Right
// sides, with a symmetric, irreflexive adjacency relation whose edges
// always cross the partition.
//
// What
//
//   - Register vertices with a fixed Side (Left / Right).
//   - Insert undirected cross edges; loops, same-side edges, and side
//     conflicts are rejected with sentinel errors.
//   - Query vertices, sides, neighbors, and degrees; all enumerations are
//     returned in ascending lexicographic order.
//
// Why
//
//   - Matching, alternating-path search, and Hall's condition are defined
//     over exactly this view: finite V, adj(u,v) symmetric and irreflexive,
//     and a two-coloring of V. Enforcing bipartiteness structurally at
//     insertion time means downstream algorithms never re-validate it.
//
// Determinism
//
//	Vertices, SideVertices, and NeighborIDs sort their results, so every
//	traversal, witness, and fixture built on top of bigraph is fully
//	reproducible.
//
// Concurrency
//
//	All methods are safe for concurrent use; a single RWMutex guards the
//	vertex and adjacency state. The matching algorithms only read.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Mutations and point queries: O(1)
//   - Enumerations: O(V log V) / O(deg log deg) due to sorting
//   - Clone: O(V + E)
//
// Usage
//
//	g := bigraph.New()
//	g.AddVertex("a", bigraph.Left)
//	g.AddVertex("x", bigraph.Right)
//	if err := g.AddEdge("a", "x"); err != nil {
//	    // ErrVertexNotFound, ErrSameSide, ErrLoopNotAllowed
//	}
package bigraph
