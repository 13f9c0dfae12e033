package bigraph

import "sort"

// AddVertex registers id on the given side.
// Re-adding an existing vertex on the same side is a no-op; re-adding it
// on the opposite side fails with ErrSideConflict (a malformed bipartition
// is rejected at the boundary, never patched silently).
// Complexity: O(1)
func (g *Graph) AddVertex(id string, side Side) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if prev, ok := g.sides[id]; ok {
		if prev != side {
			return ErrSideConflict
		}

		return nil
	}
	g.sides[id] = side
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// AddEdge inserts the undirected edge u–v.
// Both endpoints must already be registered (the graph cannot guess a
// side for an unknown vertex), must differ, and must lie on opposite
// sides. Duplicate insertion is a no-op: the graph is simple.
// Complexity: O(1)
func (g *Graph) AddEdge(u, v string) error {
	if u == v {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	su, ok := g.sides[u]
	if !ok {
		return ErrVertexNotFound
	}
	sv, ok := g.sides[v]
	if !ok {
		return ErrVertexNotFound
	}
	if su == sv {
		return ErrSameSide
	}
	if _, dup := g.adjacency[u][v]; dup {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasVertex reports whether id is registered.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.sides[id]

	return ok
}

// HasEdge reports whether the undirected edge u–v exists.
// Symmetric: HasEdge(u,v) == HasEdge(v,u).
// Complexity: O(1)
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// SideOf returns the partition class of id,
// or ErrVertexNotFound for an unknown vertex.
// Complexity: O(1)
func (g *Graph) SideOf(id string) (Side, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	side, ok := g.sides[id]
	if !ok {
		return Left, ErrVertexNotFound
	}

	return side, nil
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.sides))
	for id := range g.sides {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// SideVertices returns the vertex IDs of one side in ascending
// lexicographic order. The sorted order is what makes vertex selection
// in the matching drivers deterministic.
// Complexity: O(V log V)
func (g *Graph) SideVertices(side Side) []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.sides))
	for id, s := range g.sides {
		if s == side {
			ids = append(ids, id)
		}
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// NeighborIDs returns the IDs adjacent to id in ascending lexicographic
// order, or ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg log deg)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	bucket, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()

		return nil, ErrVertexNotFound
	}
	nbrs := make([]string, 0, len(bucket))
	for v := range bucket {
		nbrs = append(nbrs, v)
	}
	g.mu.RUnlock()
	sort.Strings(nbrs)

	return nbrs, nil
}

// Degree returns the number of edges incident to id.
// Complexity: O(1)
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.sides)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the graph: mutations of the clone never
// affect the original, and vice versa.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := New()
	for id, side := range g.sides {
		c.sides[id] = side
		bucket := make(map[string]struct{}, len(g.adjacency[id]))
		for v := range g.adjacency[id] {
			bucket[v] = struct{}{}
		}
		c.adjacency[id] = bucket
	}
	c.edgeCount = g.edgeCount

	return c
}
