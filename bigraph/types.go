// Package bigraph defines the two-sided Graph type, its Side enum,
// and sentinel error definitions for bipartite construction.
package bigraph

import (
	"errors"
	"sync"
)

// Sentinel errors for bipartite graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("bigraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("bigraph: vertex not found")

	// ErrSideConflict indicates a vertex was re-registered on the opposite side.
	ErrSideConflict = errors.New("bigraph: vertex already registered on the other side")

	// ErrSameSide indicates an edge between two vertices of the same side.
	ErrSameSide = errors.New("bigraph: edge endpoints on the same side")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("bigraph: self-loop not allowed")
)

// Side identifies the partition class of a vertex: Left or Right.
// It is the two-coloring that makes a Graph bipartite.
type Side uint8

const (
	// Left is the side matching algorithms aim to saturate.
	Left Side = iota

	// Right is the opposite side.
	Right
)

// String returns "Left" or "Right".
func (s Side) String() string {
	if s == Left {
		return "Left"
	}

	return "Right"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}

	return Left
}

// Graph is an in-memory bipartite simple graph.
//
// Vertices are registered with a fixed Side; edges are undirected,
// unweighted, and must cross the partition. mu guards sides, adjacency,
// and edgeCount together (mutations touch all three).
type Graph struct {
	mu sync.RWMutex

	// sides maps vertex ID → partition class.
	sides map[string]Side

	// adjacency[u][v] exists iff edge u–v exists (stored in both directions).
	adjacency map[string]map[string]struct{}

	// edgeCount tracks the number of undirected edges.
	edgeCount int
}

// New creates an empty bipartite Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{
		sides:     make(map[string]Side),
		adjacency: make(map[string]map[string]struct{}),
	}
}
