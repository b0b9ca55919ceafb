// graph.go — the Graph type, its accessors, and the FromAdjacency
// constructor. See doc.go for the package overview.

package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrTooFewVertices indicates a generator was asked for an empty graph.
	ErrTooFewVertices = errors.New("graph: vertex count must be at least 1")

	// ErrBadDegree indicates a non-positive out-degree was requested.
	ErrBadDegree = errors.New("graph: degree must be at least 1")

	// ErrVertexRange indicates an adjacency entry referencing an id outside [0, N).
	ErrVertexRange = errors.New("graph: neighbor id out of vertex range")
)

// Graph is a read-only adjacency structure over dense vertex ids 0..N-1.
// The zero value is an empty graph. Graph is safe for concurrent reads;
// it is never mutated after construction.
type Graph struct {
	adj [][]int // adj[v] lists v's out-neighbors in fixed order
}

// FromAdjacency builds a Graph from a caller-supplied adjacency list.
// The slice is retained as-is; callers must not mutate it afterwards.
// Returns ErrVertexRange if any neighbor id falls outside [0, len(adj)).
func FromAdjacency(adj [][]int) (*Graph, error) {
	n := len(adj)
	for v, nbs := range adj {
		for _, nb := range nbs {
			if nb < 0 || nb >= n {
				return nil, fmt.Errorf("graph: vertex %d neighbor %d: %w", v, nb, ErrVertexRange)
			}
		}
	}

	return &Graph{adj: adj}, nil
}

// Order returns the number of vertices N.
func (g *Graph) Order() int {
	return len(g.adj)
}

// Neighbors returns v's out-neighbors in construction order.
// The returned slice is shared; callers must not mutate it.
// Callers are responsible for v being in [0, N); out-of-range ids panic.
func (g *Graph) Neighbors(v int) []int {
	return g.adj[v]
}

// Degree returns the out-degree of v.
func (g *Graph) Degree(v int) int {
	return len(g.adj[v])
}

// Size returns the total number of edges.
func (g *Graph) Size() int {
	var m int
	for _, nbs := range g.adj {
		m += len(nbs)
	}

	return m
}

// Clone returns a deep copy of the graph. Workers that want a truly
// private replica (no shared backing arrays) clone once at startup.
func (g *Graph) Clone() *Graph {
	adj := make([][]int, len(g.adj))
	for v, nbs := range g.adj {
		adj[v] = append([]int(nil), nbs...)
	}

	return &Graph{adj: adj}
}
