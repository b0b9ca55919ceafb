// generate.go — deterministic synthetic graph constructors.
//
// Contract:
//   - Pure functions of their arguments: same (n, degree) → identical graph.
//   - Vertices emitted in ascending id order, neighbors in ascending j.
//   - Return only sentinel errors; never panic at runtime.
//
// Determinism matters here: every worker in a run rebuilds its own
// replica of the graph locally, so generators must agree bit-for-bit
// across workers without any message exchange.

package graph

import "fmt"

// Modular stride constants shared by both generators.
const (
	modularStride = 7  // neighbor stride for Modular
	scatterStride = 13 // per-step stride for Scatter
	defaultDegree = 3  // out-degree used by the distributed benchmark
)

// Modular returns the distributed-benchmark graph on n vertices:
// vertex i has out-neighbors (i + j*7) % n for j = 1..degree.
// The result is strongly connected for n coprime with the strides used,
// and every vertex has out-degree exactly degree.
func Modular(n, degree int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Modular: n=%d: %w", n, ErrTooFewVertices)
	}
	if degree < 1 {
		return nil, fmt.Errorf("Modular: degree=%d: %w", degree, ErrBadDegree)
	}

	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		nbs := make([]int, 0, degree)
		for j := 1; j <= degree; j++ {
			nbs = append(nbs, (i+j*modularStride)%n)
		}
		adj[i] = nbs
	}

	return &Graph{adj: adj}, nil
}

// DefaultModular returns Modular(n, 3), the exact shape the distributed
// benchmark runs against.
func DefaultModular(n int) (*Graph, error) {
	return Modular(n, defaultDegree)
}

// Scatter returns the shared-memory-benchmark graph on n vertices:
// vertex i has 2 + i%3 out-neighbors (i*7 + j*13) % n, with self-loops
// dropped, so out-degrees vary between 1 and 4.
func Scatter(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Scatter: n=%d: %w", n, ErrTooFewVertices)
	}

	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		connections := 2 + i%3
		nbs := make([]int, 0, connections)
		for j := 1; j <= connections; j++ {
			nb := (i*modularStride + j*scatterStride) % n
			if nb != i {
				nbs = append(nbs, nb)
			}
		}
		adj[i] = nbs
	}

	return &Graph{adj: adj}, nil
}
