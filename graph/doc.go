// Package graph provides the read-only, replicated adjacency structure
// that every ravine worker traverses, plus deterministic synthetic
// graph generators for benchmarking.
//
// What:
//
//   - Graph: a dense adjacency list over vertex ids 0..N-1. Vertices
//     are plain ints, neighbor order is fixed at construction, and the
//     structure is immutable for the lifetime of a run. Every worker
//     holds its own private copy (Clone), so traversal needs no locks.
//   - FromAdjacency: wrap a caller-built adjacency list, validating
//     that every neighbor id falls inside [0, N).
//   - Modular(n, degree): the distributed-benchmark graph — vertex i
//     links to (i + j*7) % n for j = 1..degree.
//   - Scatter(n): the shared-memory-benchmark graph — vertex i links to
//     (i*7 + j*13) % n for j = 1..2+i%3, self-loops skipped.
//
// Why:
//
//	Partitioned traversal indexes vertices directly into slices sized
//	by N; dense int ids keep ownership checks and visited marks O(1)
//	with zero hashing. The generators are pure functions of their
//	arguments, so every worker can rebuild an identical replica
//	without any coordination.
//
// Complexity:
//   - Construction: O(V + E) time, O(V + E) memory.
//   - Neighbors/Degree: O(1).
//   - Clone: O(V + E).
//
// Errors:
//   - ErrTooFewVertices: generator called with n < 1.
//   - ErrBadDegree: Modular called with degree < 1.
//   - ErrVertexRange: adjacency references an id outside [0, N).
package graph
