// Package smp holds the shared-memory DFS variants that bracket the
// distributed core in benchmarks: a serial baseline and a task-parallel
// traversal over a single address space.
//
// What:
//
//   - Serial(g, opts...): plain recursive full-graph DFS. The reference
//     the speedup and efficiency numbers are computed against.
//   - Parallel(g, opts...): task-parallel DFS — every unvisited
//     neighbor may be handed to a worker goroutine, bounded by
//     WithWorkers. Visited marks and the result order live behind one
//     mutex, so the visited set is exact while the visit order is
//     scheduler-dependent.
//
// Both run the same deterministic per-vertex synthetic workload as the
// distributed core (WithWorkRounds), keeping timings comparable.
//
// Why:
//
//	The distributed traversal's whole point is a speedup curve; it
//	needs something to be faster (or honestly slower) than. These two
//	variants are consumers of graph.Graph only — they know nothing of
//	partitions or the exchange.
//
// Complexity: O(V + E) traversal plus WorkRounds arithmetic per vertex;
// Parallel adds mutex contention proportional to E.
package smp
