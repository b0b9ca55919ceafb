// Package ravine is a depth-first search benchmark over a statically
// partitioned graph: independent workers with disjoint memory, explicit
// messages, and nothing shared but the read-only graph replica.
//
// 🚀 What is ravine?
//
//	A pure-Go rendering of a message-passing traversal benchmark:
//		• partition: 1D block decomposition + closed-form ownership resolver
//		• graph:     dense, replicated, read-only adjacency + synthetic generators
//		• comm:      non-blocking send/recv, wait-all, broadcast & reductions
//		• ddfs:      the distributed core — classify, exchange, three passes
//		• smp:       serial baseline and task-parallel shared-memory variants
//		• bench:     wall-clock samples, speedup & efficiency
//
// ✨ Why ravine?
//
//   - Honest model — workers never touch each other's memory; every bit
//     of cross-worker knowledge rides an explicit message
//   - Deterministic — pure partitioning arithmetic, generated graphs,
//     and a fixed per-vertex synthetic workload keep runs comparable
//   - Pure Go — no cgo, no hidden deps in the traversal path
//
// The CLI ties it together:
//
//	ravine run      — distributed search across W in-process workers
//	ravine profile  — serial vs task-parallel speedup/efficiency sweep
//
// Quick ASCII sketch of one run, per worker:
//
//	classify ─ post recvs ─ post sends ─┐
//	         interior pass (overlapped) ─┤ drain sizes ─ exchange data
//	boundary pass ─ external pass ─ drain sends ─ reduce & report
//
// Dive into each package's doc.go for contracts, invariants and
// complexity notes.
package ravine
