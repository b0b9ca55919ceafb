// Package partition implements the 1D block decomposition of a dense
// vertex range across ranks, and its closed-form inverse.
//
// What:
//
//   - Domain: one rank's contiguous, half-open slice [Start, End) of
//     the global vertex range, plus its rank and world size.
//   - Split(n, worldSize, rank): compute rank's Domain. The first
//     n%worldSize ranks own ⌈n/worldSize⌉ vertices, the rest
//     ⌊n/worldSize⌋, assigned in rank order.
//   - Owner(v, n, worldSize): return the unique rank whose Domain
//     contains v, without materializing any Domain.
//
// Why:
//
//	Both functions are pure arithmetic over (n, worldSize, rank), so
//	every worker can derive any other worker's range implicitly — the
//	boundary exchange routes vertex ids to owners using Owner alone,
//	with no range table and no coordination.
//
// Invariants:
//
//   - The union of all ranks' domains is exactly [0, n): no gaps, no
//     overlap.
//   - Split and Owner never disagree: for every v in [0, n),
//     Split(n, w, Owner(v, n, w)) contains v.
//   - worldSize > n leaves the highest ranks with empty domains
//     (Start == End); n == 0 leaves every domain empty.
//
// Complexity: O(1) time, O(1) memory for every operation.
//
// Errors:
//   - ErrOrder:     n < 0.
//   - ErrWorldSize: worldSize < 1.
//   - ErrRank:      rank outside [0, worldSize).
package partition
