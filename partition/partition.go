// partition.go — Split (forward decomposition) and Owner (its inverse).
//
// Contract:
//   - Split is a pure function of (n, worldSize, rank); no side effects.
//   - Owner is a pure function of (v, n, worldSize) and must agree with
//     Split for every vertex: resolver and partitioner never disagree.
//   - Neither function divides by zero, including the worldSize > n case.

package partition

import "fmt"

// Split computes rank's owned vertex range under the 1D block
// decomposition of [0, n) across worldSize ranks. The first n%worldSize
// ranks receive one extra vertex each, so lower ranks carry the larger
// blocks when n does not divide evenly.
func Split(n, worldSize, rank int) (Domain, error) {
	// 1. Validate the parameter domain (fail fast, no work on bad input).
	if n < 0 {
		return Domain{}, fmt.Errorf("Split: n=%d: %w", n, ErrOrder)
	}
	if worldSize < 1 {
		return Domain{}, fmt.Errorf("Split: worldSize=%d: %w", worldSize, ErrWorldSize)
	}
	if rank < 0 || rank >= worldSize {
		return Domain{}, fmt.Errorf("Split: rank=%d of %d: %w", rank, worldSize, ErrRank)
	}

	// 2. Block sizing: base vertices everywhere, one extra for low ranks.
	base := n / worldSize
	rem := n % worldSize

	d := Domain{Rank: rank, WorldSize: worldSize}
	if rank < rem {
		size := base + 1
		d.Start = rank * size
		d.End = d.Start + size
	} else {
		d.Start = rem*(base+1) + (rank-rem)*base
		d.End = d.Start + base
	}

	return d, nil
}

// Owner returns the rank owning vertex v under Split(n, worldSize, ·),
// in closed form. The first rem ranks own base+1 vertices each, so the
// boundary offset is threshold = rem*(base+1); below it the block width
// is base+1, above it base. Behavior is undefined for v outside [0, n)
// (vertices beyond the graph are never routed).
func Owner(v, n, worldSize int) int {
	base := n / worldSize
	rem := n % worldSize

	threshold := rem * (base + 1)
	if v < threshold {
		// base == 0 implies threshold == n, so this branch covers every
		// vertex and base+1 is never zero.
		return v / (base + 1)
	}

	return rem + (v-threshold)/base
}
