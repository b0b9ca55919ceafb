// types.go — the Domain record and sentinel errors.

package partition

import "errors"

// Sentinel errors for decomposition parameters.
var (
	// ErrOrder indicates a negative global vertex count.
	ErrOrder = errors.New("partition: vertex count must be non-negative")

	// ErrWorldSize indicates a non-positive world size.
	ErrWorldSize = errors.New("partition: world size must be at least 1")

	// ErrRank indicates a rank outside [0, worldSize).
	ErrRank = errors.New("partition: rank out of range")
)

// Domain is one rank's owned slice of the global vertex range.
// It is created once per worker at startup and never mutated.
type Domain struct {
	// Rank is this worker's index in [0, WorldSize).
	Rank int

	// WorldSize is the total number of workers.
	WorldSize int

	// Start is the first owned vertex id (inclusive).
	Start int

	// End is one past the last owned vertex id (exclusive).
	End int
}

// Len returns the number of vertices this domain owns.
func (d Domain) Len() int {
	return d.End - d.Start
}

// Empty reports whether the domain owns no vertices.
func (d Domain) Empty() bool {
	return d.Start == d.End
}

// Contains reports whether v is owned by this domain: Start <= v < End.
// Contains(Start) is true and Contains(End) is false by construction.
func (d Domain) Contains(v int) bool {
	return v >= d.Start && v < d.End
}
