package partition_test

import (
	"fmt"

	"github.com/velmir/ravine/partition"
)

// ExampleSplit shows the 1D block decomposition of 10 vertices over 3
// ranks: the remainder vertex lands on rank 0.
func ExampleSplit() {
	for rank := 0; rank < 3; rank++ {
		d, _ := partition.Split(10, 3, rank)
		fmt.Printf("rank %d owns [%d, %d)\n", rank, d.Start, d.End)
	}
	// Output:
	// rank 0 owns [0, 4)
	// rank 1 owns [4, 7)
	// rank 2 owns [7, 10)
}

// ExampleOwner resolves owners without materializing any range.
func ExampleOwner() {
	for _, v := range []int{0, 3, 4, 6, 7, 9} {
		fmt.Printf("vertex %d -> rank %d\n", v, partition.Owner(v, 10, 3))
	}
	// Output:
	// vertex 0 -> rank 0
	// vertex 3 -> rank 0
	// vertex 4 -> rank 1
	// vertex 6 -> rank 1
	// vertex 7 -> rank 2
	// vertex 9 -> rank 2
}
