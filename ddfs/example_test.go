package ddfs_test

import (
	"fmt"
	"sync"

	"github.com/velmir/ravine/comm"
	"github.com/velmir/ravine/ddfs"
	"github.com/velmir/ravine/graph"
	"github.com/velmir/ravine/partition"
)

// ExampleRun walks a six-vertex directed ring with two workers. Each
// worker traverses its own half and ships the single crossing reference
// to its peer.
func ExampleRun() {
	ring, _ := graph.FromAdjacency([][]int{
		{1}, {2}, {3}, {4}, {5}, {0},
	})

	world, _ := comm.NewWorld(2)
	results := make([]*ddfs.Result, 2)

	var wg sync.WaitGroup
	for rank := 0; rank < 2; rank++ {
		c, _ := world.Comm(rank)
		dom, _ := partition.Split(ring.Order(), 2, rank)

		wg.Add(1)
		go func(rank int, c *comm.Comm, dom partition.Domain) {
			defer wg.Done()
			results[rank], _ = ddfs.Run(ring, dom, c, ddfs.NoTarget,
				ddfs.WithWorkRounds(0))
		}(rank, c, dom)
	}
	wg.Wait()

	for rank, res := range results {
		fmt.Printf("rank %d visited %v, shipped %d reference(s)\n",
			rank, res.Order, res.Sent[1-rank])
	}

	// Output:
	// rank 0 visited [0 1 2], shipped 1 reference(s)
	// rank 1 visited [3 4 5], shipped 1 reference(s)
}
