package ddfs_test

import (
	"sync"
	"testing"

	"github.com/velmir/ravine/comm"
	"github.com/velmir/ravine/ddfs"
	"github.com/velmir/ravine/graph"
	"github.com/velmir/ravine/partition"
)

// benchRun drives one full traversal round for b.N iterations at the
// given world size. The workload multiplier stays at zero so the
// numbers reflect traversal and exchange cost, not the spin loop.
func benchRun(b *testing.B, n, worldSize int) {
	b.Helper()

	g, err := graph.DefaultModular(n)
	if err != nil {
		b.Fatal(err)
	}
	doms := make([]partition.Domain, worldSize)
	for rank := range doms {
		if doms[rank], err = partition.Split(n, worldSize, rank); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world, werr := comm.NewWorld(worldSize)
		if werr != nil {
			b.Fatal(werr)
		}

		var wg sync.WaitGroup
		for rank := 0; rank < worldSize; rank++ {
			c, cerr := world.Comm(rank)
			if cerr != nil {
				b.Fatal(cerr)
			}

			wg.Add(1)
			go func(c *comm.Comm, dom partition.Domain) {
				defer wg.Done()
				if _, rerr := ddfs.Run(g, dom, c, ddfs.NoTarget,
					ddfs.WithWorkRounds(0)); rerr != nil {
					b.Error(rerr)
				}
			}(c, doms[rank])
		}
		wg.Wait()
	}
}

func BenchmarkRun_1Worker_10k(b *testing.B)  { benchRun(b, 10_000, 1) }
func BenchmarkRun_4Workers_10k(b *testing.B) { benchRun(b, 10_000, 4) }
func BenchmarkRun_8Workers_10k(b *testing.B) { benchRun(b, 10_000, 8) }
