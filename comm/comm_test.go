package comm_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmir/ravine/comm"
)

// spawn runs fn once per rank, concurrently, and waits for all of them.
func spawn(t *testing.T, world *comm.World, fn func(c *comm.Comm)) {
	t.Helper()
	var wg sync.WaitGroup
	for rank := 0; rank < world.Size(); rank++ {
		c, err := world.Comm(rank)
		require.NoError(t, err)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(c)
		}()
	}
	wg.Wait()
}

func TestNewWorld_SizeValidation(t *testing.T) {
	_, err := comm.NewWorld(0)
	assert.ErrorIs(t, err, comm.ErrWorldSize)

	w, err := comm.NewWorld(1)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Size())

	_, err = w.Comm(1)
	assert.ErrorIs(t, err, comm.ErrRankRange)
}

func TestSendRecv_RoundTrip(t *testing.T) {
	world, err := comm.NewWorld(2)
	require.NoError(t, err)

	spawn(t, world, func(c *comm.Comm) {
		switch c.Rank() {
		case 0:
			payload := []int{5, 6, 7}
			s := c.Send(1, comm.TagData, payload)
			payload[0] = 99 // sends copy: mutation after post must not leak
			require.NoError(t, c.WaitAll(s))
		case 1:
			r := c.Recv(0, comm.TagData)
			require.NoError(t, c.WaitAll(r))
			assert.Equal(t, []int{5, 6, 7}, r.Payload())
		}
	})
}

func TestSendRecv_SizesBeforeData(t *testing.T) {
	// the exchange pattern: receive counts from each peer, then payloads
	world, err := comm.NewWorld(2)
	require.NoError(t, err)

	spawn(t, world, func(c *comm.Comm) {
		peer := 1 - c.Rank()

		sizeRecv := c.Recv(peer, comm.TagSize)
		want := []int{c.Rank() * 10, c.Rank()*10 + 1}
		sends := []*comm.Request{
			c.Send(peer, comm.TagSize, []int{len(want)}),
			c.Send(peer, comm.TagData, want),
		}

		require.NoError(t, c.WaitAll(sizeRecv))
		count := sizeRecv.Payload()[0]
		require.Equal(t, 2, count)

		dataRecv := c.Recv(peer, comm.TagData)
		require.NoError(t, c.WaitAll(dataRecv))
		assert.Len(t, dataRecv.Payload(), count)
		assert.Equal(t, []int{peer * 10, peer*10 + 1}, dataRecv.Payload())

		require.NoError(t, c.WaitAll(sends...))
	})
}

func TestWaitAll_ReportsInvalidOperations(t *testing.T) {
	world, err := comm.NewWorld(2)
	require.NoError(t, err)
	c, err := world.Comm(0)
	require.NoError(t, err)

	assert.ErrorIs(t, c.WaitAll(c.Send(5, comm.TagSize, []int{1})), comm.ErrRankRange)
	assert.ErrorIs(t, c.WaitAll(c.Recv(0, 9)), comm.ErrTagRange)
	assert.NoError(t, c.WaitAll(nil, nil), "nil requests are skipped")
}

func TestClosedWorld_RejectsPointToPoint(t *testing.T) {
	world, err := comm.NewWorld(2)
	require.NoError(t, err)
	c, err := world.Comm(0)
	require.NoError(t, err)

	world.Close()
	assert.ErrorIs(t, c.WaitAll(c.Send(1, comm.TagSize, []int{1})), comm.ErrClosed)
	assert.ErrorIs(t, c.WaitAll(c.Recv(1, comm.TagSize)), comm.ErrClosed)
}

func TestBcast_DistributesRootValue(t *testing.T) {
	world, err := comm.NewWorld(4)
	require.NoError(t, err)

	var mu sync.Mutex
	got := make(map[int]int)
	spawn(t, world, func(c *comm.Comm) {
		v := -1
		if c.Rank() == 0 {
			v = 42
		}
		out := c.Bcast(0, v)
		mu.Lock()
		got[c.Rank()] = out
		mu.Unlock()
	})

	for rank := 0; rank < 4; rank++ {
		assert.Equal(t, 42, got[rank], "rank %d", rank)
	}
}

func TestReduce_SumAndMax(t *testing.T) {
	world, err := comm.NewWorld(3)
	require.NoError(t, err)

	var mu sync.Mutex
	sums := make(map[int]int)
	maxes := make(map[int]int)
	spawn(t, world, func(c *comm.Comm) {
		// rank r contributes r+1; collectives in matching order everywhere
		sum := c.ReduceSum(c.Rank() + 1)
		max := c.ReduceMax(c.Rank() + 1)
		mu.Lock()
		sums[c.Rank()] = sum
		maxes[c.Rank()] = max
		mu.Unlock()
	})

	for rank := 0; rank < 3; rank++ {
		assert.Equal(t, 6, sums[rank], "rank %d sum", rank)
		assert.Equal(t, 3, maxes[rank], "rank %d max", rank)
	}
}

func TestBarrier_AllRanksPass(t *testing.T) {
	world, err := comm.NewWorld(4)
	require.NoError(t, err)

	var passed sync.Map
	spawn(t, world, func(c *comm.Comm) {
		c.Barrier()
		passed.Store(c.Rank(), true)
	})

	for rank := 0; rank < 4; rank++ {
		_, ok := passed.Load(rank)
		assert.True(t, ok, "rank %d", rank)
	}
}
