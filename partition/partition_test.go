package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmir/ravine/partition"
)

// gridCases spans the shapes that matter: even splits, remainders,
// more workers than vertices, single worker, empty range.
var gridCases = []struct {
	n, w int
}{
	{0, 1}, {0, 5},
	{1, 1}, {1, 4},
	{5, 2}, {5, 5}, {5, 7},
	{10, 3}, {17, 4}, {16, 16},
	{100, 7}, {50000, 16},
}

func TestSplit_CoversRangeExactly(t *testing.T) {
	for _, tc := range gridCases {
		prevEnd := 0
		for rank := 0; rank < tc.w; rank++ {
			d, err := partition.Split(tc.n, tc.w, rank)
			require.NoError(t, err, "n=%d w=%d rank=%d", tc.n, tc.w, rank)

			// contiguity: each domain starts where the previous ended
			assert.Equal(t, prevEnd, d.Start, "n=%d w=%d rank=%d", tc.n, tc.w, rank)
			assert.GreaterOrEqual(t, d.End, d.Start)
			prevEnd = d.End
		}
		// exactness: the last domain ends at n
		assert.Equal(t, tc.n, prevEnd, "n=%d w=%d", tc.n, tc.w)
	}
}

func TestSplit_LowerRanksGetLargerBlocks(t *testing.T) {
	// n=17, w=4: 17 = 4*4+1, so rank 0 owns 5 vertices, ranks 1-3 own 4.
	sizes := []int{5, 4, 4, 4}
	for rank, want := range sizes {
		d, err := partition.Split(17, 4, rank)
		require.NoError(t, err)
		assert.Equal(t, want, d.Len(), "rank %d", rank)
	}
}

func TestSplit_MoreWorkersThanVertices(t *testing.T) {
	// w=5, n=3: ranks 0-2 own one vertex each, ranks 3-4 are empty.
	for rank := 0; rank < 5; rank++ {
		d, err := partition.Split(3, 5, rank)
		require.NoError(t, err)
		if rank < 3 {
			assert.Equal(t, 1, d.Len(), "rank %d", rank)
			assert.False(t, d.Empty())
		} else {
			assert.True(t, d.Empty(), "rank %d", rank)
		}
	}
}

func TestSplit_Errors(t *testing.T) {
	_, err := partition.Split(-1, 2, 0)
	assert.ErrorIs(t, err, partition.ErrOrder)

	_, err = partition.Split(10, 0, 0)
	assert.ErrorIs(t, err, partition.ErrWorldSize)

	_, err = partition.Split(10, 2, 2)
	assert.ErrorIs(t, err, partition.ErrRank)

	_, err = partition.Split(10, 2, -1)
	assert.ErrorIs(t, err, partition.ErrRank)
}

func TestOwner_AgreesWithSplit(t *testing.T) {
	for _, tc := range gridCases {
		if tc.n == 0 {
			continue // no vertices to resolve
		}
		// materialize all domains once
		domains := make([]partition.Domain, tc.w)
		for rank := 0; rank < tc.w; rank++ {
			d, err := partition.Split(tc.n, tc.w, rank)
			require.NoError(t, err)
			domains[rank] = d
		}
		// every vertex resolves to the one rank whose domain contains it
		for v := 0; v < tc.n; v++ {
			owner := partition.Owner(v, tc.n, tc.w)
			require.True(t, owner >= 0 && owner < tc.w, "n=%d w=%d v=%d owner=%d", tc.n, tc.w, v, owner)
			assert.True(t, domains[owner].Contains(v), "n=%d w=%d v=%d owner=%d", tc.n, tc.w, v, owner)
			for rank, d := range domains {
				if rank != owner {
					assert.False(t, d.Contains(v), "n=%d w=%d v=%d rank=%d", tc.n, tc.w, v, rank)
				}
			}
		}
	}
}

func TestDomain_ContainsHalfOpen(t *testing.T) {
	d, err := partition.Split(10, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 0, d.Start)
	require.Equal(t, 5, d.End)

	assert.True(t, d.Contains(d.Start), "start is owned")
	assert.True(t, d.Contains(d.End-1))
	assert.False(t, d.Contains(d.End), "end is exclusive")
	assert.False(t, d.Contains(-1))
}
