package smp_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmir/ravine/graph"
	"github.com/velmir/ravine/smp"
)

func TestSerial_ChainOrder(t *testing.T) {
	// 0→1→2→3→4: one deep walk from the first root covers everything
	adj := [][]int{{1}, {2}, {3}, {4}, {}}
	g, err := graph.FromAdjacency(adj)
	require.NoError(t, err)

	res, err := smp.Serial(g, smp.WithWorkRounds(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
}

func TestSerial_RestartsFromEveryComponent(t *testing.T) {
	// two disjoint components; roots 0 and 3 each seed a walk
	adj := [][]int{{1}, {2}, {}, {4}, {}}
	g, err := graph.FromAdjacency(adj)
	require.NoError(t, err)

	res, err := smp.Serial(g, smp.WithWorkRounds(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
}

func TestSerial_Validation(t *testing.T) {
	_, err := smp.Serial(nil)
	assert.ErrorIs(t, err, smp.ErrGraphNil)

	g, err := graph.DefaultModular(10)
	require.NoError(t, err)
	_, err = smp.Serial(g, smp.WithWorkRounds(-1))
	assert.ErrorIs(t, err, smp.ErrOptionViolation)
}

func TestParallel_VisitsEveryVertexOnce(t *testing.T) {
	g, err := graph.Scatter(500)
	require.NoError(t, err)

	res, err := smp.Parallel(g, smp.WithWorkRounds(0), smp.WithWorkers(8))
	require.NoError(t, err)
	require.Len(t, res.Order, 500)

	got := append([]int(nil), res.Order...)
	sort.Ints(got)
	for v := 0; v < 500; v++ {
		assert.Equal(t, v, got[v], "vertex %d missing or duplicated", v)
	}
}

func TestParallel_SingleWorkerStillCompletes(t *testing.T) {
	g, err := graph.DefaultModular(64)
	require.NoError(t, err)

	res, err := smp.Parallel(g, smp.WithWorkRounds(0), smp.WithWorkers(1))
	require.NoError(t, err)
	assert.Len(t, res.Order, 64)
}

func TestParallel_Validation(t *testing.T) {
	_, err := smp.Parallel(nil)
	assert.ErrorIs(t, err, smp.ErrGraphNil)

	g, err := graph.DefaultModular(10)
	require.NoError(t, err)
	_, err = smp.Parallel(g, smp.WithWorkers(0))
	assert.ErrorIs(t, err, smp.ErrOptionViolation)
}

func TestParallel_AgreesWithSerialOnVisitedSet(t *testing.T) {
	g, err := graph.DefaultModular(200)
	require.NoError(t, err)

	serial, err := smp.Serial(g, smp.WithWorkRounds(0))
	require.NoError(t, err)
	parallel, err := smp.Parallel(g, smp.WithWorkRounds(0), smp.WithWorkers(4))
	require.NoError(t, err)

	// interleaving differs; the visited set must not
	a := append([]int(nil), serial.Order...)
	b := append([]int(nil), parallel.Order...)
	sort.Ints(a)
	sort.Ints(b)
	assert.Equal(t, a, b)
}
