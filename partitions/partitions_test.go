package partitions

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshtopo/celltype"
	"github.com/notargets/meshtopo/topology"
)

// quad2x2 is a unit square split into 2x2 quadrilaterals on a 3x3
// vertex grid.
func quad2x2(t *testing.T) *topology.Topology {
	t.Helper()
	var cells [][]int
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			v := j*3 + i
			cells = append(cells, []int{v, v + 1, v + 3, v + 4})
		}
	}
	topo, err := topology.NewTopology(celltype.Quad, 9, cells)
	require.NoError(t, err)
	return topo
}

func TestDualGraph(t *testing.T) {
	dual, err := DualGraph(quad2x2(t))
	require.NoError(t, err)
	require.Len(t, dual, 4)

	want := [][]int{{1, 2}, {0, 3}, {0, 3}, {1, 2}}
	for cell, neighbors := range dual {
		got := make([]int, len(neighbors))
		copy(got, neighbors)
		sort.Ints(got)
		assert.Equal(t, want[cell], got, "cell %d", cell)
	}
}

func TestBuildStrategies(t *testing.T) {
	for _, strategy := range []Strategy{Block, RoundRobin, Greedy} {
		b := &Builder{Topo: quad2x2(t), NumPartitions: 2, Strategy: strategy}
		layout, err := b.Build()
		require.NoError(t, err, "strategy %d", strategy)

		assert.Equal(t, 2, layout.NumPartitions)
		assert.Equal(t, 4, layout.NumCells)
		assert.NoError(t, layout.Verify())
		assert.Equal(t, []int{2, 2}, layout.CellsPerPartition)
	}
}

func TestBlockAssignment(t *testing.T) {
	b := &Builder{Topo: quad2x2(t), NumPartitions: 2, Strategy: Block}
	layout, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1}, layout.EToP)
}

func TestRoundRobinAssignment(t *testing.T) {
	b := &Builder{Topo: quad2x2(t), NumPartitions: 2, Strategy: RoundRobin}
	layout, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1}, layout.EToP)
}

func TestLocalGlobalMappings(t *testing.T) {
	b := &Builder{Topo: quad2x2(t), NumPartitions: 2, Strategy: RoundRobin}
	layout, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, layout.LocalToGlobal[0])
	assert.Equal(t, []int{1, 3}, layout.LocalToGlobal[1])
	assert.Equal(t, 1, layout.GlobalToLocal[0][2])
	assert.Equal(t, 0, layout.GlobalToLocal[1][1])
}

func TestPartitionLookup(t *testing.T) {
	b := &Builder{Topo: quad2x2(t), NumPartitions: 2, Strategy: Block}
	layout, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 0, layout.Partition(1))
	assert.Equal(t, 1, layout.Partition(3))
	assert.Equal(t, -1, layout.Partition(17))
}

func TestBuildErrors(t *testing.T) {
	b := &Builder{Topo: quad2x2(t), NumPartitions: 0, Strategy: Block}
	_, err := b.Build()
	assert.Error(t, err)

	b = &Builder{Topo: quad2x2(t), NumPartitions: 5, Strategy: Block}
	_, err = b.Build()
	assert.Error(t, err)
}
