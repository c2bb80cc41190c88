package partitions

import (
	"fmt"
)

// Layout is a decomposition of the mesh cells into partitions.
type Layout struct {
	NumPartitions int
	NumCells      int

	// EToP maps cell k to partition EToP[k].
	EToP []int

	// CellsPerPartition counts the cells assigned to each partition.
	CellsPerPartition []int

	// Bidirectional mappings between global and partition-local cell
	// numbering.
	GlobalToLocal []map[int]int // [partition][globalCell] -> localCell
	LocalToGlobal [][]int       // [partition][localCell] -> globalCell
}

// newLayout builds the derived mappings from a cell-to-partition
// assignment.
func newLayout(eToP []int, numPartitions int) *Layout {
	l := &Layout{
		NumPartitions:     numPartitions,
		NumCells:          len(eToP),
		EToP:              eToP,
		CellsPerPartition: make([]int, numPartitions),
		GlobalToLocal:     make([]map[int]int, numPartitions),
		LocalToGlobal:     make([][]int, numPartitions),
	}
	for _, p := range eToP {
		l.CellsPerPartition[p]++
	}
	for p := 0; p < numPartitions; p++ {
		l.GlobalToLocal[p] = make(map[int]int)
		l.LocalToGlobal[p] = make([]int, 0, l.CellsPerPartition[p])
	}
	for cell, p := range eToP {
		local := len(l.LocalToGlobal[p])
		l.GlobalToLocal[p][cell] = local
		l.LocalToGlobal[p] = append(l.LocalToGlobal[p], cell)
	}
	return l
}

// Partition returns the partition containing cell k, or -1 for an
// out-of-range cell.
func (l *Layout) Partition(cell int) int {
	if cell < 0 || cell >= len(l.EToP) {
		return -1
	}
	return l.EToP[cell]
}

// Verify checks layout consistency: every cell assigned to a valid
// partition, mappings inverse to each other, and cell conservation
// across partitions.
func (l *Layout) Verify() error {
	for cell, p := range l.EToP {
		if p < 0 || p >= l.NumPartitions {
			return fmt.Errorf("cell %d assigned to invalid partition %d", cell, p)
		}
	}

	for p := 0; p < l.NumPartitions; p++ {
		if len(l.LocalToGlobal[p]) != l.CellsPerPartition[p] {
			return fmt.Errorf("partition %d: %d local cells, counted %d",
				p, len(l.LocalToGlobal[p]), l.CellsPerPartition[p])
		}
		for local, global := range l.LocalToGlobal[p] {
			if got := l.GlobalToLocal[p][global]; got != local {
				return fmt.Errorf("partition %d: cell %d maps to local %d, inverse gives %d",
					p, global, local, got)
			}
		}
	}

	total := 0
	for _, n := range l.CellsPerPartition {
		total += n
	}
	if total != l.NumCells {
		return fmt.Errorf("conservation error: partitions hold %d cells, mesh has %d", total, l.NumCells)
	}
	return nil
}
