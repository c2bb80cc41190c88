package partitions

import (
	"fmt"

	"github.com/notargets/meshtopo/topology"
)

// Strategy defines how cells are grouped into partitions.
type Strategy int

const (
	Block      Strategy = iota // Consecutive cell ranges
	RoundRobin                 // Distribute cyclically
	Greedy                     // Grow partitions over the facet-neighbour graph
)

// Builder constructs partition layouts from mesh topology.
type Builder struct {
	Topo          *topology.Topology
	NumPartitions int
	Strategy      Strategy
}

// Build assigns every cell to a partition using the configured
// strategy and returns the verified layout.
func (b *Builder) Build() (*Layout, error) {
	numCells := b.Topo.Size(b.Topo.Dim())
	if b.NumPartitions <= 0 || b.NumPartitions > numCells {
		return nil, fmt.Errorf("cannot split %d cells into %d partitions", numCells, b.NumPartitions)
	}

	var eToP []int
	var err error
	switch b.Strategy {
	case Block:
		eToP = b.blockPartition(numCells)
	case RoundRobin:
		eToP = b.roundRobinPartition(numCells)
	case Greedy:
		eToP, err = b.greedyPartition(numCells)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown partition strategy %d", b.Strategy)
	}

	layout := newLayout(eToP, b.NumPartitions)
	if err := layout.Verify(); err != nil {
		return nil, err
	}
	return layout, nil
}

func (b *Builder) blockPartition(numCells int) []int {
	eToP := make([]int, numCells)
	per := (numCells + b.NumPartitions - 1) / b.NumPartitions
	for cell := range eToP {
		p := cell / per
		if p >= b.NumPartitions {
			p = b.NumPartitions - 1
		}
		eToP[cell] = p
	}
	return eToP
}

func (b *Builder) roundRobinPartition(numCells int) []int {
	eToP := make([]int, numCells)
	for cell := range eToP {
		eToP[cell] = cell % b.NumPartitions
	}
	return eToP
}

// greedyPartition grows each partition from the lowest unassigned cell
// by breadth-first traversal of the facet-neighbour graph, keeping
// partitions contiguous where the mesh allows it.
func (b *Builder) greedyPartition(numCells int) ([]int, error) {
	dual, err := DualGraph(b.Topo)
	if err != nil {
		return nil, err
	}

	target := (numCells + b.NumPartitions - 1) / b.NumPartitions
	eToP := make([]int, numCells)
	for cell := range eToP {
		eToP[cell] = -1
	}

	assigned := 0
	next := 0
	for p := 0; p < b.NumPartitions && assigned < numCells; p++ {
		// Remaining partitions must each receive at least one cell.
		size := target
		if rest := numCells - assigned; size > rest-(b.NumPartitions-p-1) {
			size = rest - (b.NumPartitions - p - 1)
		}

		for next < numCells && eToP[next] >= 0 {
			next++
		}
		queue := []int{next}
		count := 0
		for len(queue) > 0 && count < size {
			cell := queue[0]
			queue = queue[1:]
			if eToP[cell] >= 0 {
				continue
			}
			eToP[cell] = p
			count++
			for _, nb := range dual[cell] {
				if eToP[nb] < 0 {
					queue = append(queue, nb)
				}
			}
		}
		// The frontier may dry up on a disconnected mesh; fall back to
		// the lowest unassigned cells.
		for scan := next; count < size && scan < numCells; scan++ {
			if eToP[scan] < 0 {
				eToP[scan] = p
				count++
			}
		}
		assigned += count
	}

	// Any tail cells join the last partition.
	for cell := range eToP {
		if eToP[cell] < 0 {
			eToP[cell] = b.NumPartitions - 1
		}
	}
	return eToP, nil
}

// DualGraph returns, per cell, the cells sharing a facet with it. This
// is the facet-shared adjacency, distinct from the vertex-shared
// cell-cell connectivity the topology uses for entity deduplication.
func DualGraph(t *topology.Topology) ([][]int, error) {
	dim := t.Dim()
	if dim < 1 {
		return nil, fmt.Errorf("dual graph requires a mesh of dimension >= 1")
	}
	if err := t.ComputeConnectivity(dim, dim-1); err != nil {
		return nil, err
	}
	if err := t.ComputeConnectivity(dim-1, dim); err != nil {
		return nil, err
	}

	cellFacet := t.Conn(dim, dim-1)
	facetCell := t.Conn(dim-1, dim)

	dual := make([][]int, t.Size(dim))
	for cell := range dual {
		for _, f := range cellFacet.Row(cell) {
			for _, nb := range facetCell.Row(f) {
				if nb != cell {
					dual[cell] = append(dual[cell], nb)
				}
			}
		}
	}
	return dual, nil
}
