// Package ordering converts per-cell vertex lists between the internal
// node ordering and the conventions of common mesh formats. The
// internal ordering numbers simplex vertices ascending and uses
// tensor-product numbering for quadrilaterals and hexahedra; VTK and
// Gmsh number quadrilateral and hexahedral corners around the cell
// instead.
package ordering

import (
	"fmt"

	"github.com/notargets/meshtopo/celltype"
)

// Ordering identifies a node-ordering convention.
type Ordering uint8

const (
	Internal Ordering = iota
	VTK
	Gmsh
	Lexicographic
)

func (o Ordering) String() string {
	switch o {
	case Internal:
		return "Internal"
	case VTK:
		return "VTK"
	case Gmsh:
		return "Gmsh"
	case Lexicographic:
		return "Lexicographic"
	}
	return "Invalid"
}

// Counter-clockwise corner cycle to tensor-product numbering. VTK and
// Gmsh share the cycle convention for linear quads and hexes.
var (
	quadCycleToTP = []int{0, 1, 3, 2}
	hexCycleToTP  = []int{0, 1, 3, 2, 4, 5, 7, 6}
)

// Permutation returns perm such that internal[i] = src[perm[i]] maps a
// cell's vertex list from the given source ordering to the internal
// one. Linear cells only.
func Permutation(ct celltype.CellType, from Ordering) ([]int, error) {
	n := ct.NumVertices(ct.Dim())
	if n == 0 {
		return nil, fmt.Errorf("ordering: cell type %s is not supported", ct)
	}
	switch from {
	case Internal, Lexicographic:
		// Lexicographic and tensor-product numbering coincide for
		// linear cells.
		return identity(n), nil
	case VTK, Gmsh:
		switch ct {
		case celltype.Quad:
			return quadCycleToTP, nil
		case celltype.Hex:
			return hexCycleToTP, nil
		default:
			return identity(n), nil
		}
	}
	return nil, fmt.Errorf("ordering: unknown source ordering %s", from)
}

// ApplyToCell rearranges one cell's vertex list from the given source
// ordering into the internal ordering.
func ApplyToCell(cell []int, ct celltype.CellType, from Ordering) ([]int, error) {
	perm, err := Permutation(ct, from)
	if err != nil {
		return nil, err
	}
	if len(cell) != len(perm) {
		return nil, fmt.Errorf("ordering: cell has %d vertices, %s expects %d", len(cell), ct, len(perm))
	}
	out := make([]int, len(cell))
	for i, p := range perm {
		out[i] = cell[p]
	}
	return out, nil
}

// ApplyToCells rearranges a whole cell-vertex table from the given
// source ordering into the internal ordering.
func ApplyToCells(cells [][]int, ct celltype.CellType, from Ordering) ([][]int, error) {
	perm, err := Permutation(ct, from)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(cells))
	for c, cell := range cells {
		if len(cell) != len(perm) {
			return nil, fmt.Errorf("ordering: cell %d has %d vertices, %s expects %d", c, len(cell), ct, len(perm))
		}
		row := make([]int, len(cell))
		for i, p := range perm {
			row[i] = cell[p]
		}
		out[c] = row
	}
	return out, nil
}

func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}
