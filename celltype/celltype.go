package celltype

import (
	"fmt"
)

// CellType identifies the reference shape of a mesh cell
type CellType uint8

const (
	// 0D
	Point CellType = iota

	// 1D
	Line

	// 2D
	Triangle
	Quad

	// 3D
	Tet
	Hex
	Prism
	Pyramid
)

func (ct CellType) String() string {
	switch ct {
	case Point:
		return "Point"
	case Line:
		return "Line"
	case Triangle:
		return "Triangle"
	case Quad:
		return "Quad"
	case Tet:
		return "Tet"
	case Hex:
		return "Hex"
	case Prism:
		return "Prism"
	case Pyramid:
		return "Pyramid"
	}
	return "Invalid"
}

// shape holds the combinatorial layout of one cell type: for every
// entity dimension d, the list of local vertex tuples composing the
// entities of that dimension, in the canonical local order.
type shape struct {
	dim int

	// entities[d][k] is the vertex tuple of the k-th d-entity.
	// entities[0] lists the vertices themselves and entities[dim]
	// is the single identity tuple for the cell.
	entities [][][]int
}

// Canonical local orderings. Simplex facets follow the opposition
// rule (triangle edge k and tetrahedron face k omit vertex k); all
// simplex tuples list their vertices in ascending local index.
// Quad and Hex use tensor-product vertex numbering.
var shapes = map[CellType]*shape{
	Point: {
		dim: 0,
		entities: [][][]int{
			{{0}},
		},
	},
	Line: {
		dim: 1,
		entities: [][][]int{
			{{0}, {1}},
			{{0, 1}},
		},
	},
	Triangle: {
		dim: 2,
		entities: [][][]int{
			{{0}, {1}, {2}},
			{{1, 2}, {0, 2}, {0, 1}},
			{{0, 1, 2}},
		},
	},
	Quad: {
		dim: 2,
		entities: [][][]int{
			{{0}, {1}, {2}, {3}},
			{{0, 1}, {2, 3}, {0, 2}, {1, 3}},
			{{0, 1, 2, 3}},
		},
	},
	Tet: {
		dim: 3,
		entities: [][][]int{
			{{0}, {1}, {2}, {3}},
			{{2, 3}, {1, 3}, {1, 2}, {0, 3}, {0, 2}, {0, 1}},
			{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}},
			{{0, 1, 2, 3}},
		},
	},
	Hex: {
		dim: 3,
		entities: [][][]int{
			{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}},
			{
				{0, 1}, {2, 3}, {4, 5}, {6, 7},
				{0, 2}, {1, 3}, {4, 6}, {5, 7},
				{0, 4}, {1, 5}, {2, 6}, {3, 7},
			},
			{
				{0, 1, 2, 3}, {4, 5, 6, 7},
				{0, 1, 4, 5}, {2, 3, 6, 7},
				{0, 2, 4, 6}, {1, 3, 5, 7},
			},
			{{0, 1, 2, 3, 4, 5, 6, 7}},
		},
	},
}

// Dim returns the topological dimension of the cell type.
func (ct CellType) Dim() int {
	switch ct {
	case Point:
		return 0
	case Line:
		return 1
	case Triangle, Quad:
		return 2
	case Tet, Hex, Prism, Pyramid:
		return 3
	}
	return -1
}

// NumEntities returns the number of entities of dimension d in a
// single cell, or 0 if the cell type carries no table for d.
func (ct CellType) NumEntities(d int) int {
	s, ok := shapes[ct]
	if !ok || d < 0 || d > s.dim {
		return 0
	}
	return len(s.entities[d])
}

// NumVertices returns the number of vertices composing one entity of
// dimension d, or 0 if the cell type carries no table for d.
func (ct CellType) NumVertices(d int) int {
	s, ok := shapes[ct]
	if !ok || d < 0 || d > s.dim {
		return 0
	}
	return len(s.entities[d][0])
}

// LocalEntities returns the table of local vertex tuples composing the
// entities of dimension d, in the canonical local order. The returned
// table is shared and must not be modified.
//
// Prism and Pyramid have no tables: their faces mix triangles and
// quadrilaterals, which the uniform entity layout cannot represent.
func (ct CellType) LocalEntities(d int) ([][]int, error) {
	s, ok := shapes[ct]
	if !ok {
		return nil, fmt.Errorf("cell type %s is not supported", ct)
	}
	if d < 0 || d > s.dim {
		return nil, fmt.Errorf("cell type %s has no entities of dimension %d", ct, d)
	}
	return s.entities[d], nil
}
