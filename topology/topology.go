package topology

import "fmt"

// CellShape supplies the combinatorial layout of the mesh cell type:
// how many entities of each dimension a cell has and which local
// vertex tuples compose them. celltype.CellType implements it.
type CellShape interface {
	Dim() int

	// NumEntities returns m_T(d), the number of d-entities per cell.
	NumEntities(d int) int

	// NumVertices returns n_T(d), the number of vertices per d-entity.
	NumVertices(d int) int

	// LocalEntities returns the m_T(d) local vertex tuples composing
	// the d-entities of one cell, in the canonical local order.
	LocalEntities(d int) ([][]int, error)
}

// Topology holds the incidence lattice of an unstructured mesh: the
// per-dimension entity counts and a (D+1)x(D+1) matrix of optional
// Connectivity stores. It is created from cell-vertex connectivity
// alone and grows monotonically as incidences are requested: a count
// or incidence transitions exactly once from unknown/absent to
// known/present and is immutable afterwards.
//
// A Topology must not be shared across goroutines while incidences
// are still being computed.
type Topology struct {
	shape CellShape
	dim   int

	// sizes[d] is the number of entities of dimension d, 0 while
	// unknown. Vertices and cells are known at construction; the
	// counts in between appear when ComputeEntities runs.
	sizes []int

	conns [][]*Connectivity
}

// NewTopology builds a mesh topology from its minimal input: the cell
// type layout, the number of vertices, and the cell-vertex table in
// the canonical local order. The cell rows are validated against the
// shape and the vertex count.
func NewTopology(shape CellShape, numVertices int, cells [][]int) (*Topology, error) {
	dim := shape.Dim()
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("cell shape has unsupported dimension %d", dim)
	}
	if numVertices <= 0 {
		return nil, fmt.Errorf("invalid vertex count %d", numVertices)
	}
	nv := shape.NumVertices(dim)
	if nv == 0 {
		return nil, fmt.Errorf("cell shape supplies no vertex table")
	}
	for c, row := range cells {
		if len(row) != nv {
			return nil, fmt.Errorf("cell %d has %d vertices, want %d", c, len(row), nv)
		}
		for _, v := range row {
			if v < 0 || v >= numVertices {
				return nil, fmt.Errorf("cell %d references vertex %d outside [0,%d)", c, v, numVertices)
			}
		}
	}

	t := &Topology{
		shape: shape,
		dim:   dim,
		sizes: make([]int, dim+1),
		conns: make([][]*Connectivity, dim+1),
	}
	for d0 := range t.conns {
		t.conns[d0] = make([]*Connectivity, dim+1)
		for d1 := range t.conns[d0] {
			t.conns[d0][d1] = &Connectivity{}
		}
	}
	t.sizes[0] = numVertices
	t.sizes[dim] = len(cells)
	t.SetConn(dim, 0, NewConnectivityFromRagged(cells))
	return t, nil
}

// Dim returns the topological dimension of the mesh.
func (t *Topology) Dim() int {
	return t.dim
}

// Shape returns the cell shape the topology was built with.
func (t *Topology) Shape() CellShape {
	return t.shape
}

// Size returns the number of entities of dimension d, or 0 if the
// entities have not been created yet.
func (t *Topology) Size(d int) int {
	if d < 0 || d > t.dim {
		return 0
	}
	return t.sizes[d]
}

// Conn returns the incidence store for (d0, d1). The store is the
// absent placeholder until a computation fills it; callers check
// IsEmpty.
func (t *Topology) Conn(d0, d1 int) *Connectivity {
	t.checkDims(d0, d1)
	return t.conns[d0][d1]
}

// SetConn installs a computed incidence. Overwriting a present
// incidence is a programmer error.
func (t *Topology) SetConn(d0, d1 int, conn *Connectivity) {
	t.checkDims(d0, d1)
	if !t.conns[d0][d1].IsEmpty() {
		panic(fmt.Sprintf("topology: connectivity (%d,%d) already present", d0, d1))
	}
	t.conns[d0][d1] = conn
}

func (t *Topology) checkDims(ds ...int) {
	for _, d := range ds {
		if d < 0 || d > t.dim {
			panic(fmt.Sprintf("topology: dimension %d out of range [0,%d]", d, t.dim))
		}
	}
}
