package mesh

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/meshtopo/celltype"
	"github.com/notargets/meshtopo/topology"
)

// Mesh is an unstructured mesh of a single cell type. It owns the
// topology built from the cell-vertex table and, optionally, the
// vertex coordinates. All intermediate entities and incidences are
// derived on demand through the topology.
type Mesh struct {
	cellType celltype.CellType
	topo     *topology.Topology

	// coords holds one row per vertex, nil when the mesh carries no
	// geometry. The topology never reads it.
	coords *mat.Dense
}

// New builds a mesh from its minimal description: the cell type, the
// vertex count, and the cell-vertex table in the canonical local
// order of the cell type.
func New(ct celltype.CellType, numVertices int, cells [][]int) (*Mesh, error) {
	topo, err := topology.NewTopology(ct, numVertices, cells)
	if err != nil {
		return nil, fmt.Errorf("mesh construction: %w", err)
	}
	return &Mesh{cellType: ct, topo: topo}, nil
}

// CellType returns the cell type of the mesh.
func (m *Mesh) CellType() celltype.CellType {
	return m.cellType
}

// Dim returns the topological dimension.
func (m *Mesh) Dim() int {
	return m.topo.Dim()
}

// Topology returns the underlying topology.
func (m *Mesh) Topology() *topology.Topology {
	return m.topo
}

// NumCells returns the number of cells.
func (m *Mesh) NumCells() int {
	return m.topo.Size(m.topo.Dim())
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int {
	return m.topo.Size(0)
}

// Size returns the number of entities of dimension d, computing them
// first if they do not exist yet.
func (m *Mesh) Size(d int) (int, error) {
	if err := m.topo.ComputeEntities(d); err != nil {
		return 0, err
	}
	return m.topo.Size(d), nil
}

// Connectivity returns the incidence (d0, d1), computing it on first
// access.
func (m *Mesh) Connectivity(d0, d1 int) (*topology.Connectivity, error) {
	if err := m.topo.ComputeConnectivity(d0, d1); err != nil {
		return nil, err
	}
	return m.topo.Conn(d0, d1), nil
}

// EntityVertices returns the vertex tuple of entity e of dimension d,
// in the canonical local order.
func (m *Mesh) EntityVertices(d, e int) ([]int, error) {
	conn, err := m.Connectivity(d, 0)
	if err != nil {
		return nil, err
	}
	return conn.Row(e), nil
}

// BoundaryFacets returns the indices of the facets (entities of
// dimension D-1) incident to exactly one cell.
func (m *Mesh) BoundaryFacets() ([]int, error) {
	dim := m.topo.Dim()
	conn, err := m.Connectivity(dim-1, dim)
	if err != nil {
		return nil, err
	}
	var boundary []int
	for f := 0; f < conn.Size(); f++ {
		if len(conn.Row(f)) == 1 {
			boundary = append(boundary, f)
		}
	}
	return boundary, nil
}

// SetCoordinates attaches vertex coordinates, one row per vertex.
func (m *Mesh) SetCoordinates(coords *mat.Dense) error {
	rows, _ := coords.Dims()
	if rows != m.NumVertices() {
		return fmt.Errorf("coordinates have %d rows, mesh has %d vertices", rows, m.NumVertices())
	}
	m.coords = coords
	return nil
}

// Coordinates returns the vertex coordinates, or nil when the mesh
// carries no geometry.
func (m *Mesh) Coordinates() *mat.Dense {
	return m.coords
}

// String returns a summary of the mesh topology.
func (m *Mesh) String() string {
	var sb strings.Builder
	sb.WriteString("=== Mesh Summary ===\n")
	sb.WriteString(fmt.Sprintf("  Cell type: %s\n", m.cellType))
	sb.WriteString(fmt.Sprintf("  Dimension: %d\n", m.Dim()))
	sb.WriteString(fmt.Sprintf("  Cells: %d\n", m.NumCells()))
	sb.WriteString(fmt.Sprintf("  Vertices: %d\n", m.NumVertices()))
	for d := 1; d < m.Dim(); d++ {
		if n := m.topo.Size(d); n > 0 {
			sb.WriteString(fmt.Sprintf("  Entities of dimension %d: %d\n", d, n))
		}
	}
	if m.coords != nil {
		_, c := m.coords.Dims()
		sb.WriteString(fmt.Sprintf("  Coordinates: %d per vertex\n", c))
	}
	return sb.String()
}
