// Package readers loads meshes from gambit neutral (.neu) and gmsh
// (.msh) files through the gocfd mesh readers and rebuilds them as
// meshtopo meshes with the internal node ordering.
package readers

import (
	"fmt"

	gmesh "github.com/notargets/gocfd/DG3D/mesh"
	gread "github.com/notargets/gocfd/DG3D/mesh/readers"
	"github.com/notargets/gocfd/utils"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/meshtopo/celltype"
	"github.com/notargets/meshtopo/mesh"
	"github.com/notargets/meshtopo/ordering"
)

// Load reads a mesh file, selected by extension the way gocfd does,
// and converts it. The file must contain a single element type.
func Load(filename string) (*mesh.Mesh, error) {
	msh, err := gread.ReadMeshFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return Convert(msh)
}

// Convert rebuilds a gocfd mesh as a meshtopo mesh: the element type
// is mapped, the per-cell vertex lists are permuted from the gmsh/VTK
// corner cycle into the internal ordering, and the vertex coordinates
// are attached.
func Convert(msh *gmesh.Mesh) (*mesh.Mesh, error) {
	if len(msh.EtoV) == 0 {
		return nil, fmt.Errorf("mesh has no elements")
	}
	ct, err := cellTypeOf(msh)
	if err != nil {
		return nil, err
	}

	cells, err := ordering.ApplyToCells(msh.EtoV, ct, ordering.Gmsh)
	if err != nil {
		return nil, err
	}

	m, err := mesh.New(ct, len(msh.Vertices), cells)
	if err != nil {
		return nil, err
	}

	if len(msh.Vertices) > 0 {
		ncoord := len(msh.Vertices[0])
		coords := mat.NewDense(len(msh.Vertices), ncoord, nil)
		for i, v := range msh.Vertices {
			for j := 0; j < ncoord; j++ {
				coords.Set(i, j, v[j])
			}
		}
		if err := m.SetCoordinates(coords); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// cellTypeOf maps the gocfd element type to the meshtopo cell type,
// requiring the mesh to be homogeneous.
func cellTypeOf(msh *gmesh.Mesh) (celltype.CellType, error) {
	first := msh.ElementTypes[0]
	for i, et := range msh.ElementTypes {
		if et != first {
			return 0, fmt.Errorf("mixed element types: element %d is %s, element 0 is %s", i, et, first)
		}
	}
	switch first {
	case utils.Line:
		return celltype.Line, nil
	case utils.Triangle:
		return celltype.Triangle, nil
	case utils.Quad:
		return celltype.Quad, nil
	case utils.Tet:
		return celltype.Tet, nil
	case utils.Hex:
		return celltype.Hex, nil
	case utils.Prism:
		return celltype.Prism, nil
	case utils.Pyramid:
		return celltype.Pyramid, nil
	}
	return 0, fmt.Errorf("unsupported element type %s", first)
}
