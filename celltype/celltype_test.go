package celltype

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityCounts(t *testing.T) {
	cases := []struct {
		ct       CellType
		dim      int
		entities []int // per dimension 0..dim
		vertices []int // per dimension 0..dim
	}{
		{Line, 1, []int{2, 1}, []int{1, 2}},
		{Triangle, 2, []int{3, 3, 1}, []int{1, 2, 3}},
		{Quad, 2, []int{4, 4, 1}, []int{1, 2, 4}},
		{Tet, 3, []int{4, 6, 4, 1}, []int{1, 2, 3, 4}},
		{Hex, 3, []int{8, 12, 6, 1}, []int{1, 2, 4, 8}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.dim, tc.ct.Dim(), "%s dim", tc.ct)
		for d := 0; d <= tc.dim; d++ {
			assert.Equal(t, tc.entities[d], tc.ct.NumEntities(d), "%s entities dim %d", tc.ct, d)
			assert.Equal(t, tc.vertices[d], tc.ct.NumVertices(d), "%s vertices dim %d", tc.ct, d)
		}
	}
}

func TestLocalEntitiesShape(t *testing.T) {
	for _, ct := range []CellType{Line, Triangle, Quad, Tet, Hex} {
		for d := 0; d <= ct.Dim(); d++ {
			table, err := ct.LocalEntities(d)
			require.NoError(t, err, "%s dim %d", ct, d)
			require.Len(t, table, ct.NumEntities(d))
			for k, tuple := range table {
				assert.Len(t, tuple, ct.NumVertices(d), "%s dim %d entity %d", ct, d, k)
				for _, lv := range tuple {
					assert.GreaterOrEqual(t, lv, 0)
					assert.Less(t, lv, ct.NumVertices(ct.Dim()))
				}
			}
		}
	}
}

// Simplex facet k omits local vertex k.
func TestSimplexOpposition(t *testing.T) {
	edges, err := Triangle.LocalEntities(1)
	require.NoError(t, err)
	for k, edge := range edges {
		assert.NotContains(t, edge, k)
	}

	faces, err := Tet.LocalEntities(2)
	require.NoError(t, err)
	for k, face := range faces {
		assert.NotContains(t, face, k)
	}
}

// Every cell edge shows up in the right number of cell faces.
func TestEdgeFaceIncidence(t *testing.T) {
	for _, tc := range []struct {
		ct            CellType
		facesPerEdge  int
		edgesPerFaceN int
	}{
		{Tet, 2, 3},
		{Hex, 2, 4},
	} {
		edges, err := tc.ct.LocalEntities(1)
		require.NoError(t, err)
		faces, err := tc.ct.LocalEntities(2)
		require.NoError(t, err)

		for _, edge := range edges {
			count := 0
			for _, face := range faces {
				if containsAll(face, edge) {
					count++
				}
			}
			assert.Equal(t, tc.facesPerEdge, count, "%s edge %v", tc.ct, edge)
		}
		for _, face := range faces {
			count := 0
			for _, edge := range edges {
				if containsAll(face, edge) {
					count++
				}
			}
			assert.Equal(t, tc.edgesPerFaceN, count, "%s face %v", tc.ct, face)
		}
	}
}

// Entities of one dimension cover all cell vertices without repeats.
func TestVertexCoverage(t *testing.T) {
	for _, ct := range []CellType{Line, Triangle, Quad, Tet, Hex} {
		for d := 1; d <= ct.Dim(); d++ {
			table, err := ct.LocalEntities(d)
			require.NoError(t, err)

			seen := make(map[int]bool)
			for _, tuple := range table {
				uniq := make(map[int]bool)
				for _, lv := range tuple {
					assert.False(t, uniq[lv], "%s dim %d tuple %v repeats a vertex", ct, d, tuple)
					uniq[lv] = true
					seen[lv] = true
				}
			}
			assert.Len(t, seen, ct.NumVertices(ct.Dim()), "%s dim %d does not cover all vertices", ct, d)
		}
	}
}

func TestUnsupportedTypes(t *testing.T) {
	for _, ct := range []CellType{Prism, Pyramid} {
		assert.Equal(t, 3, ct.Dim())
		assert.Equal(t, 0, ct.NumEntities(1))
		_, err := ct.LocalEntities(1)
		assert.Error(t, err)
	}

	_, err := Triangle.LocalEntities(3)
	assert.Error(t, err)
}

func containsAll(super, sub []int) bool {
	s := sortedCopy(super)
	for _, v := range sub {
		i := sort.SearchInts(s, v)
		if i >= len(s) || s[i] != v {
			return false
		}
	}
	return true
}

func sortedCopy(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	sort.Ints(out)
	return out
}
