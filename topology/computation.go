package topology

import (
	"fmt"
	"sort"
)

// ComputeEntities creates the entities of dimension d: it assigns
// indices [0,N_d) to all distinct d-entities and stores both the
// cell-entity incidence (D,d) and the entity-vertex incidence (d,0).
// Vertices and cells are primitive, and a repeated request is a no-op.
//
// Entities are discovered in ascending cell-then-local-slot order, so
// the resulting numbering is deterministic for a given cell-vertex
// table and cell shape.
func (t *Topology) ComputeEntities(d int) error {
	if d < 0 || d > t.dim {
		return fmt.Errorf("entities of dimension %d out of range [0,%d]", d, t.dim)
	}
	if d == 0 || d == t.dim {
		return nil
	}
	if !t.Conn(t.dim, d).IsEmpty() {
		return nil
	}

	// Deduplication searches the vertex-sharing cell neighbourhood, so
	// cell-cell connectivity through shared vertices must exist first.
	if err := t.ComputeConnectivity(t.dim, t.dim); err != nil {
		return err
	}

	local, err := t.shape.LocalEntities(d)
	if err != nil {
		return err
	}
	m := len(local)
	n := len(local[0])

	cellVerts := t.Conn(t.dim, 0)
	cellCell := t.Conn(t.dim, t.dim)
	numCells := t.Size(t.dim)

	// Per-cell scratch: the entities seen in each cell, paired with
	// their sorted vertex tuple for set-equality testing. The sorted
	// key is only for lookup; (d,0) rows keep the canonical order.
	type localEntity struct {
		index  int
		sorted []int
	}
	cellEntities := make([][]localEntity, numCells)
	cellToE := make([][]int, numCells)
	var eToV [][]int

	next := 0
	sorted := make([]int, n)
	for c := 0; c < numCells; c++ {
		verts := cellVerts.Row(c)
		cellToE[c] = make([]int, m)
		cellEntities[c] = make([]localEntity, 0, m)

		for k := 0; k < m; k++ {
			canonical := make([]int, n)
			for i, lv := range local[k] {
				canonical[i] = verts[lv]
			}
			copy(sorted, canonical)
			sort.Ints(sorted)

			// A shared entity is incident to cells that share at least
			// one vertex, so scanning previously visited vertex-adjacent
			// cells finds every duplicate.
			entity := -1
		search:
			for _, cn := range cellCell.Row(c) {
				if cn >= c {
					continue
				}
				for _, le := range cellEntities[cn] {
					if equalTuples(le.sorted, sorted) {
						entity = le.index
						break search
					}
				}
			}

			if entity < 0 {
				entity = next
				next++
				eToV = append(eToV, canonical)
			}
			cellToE[c][k] = entity
			key := make([]int, n)
			copy(key, sorted)
			cellEntities[c] = append(cellEntities[c], localEntity{index: entity, sorted: key})
		}
	}

	t.sizes[d] = next
	t.SetConn(t.dim, d, NewConnectivityFromRagged(cellToE))
	t.SetConn(d, 0, NewConnectivityFromRagged(eToV))
	return nil
}

// ComputeConnectivity ensures the incidence (d0, d1) is present,
// deriving it from the primitive cell-vertex table by composing entity
// creation, transposition and intersection. Present incidences are
// returned as-is.
func (t *Topology) ComputeConnectivity(d0, d1 int) error {
	if d0 < 0 || d0 > t.dim || d1 < 0 || d1 > t.dim {
		return fmt.Errorf("connectivity (%d,%d) out of range for dimension-%d mesh", d0, d1, t.dim)
	}
	if !t.Conn(d0, d1).IsEmpty() {
		return nil
	}

	if t.Size(d0) == 0 {
		if err := t.ComputeEntities(d0); err != nil {
			return err
		}
	}
	if t.Size(d1) == 0 {
		if err := t.ComputeEntities(d1); err != nil {
			return err
		}
	}
	if t.Size(d0) == 0 && t.Size(d1) == 0 {
		return nil
	}

	// Creating entities may have filled the request already, e.g.
	// (D,d) and (d,0) both appear when dimension d is created.
	if !t.Conn(d0, d1).IsEmpty() {
		return nil
	}

	if d0 < d1 {
		if err := t.ComputeConnectivity(d1, d0); err != nil {
			return err
		}
		t.computeFromTranspose(d0, d1)
		return nil
	}

	// Vertex-vertex adjacency goes through the cells; everything else
	// intersects through the vertices.
	dStar := 0
	if d0 == 0 && d1 == 0 {
		dStar = t.dim
	}
	if err := t.ComputeConnectivity(d0, dStar); err != nil {
		return err
	}
	if err := t.ComputeConnectivity(dStar, d1); err != nil {
		return err
	}
	t.computeFromIntersection(d0, d1, dStar)
	return nil
}

// computeFromTranspose fills (d0, d1) by inverting the present
// (d1, d0): a counting pass sizes the rows, a second pass writes them.
// Within each row the targets come out in ascending order because the
// outer iteration runs over ascending e1.
func (t *Topology) computeFromTranspose(d0, d1 int) {
	source := t.Conn(d1, d0)
	if source.IsEmpty() {
		panic(fmt.Sprintf("topology: transpose (%d,%d) requires connectivity (%d,%d)", d0, d1, d1, d0))
	}

	counts := make([]int, t.Size(d0))
	for e1 := 0; e1 < source.Size(); e1++ {
		for _, e0 := range source.Row(e1) {
			counts[e0]++
		}
	}

	conn := NewConnectivity(counts)
	cursor := make([]int, t.Size(d0))
	for e1 := 0; e1 < source.Size(); e1++ {
		for _, e0 := range source.Row(e1) {
			conn.Set(e0, cursor[e0], e1)
			cursor[e0]++
		}
	}
	t.SetConn(d0, d1, conn)
}

// computeFromIntersection fills (d0, d1), d0 >= d1, by composing the
// present (d0, d) and (d, d1). For equal dimensions a target counts as
// a neighbour when it is a distinct entity reached through the
// intermediate; for d0 > d1 its vertex set must be contained in the
// source's vertex set. Row order is first-discovery order.
func (t *Topology) computeFromIntersection(d0, d1, d int) {
	if d0 < d1 {
		panic(fmt.Sprintf("topology: intersection (%d,%d) requires d0 >= d1", d0, d1))
	}
	connD0D := t.Conn(d0, d)
	connDD1 := t.Conn(d, d1)
	if connD0D.IsEmpty() || connDD1.IsEmpty() {
		panic(fmt.Sprintf("topology: intersection (%d,%d) via %d missing a prerequisite", d0, d1, d))
	}

	var ev0, ev1 *Connectivity
	if d0 > d1 {
		ev0 = t.Conn(d0, 0)
		ev1 = t.Conn(d1, 0)
		if ev0.IsEmpty() || ev1.IsEmpty() {
			panic(fmt.Sprintf("topology: intersection (%d,%d) missing entity-vertex connectivity", d0, d1))
		}
	}

	rows := make([][]int, t.Size(d0))
	for e0 := range rows {
		var entities []int
		for _, e := range connD0D.Row(e0) {
			for _, e1 := range connDD1.Row(e) {
				if d0 == d1 {
					if e1 != e0 && !containsIndex(entities, e1) {
						entities = append(entities, e1)
					}
				} else {
					if containsVertices(ev0.Row(e0), ev1.Row(e1)) && !containsIndex(entities, e1) {
						entities = append(entities, e1)
					}
				}
			}
		}
		rows[e0] = entities
	}
	t.SetConn(d0, d1, NewConnectivityFromRagged(rows))
}

func equalTuples(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsIndex(list []int, j int) bool {
	for _, v := range list {
		if v == j {
			return true
		}
	}
	return false
}

// containsVertices reports whether every vertex of sub occurs in super.
func containsVertices(super, sub []int) bool {
	for _, v := range sub {
		if !containsIndex(super, v) {
			return false
		}
	}
	return true
}
