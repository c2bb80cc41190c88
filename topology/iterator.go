package topology

// EntityIterator ranges over all entities of one dimension in
// ascending index order.
type EntityIterator struct {
	size int
	cur  int
}

// Entities returns an iterator over the entities of dimension d. The
// entities must already exist; use ComputeEntities or request an
// incidence involving d first.
func (t *Topology) Entities(d int) *EntityIterator {
	return &EntityIterator{size: t.Size(d), cur: -1}
}

// Next advances the iterator and reports whether an entity is
// available.
func (it *EntityIterator) Next() bool {
	it.cur++
	return it.cur < it.size
}

// Entity returns the current entity index.
func (it *EntityIterator) Entity() int {
	return it.cur
}

// NeighborIterator yields the dimension-d1 neighbours of one entity,
// each exactly once, in the stored CSR row order.
type NeighborIterator struct {
	row []int
	cur int
}

// Neighbors returns an iterator over the dimension-d1 neighbours of
// entity e of dimension d0, computing the incidence first if it is
// absent.
func (t *Topology) Neighbors(d0, e, d1 int) (*NeighborIterator, error) {
	if err := t.ComputeConnectivity(d0, d1); err != nil {
		return nil, err
	}
	return &NeighborIterator{row: t.Conn(d0, d1).Row(e), cur: -1}, nil
}

// Next advances the iterator and reports whether a neighbour is
// available.
func (it *NeighborIterator) Next() bool {
	it.cur++
	return it.cur < len(it.row)
}

// Entity returns the current neighbour index.
func (it *NeighborIterator) Entity() int {
	return it.row[it.cur]
}
