package topology

import "fmt"

// Connectivity is a compressed sparse row incidence store. For a fixed
// pair of entity dimensions (d0, d1) it records, per source entity of
// dimension d0, the indices of the connected entities of dimension d1.
//
// The zero value is the "absent" placeholder used by Topology for
// incidences that have not been computed yet; callers distinguish it
// with IsEmpty.
type Connectivity struct {
	// offsets has length Size()+1; the neighbours of source entity i
	// occupy values[offsets[i]:offsets[i+1]].
	offsets []int
	values  []int
}

// NewConnectivity allocates CSR storage for the given per-row sizes.
// Row contents are filled afterwards with Set.
func NewConnectivity(sizes []int) *Connectivity {
	offsets := make([]int, len(sizes)+1)
	for i, n := range sizes {
		offsets[i+1] = offsets[i] + n
	}
	return &Connectivity{
		offsets: offsets,
		values:  make([]int, offsets[len(sizes)]),
	}
}

// NewConnectivityFromRagged lays out an already materialized ragged
// table as CSR.
func NewConnectivityFromRagged(rows [][]int) *Connectivity {
	sizes := make([]int, len(rows))
	for i, row := range rows {
		sizes[i] = len(row)
	}
	conn := NewConnectivity(sizes)
	for i, row := range rows {
		copy(conn.Row(i), row)
	}
	return conn
}

// IsEmpty reports whether the store is the absent placeholder.
func (c *Connectivity) IsEmpty() bool {
	return len(c.offsets) == 0
}

// Size returns the number of source entities.
func (c *Connectivity) Size() int {
	if c.IsEmpty() {
		return 0
	}
	return len(c.offsets) - 1
}

// NumConnections returns the total number of stored incidences.
func (c *Connectivity) NumConnections() int {
	return len(c.values)
}

// Row returns the neighbour slice of source entity i. The slice
// aliases the store and must not be modified by readers.
func (c *Connectivity) Row(i int) []int {
	if i < 0 || i >= c.Size() {
		panic(fmt.Sprintf("connectivity: source entity %d out of range [0,%d)", i, c.Size()))
	}
	return c.values[c.offsets[i]:c.offsets[i+1]]
}

// Set writes neighbour j at position pos within row i.
func (c *Connectivity) Set(i, pos, j int) {
	if i < 0 || i >= c.Size() {
		panic(fmt.Sprintf("connectivity: source entity %d out of range [0,%d)", i, c.Size()))
	}
	if pos < 0 || pos >= c.offsets[i+1]-c.offsets[i] {
		panic(fmt.Sprintf("connectivity: position %d out of range for row %d of length %d",
			pos, i, c.offsets[i+1]-c.offsets[i]))
	}
	c.values[c.offsets[i]+pos] = j
}
