package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectivity(t *testing.T) {
	conn := NewConnectivity([]int{2, 0, 3})

	assert.False(t, conn.IsEmpty())
	assert.Equal(t, 3, conn.Size())
	assert.Equal(t, 5, conn.NumConnections())
	assert.Len(t, conn.Row(0), 2)
	assert.Len(t, conn.Row(1), 0)
	assert.Len(t, conn.Row(2), 3)
}

func TestNewConnectivityFromRagged(t *testing.T) {
	conn := NewConnectivityFromRagged([][]int{{1, 2}, {0, 2}, {0, 1}})

	require.Equal(t, 3, conn.Size())
	assert.Equal(t, []int{1, 2}, conn.Row(0))
	assert.Equal(t, []int{0, 2}, conn.Row(1))
	assert.Equal(t, []int{0, 1}, conn.Row(2))
}

func TestConnectivitySet(t *testing.T) {
	conn := NewConnectivity([]int{1, 2})
	conn.Set(0, 0, 7)
	conn.Set(1, 0, 3)
	conn.Set(1, 1, 5)

	assert.Equal(t, []int{7}, conn.Row(0))
	assert.Equal(t, []int{3, 5}, conn.Row(1))
}

func TestConnectivityBoundsPanics(t *testing.T) {
	conn := NewConnectivity([]int{1, 2})

	assert.Panics(t, func() { conn.Row(2) })
	assert.Panics(t, func() { conn.Row(-1) })
	assert.Panics(t, func() { conn.Set(0, 1, 0) })
	assert.Panics(t, func() { conn.Set(2, 0, 0) })
}

func TestEmptyPlaceholder(t *testing.T) {
	var conn Connectivity
	assert.True(t, conn.IsEmpty())
	assert.Equal(t, 0, conn.Size())

	// A present store over zero sources is not the absent placeholder.
	assert.False(t, NewConnectivity(nil).IsEmpty())
}
