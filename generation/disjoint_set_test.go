package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisjointSetUnionAndFind(t *testing.T) {
	ds := NewDisjointSet(6)
	require.Equal(t, 6, ds.Count())

	assert.True(t, ds.Union(0, 1))
	assert.True(t, ds.Union(2, 3))
	assert.False(t, ds.Union(1, 0), "repeated union must report no merge")
	assert.Equal(t, 4, ds.Count())

	assert.True(t, ds.Connected(0, 1))
	assert.False(t, ds.Connected(1, 2))

	assert.True(t, ds.Union(1, 3))
	assert.True(t, ds.Connected(0, 2))
	assert.Equal(t, 4, ds.SizeOf(3))
	assert.Equal(t, 3, ds.Count())
	assert.Equal(t, 1, ds.SizeOf(5))
}

func TestDisjointSetUnionBySizeKeepsLargerRoot(t *testing.T) {
	ds := NewDisjointSet(4)
	ds.Union(0, 1)
	ds.Union(0, 2)
	big := ds.Find(0)

	ds.Union(3, 0)
	assert.Equal(t, big, ds.Find(3), "the singleton should hang under the larger set")
}

func TestDisjointSetLongChainDoesNotRecurse(t *testing.T) {
	const n = 200_000
	ds := NewDisjointSet(n)
	// Build the deepest tree union by size allows, then hammer Find.
	for i := 1; i < n; i++ {
		ds.Union(i-1, i)
	}
	require.Equal(t, 1, ds.Count())
	root := ds.Find(n - 1)
	for i := 0; i < n; i++ {
		require.Equal(t, root, ds.Find(i))
	}
	assert.Equal(t, n, ds.SizeOf(0))
}

func TestDisjointSetEmpty(t *testing.T) {
	ds := NewDisjointSet(0)
	assert.Equal(t, 0, ds.Count())
}
