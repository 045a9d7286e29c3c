package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavern-realm/server/generation"
)

func TestWorldCacheReturnsSameWorld(t *testing.T) {
	gen, err := generation.NewGenerator(smallParams())
	require.NoError(t, err)
	wc := NewWorldCache(gen, 2)

	first := wc.Get(7)
	assert.Same(t, first, wc.Get(7))
	assert.Equal(t, gen.Generate(7).Hash(), first.Hash())
	assert.Equal(t, smallParams(), wc.Params())
}

func TestWorldCacheEvictsLeastRecentlyUsed(t *testing.T) {
	gen, err := generation.NewGenerator(smallParams())
	require.NoError(t, err)
	wc := NewWorldCache(gen, 2)

	one := wc.Get(1)
	wc.Get(2)
	wc.Get(1) // 2 is now the oldest
	wc.Get(3)

	assert.Equal(t, 2, wc.Len())
	assert.Same(t, one, wc.Get(1))
}

func TestWorldCacheConcurrentGet(t *testing.T) {
	gen, err := generation.NewGenerator(smallParams())
	require.NoError(t, err)
	wc := NewWorldCache(gen, 4)

	worlds := make([]*generation.World, 8)
	var wg sync.WaitGroup
	for i := range worlds {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			worlds[i] = wc.Get(99)
		}(i)
	}
	wg.Wait()

	for _, w := range worlds[1:] {
		assert.Equal(t, worlds[0].Hash(), w.Hash())
	}
	assert.Equal(t, 1, wc.Len())
}
