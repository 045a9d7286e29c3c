package services

import (
	"sync"

	"github.com/zyedidia/generic/cache"

	"cavern-realm/server/generation"
	"cavern-realm/server/monitoring"
)

// WorldCache keeps recently used worlds so players sharing a seed, or
// resuming one, do not pay for generation again. Worlds are read-only once
// generated, so a cached world can be handed to any number of sessions.
type WorldCache struct {
	generator *generation.Generator
	worlds    *cache.Cache[int64, *generation.World]
	mutex     sync.Mutex
}

// NewWorldCache creates a cache holding at most capacity worlds.
func NewWorldCache(generator *generation.Generator, capacity int) *WorldCache {
	worlds := cache.New[int64, *generation.World](capacity)
	worlds.SetEvictCallback(func(seed int64, _ *generation.World) {
		monitoring.Logf("Evicted world %d from cache", seed)
	})
	return &WorldCache{
		generator: generator,
		worlds:    worlds,
	}
}

// Get returns the world for seed, generating it on a miss.
func (wc *WorldCache) Get(seed int64) *generation.World {
	wc.mutex.Lock()
	world, exists := wc.worlds.Get(seed)
	wc.mutex.Unlock()
	if exists {
		return world
	}

	// Generate outside the lock; a racing caller produces an identical world.
	world = wc.generator.Generate(seed)

	wc.mutex.Lock()
	defer wc.mutex.Unlock()

	// Check again if the world was stored by another goroutine
	if cached, exists := wc.worlds.Get(seed); exists {
		return cached
	}
	wc.worlds.Put(seed, world)
	monitoring.Logf("Generated world: %s", world.Report())
	return world
}

// Len returns the number of cached worlds.
func (wc *WorldCache) Len() int {
	wc.mutex.Lock()
	defer wc.mutex.Unlock()
	return wc.worlds.Size()
}

// Params returns the generation parameters every cached world shares.
func (wc *WorldCache) Params() generation.Params {
	return wc.generator.Params()
}
