package cache

import (
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. Must be a power of 2.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	shardMask = ShardCount - 1
)

// Hasher computes the shard-selection hash of a key.
type Hasher[K any] func(K) uint64

// RGBKey packs an 8-bit color into a 24-bit key.
func RGBKey(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// RGBHasher spreads packed RGB keys across shards.
// Neighboring colors differ only in the low bits, so the key is mixed
// (splitmix64 finalizer) before the shard mask is applied.
func RGBHasher(key uint32) uint64 {
	x := uint64(key)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Stats is a snapshot of cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the per-shard capacity.
	Capacity int
	// TotalCapacity is Capacity times ShardCount.
	TotalCapacity int
	// Hits is the number of lookups served from the cache.
	Hits uint64
	// Misses is the number of lookups that had to compute the value.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before the first lookup.
	HitRate float64
	// Evictions is the number of entries dropped for capacity.
	Evictions uint64
}

// Sharded is a thread-safe LRU cache split into ShardCount shards.
type Sharded[K comparable, V any] struct {
	shards   [ShardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu    sync.Mutex
	index map[K]int32 // key to slot
	lru   *lruSlots[K, V]
}

// NewSharded creates a cache holding up to capacity entries per shard.
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &Sharded[K, V]{
		hasher:   hasher,
		capacity: capacity,
	}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{
			index: make(map[K]int32, capacity),
			lru:   newLRUSlots[K, V](capacity),
		}
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get returns the cached value for key and marks it recently used.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)

	s.mu.Lock()
	i, ok := s.index[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(i)
	value := s.lru.At(i).value
	s.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores value under key, evicting the least recently used entry of
// the shard if it is full.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	c.insertLocked(s, key, value)
}

// GetOrCreate returns the cached value for key, computing and storing it
// with create on a miss.
//
// create runs without the shard lock held, so a slow computation never
// blocks lookups of other keys. Two goroutines missing on the same key may
// both call create; the later result replaces the earlier one, which is
// harmless for deterministic create functions.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	if value, ok := c.Get(key); ok {
		return value
	}

	value := create()
	c.Set(key, value)
	return value
}

func (c *Sharded[K, V]) insertLocked(s *shard[K, V], key K, value V) {
	if i, ok := s.index[key]; ok {
		s.lru.At(i).value = value
		s.lru.MoveToFront(i)
		return
	}

	i, old, evicted := s.lru.Insert(key, value)
	if evicted {
		delete(s.index, old)
		c.evictions.Add(1)
	}
	s.index[key] = i
}

// Len returns the total number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.index)
		s.mu.Unlock()
	}
	return total
}

// Clear removes all entries. Statistics are kept.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		clear(s.index)
		s.lru.Reset()
		s.mu.Unlock()
	}
}

// Stats returns current cache statistics.
func (c *Sharded[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:           c.Len(),
		Capacity:      c.capacity,
		TotalCapacity: c.capacity * ShardCount,
		Hits:          hits,
		Misses:        misses,
		HitRate:       hitRate,
		Evictions:     c.evictions.Load(),
	}
}

// ResetStats zeroes the hit, miss and eviction counters.
func (c *Sharded[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
