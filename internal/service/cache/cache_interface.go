// Package cache defines the contract of the in-memory stores used by services.
package cache

// Cache is a bounded key/value store whose entries expire.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Invalidate(key K)
	Len() int
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	Expirations int64
	Size        int
	Capacity    int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics[K comparable, V any] interface {
	Cache[K, V]
	Metrics() Metrics
}

// EvictReason tells an eviction callback why an entry left the cache.
type EvictReason string

const (
	// EvictCapacity means the least recently used entry made room for a new one.
	EvictCapacity EvictReason = "capacity"
	// EvictExpired means the entry outlived its TTL.
	EvictExpired EvictReason = "expired"
)
