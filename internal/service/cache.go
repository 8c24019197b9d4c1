// Package service contains the label allocation engine and the print workflow
// services built around it.
package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/service/cache"
)

// ttlCache provides thread-safe LRU storage with TTL expiration. It backs the
// workflow store: abandoned workflows expire and the oldest are evicted first
// when capacity is reached.
type ttlCache[K comparable, V any] struct {
	mu              sync.RWMutex
	capacity        int
	ttl             time.Duration
	cleanupInterval time.Duration
	items           map[K]*cacheEntry[K, V]
	head            *cacheEntry[K, V]
	tail            *cacheEntry[K, V]
	now             func() time.Time
	onEvict         func(key K, value V, reason cache.EvictReason)
	stopCh          chan struct{}
	stopOnce        sync.Once
	done            chan struct{}
	hits            int64
	misses          int64
	evictions       int64
	expirations     int64
}

type cacheEntry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
	prev      *cacheEntry[K, V]
	next      *cacheEntry[K, V]
}

type cacheOption[K comparable, V any] func(*ttlCache[K, V])

func withEvictCallback[K comparable, V any](fn func(K, V, cache.EvictReason)) cacheOption[K, V] {
	return func(c *ttlCache[K, V]) {
		c.onEvict = fn
	}
}

func withClock[K comparable, V any](now func() time.Time) cacheOption[K, V] {
	return func(c *ttlCache[K, V]) {
		c.now = now
	}
}

func withCleanupInterval[K comparable, V any](d time.Duration) cacheOption[K, V] {
	return func(c *ttlCache[K, V]) {
		if d > 0 {
			c.cleanupInterval = d
		}
	}
}

// newTTLCache creates the cache and starts its janitor. Call Stop to end it.
func newTTLCache[K comparable, V any](capacity int, ttl time.Duration, opts ...cacheOption[K, V]) *ttlCache[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	c := &ttlCache[K, V]{
		capacity:        capacity,
		ttl:             ttl,
		cleanupInterval: time.Minute,
		items:           make(map[K]*cacheEntry[K, V], capacity),
		now:             time.Now,
		stopCh:          make(chan struct{}),
		done:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.startCleanup()
	return c
}

// Stop ends the janitor and waits for it to exit. It is safe to call twice.
func (c *ttlCache[K, V]) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
	<-c.done
}

// Metrics returns current cache performance metrics.
func (c *ttlCache[K, V]) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:        atomic.LoadInt64(&c.hits),
		Misses:      atomic.LoadInt64(&c.misses),
		Evictions:   atomic.LoadInt64(&c.evictions),
		Expirations: atomic.LoadInt64(&c.expirations),
		Size:        len(c.items),
		Capacity:    c.capacity,
	}
}

// Len returns the number of stored entries, expired ones included until the
// janitor or a Get removes them.
func (c *ttlCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns a live entry and marks it most recently used.
func (c *ttlCache[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mu.Lock()
	entry, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordWorkflowStoreOperation("get", "miss")
		return zero, false
	}

	if c.expired(entry) {
		c.removeEntry(entry)
		size := len(c.items)
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		atomic.AddInt64(&c.expirations, 1)
		metrics.RecordWorkflowStoreOperation("get", "expired")
		metrics.UpdateWorkflowsActive(size)
		c.evicted(entry, cache.EvictExpired)
		return zero, false
	}

	c.moveToFront(entry)
	value := entry.value
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordWorkflowStoreOperation("get", "hit")
	return value, true
}

// Set adds or replaces an entry and restarts its TTL. The least recently used
// entry is evicted when capacity is exceeded.
func (c *ttlCache[K, V]) Set(key K, value V) {
	c.mu.Lock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = c.now().Add(c.ttl)
		c.moveToFront(entry)
		c.mu.Unlock()
		metrics.RecordWorkflowStoreOperation("set", "update")
		return
	}

	entry := &cacheEntry[K, V]{
		key:       key,
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	var victim *cacheEntry[K, V]
	if len(c.items) > c.capacity {
		victim = c.removeTail()
	}
	size := len(c.items)
	c.mu.Unlock()

	metrics.RecordWorkflowStoreOperation("set", "insert")
	metrics.UpdateWorkflowsActive(size)
	if victim != nil {
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordWorkflowStoreOperation("evict", string(cache.EvictCapacity))
		c.evicted(victim, cache.EvictCapacity)
	}
}

// Invalidate removes a specific key from the cache.
func (c *ttlCache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	entry, ok := c.items[key]
	if ok {
		c.removeEntry(entry)
	}
	size := len(c.items)
	c.mu.Unlock()

	if ok {
		metrics.RecordWorkflowStoreOperation("invalidate", "success")
		metrics.UpdateWorkflowsActive(size)
	}
}

// Clear removes all entries and resets the counters.
func (c *ttlCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*cacheEntry[K, V], c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)
	atomic.StoreInt64(&c.expirations, 0)

	metrics.RecordWorkflowStoreOperation("clear", "success")
	metrics.UpdateWorkflowsActive(0)
}

func (c *ttlCache[K, V]) startCleanup() {
	defer close(c.done)

	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes every expired entry.
func (c *ttlCache[K, V]) cleanup() {
	c.mu.Lock()
	var expired []*cacheEntry[K, V]
	for _, entry := range c.items {
		if c.expired(entry) {
			c.removeEntry(entry)
			expired = append(expired, entry)
		}
	}
	size := len(c.items)
	c.mu.Unlock()

	if len(expired) == 0 {
		return
	}
	atomic.AddInt64(&c.expirations, int64(len(expired)))
	metrics.UpdateWorkflowsActive(size)
	for _, entry := range expired {
		metrics.RecordWorkflowStoreOperation("evict", string(cache.EvictExpired))
		c.evicted(entry, cache.EvictExpired)
	}
}

func (c *ttlCache[K, V]) expired(entry *cacheEntry[K, V]) bool {
	return c.ttl > 0 && c.now().After(entry.expiresAt)
}

// evicted runs the callback outside the lock.
func (c *ttlCache[K, V]) evicted(entry *cacheEntry[K, V], reason cache.EvictReason) {
	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value, reason)
	}
}

func (c *ttlCache[K, V]) removeEntry(entry *cacheEntry[K, V]) {
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *ttlCache[K, V]) moveToFront(entry *cacheEntry[K, V]) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *ttlCache[K, V]) addToFront(entry *cacheEntry[K, V]) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ttlCache[K, V]) unlink(entry *cacheEntry[K, V]) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}

// removeTail drops the least recently used entry and returns it.
func (c *ttlCache[K, V]) removeTail() *cacheEntry[K, V] {
	victim := c.tail
	if victim == nil {
		return nil
	}
	c.removeEntry(victim)
	return victim
}

var _ cache.CacheWithMetrics[string, int] = (*ttlCache[string, int])(nil)
