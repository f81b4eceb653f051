// Package cache memoizes finished job records behind a content
// fingerprint. The cache is a bounded, TTL-aware LRU map guarded by a
// single mutex; a background sweep purges expired entries between accesses.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift/internal/record"
)

// maxSweepInterval bounds how rarely the background sweep runs even for
// very long TTLs.
const maxSweepInterval = 5 * time.Minute

type entry struct {
	key        string
	rec        record.JobRecord
	insertedAt time.Time
}

// Cache is safe for concurrent use. All map and recency-order mutations
// happen under one lock, so Get/Set are atomic with respect to each other.
type Cache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	order   *list.List // front = most recently used
	items   map[string]*list.Element
	done    chan struct{}

	now func() time.Time
}

// New builds a cache holding at most maxSize entries, each valid for ttl.
// A ttl of zero disables expiry. Close stops the background sweep.
func New(maxSize int, ttl time.Duration) *Cache {
	c := &Cache{
		maxSize: maxSize,
		ttl:     ttl,
		order:   list.New(),
		items:   make(map[string]*list.Element),
		done:    make(chan struct{}),
		now:     time.Now,
	}
	if ttl > 0 {
		go c.sweep()
	}
	return c
}

// Get returns the cached record for key. An entry older than the TTL is
// evicted and reported as a miss; a hit refreshes its recency.
func (c *Cache) Get(key string) (record.JobRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return record.JobRecord{}, false
	}
	ent := el.Value.(*entry)
	if c.expired(ent) {
		c.remove(el)
		return record.JobRecord{}, false
	}
	c.order.MoveToFront(el)
	return ent.rec, true
}

// Set stores rec under key, updating and refreshing an existing entry. When
// the cache is over capacity the least-recently-used entry is evicted.
func (c *Cache) Set(key string, rec record.JobRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.rec = rec
		ent.insertedAt = c.now()
		c.order.MoveToFront(el)
		return
	}
	if len(c.items) >= c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.remove(oldest)
		}
	}
	c.items[key] = c.order.PushFront(&entry{key: key, rec: rec, insertedAt: c.now()})
}

// Delete removes key, reporting whether it was present.
func (c *Cache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if ok {
		c.remove(el)
	}
	return ok
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[string]*list.Element)
}

// Close stops the background sweep. The cache remains usable afterwards.
func (c *Cache) Close() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

func (c *Cache) expired(ent *entry) bool {
	return c.ttl > 0 && c.now().Sub(ent.insertedAt) > c.ttl
}

// remove must be called with the lock held.
func (c *Cache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}

// sweep periodically purges expired entries so the cache does not grow
// between accesses. It runs at half the TTL, bounded by maxSweepInterval.
func (c *Cache) sweep() {
	period := c.ttl / 2
	if period > maxSweepInterval {
		period = maxSweepInterval
	}
	if period <= 0 {
		period = c.ttl
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.purgeExpired()
		}
	}
}

func (c *Cache) purgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if c.expired(el.Value.(*entry)) {
			c.remove(el)
			removed++
		}
		el = prev
	}
	if removed > 0 {
		log.Debug().Int("removed", removed).Msg("cache sweep purged expired entries")
	}
}
