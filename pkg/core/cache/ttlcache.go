// Package cache provides the namespaced TTL cache that sits in front of
// every upstream registry call.
package cache

import (
	"strings"
	"sync"
	"time"
)

// Fixed namespaces, one per upstream call site.
const (
	NamespaceCompanies     = "companies"
	NamespaceDetails       = "details"
	NamespaceFinances      = "finances"
	NamespaceManagement    = "management"
	NamespaceBeneficiaries = "beneficiaries"
	NamespaceDocuments     = "documents"
)

// DefaultTTL is how long an entry stays fresh. Upstream data is treated as
// idempotent within this window.
const DefaultTTL = 24 * time.Hour

type entry struct {
	storedAt time.Time
	value    interface{}
}

// Cache is a process-wide key→value store with per-entry expiry. Eviction is
// lazy: a stale read deletes the entry and reports a miss, there is no
// background sweeper. Construct once at startup and pass by reference; it is
// safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]map[string]entry

	// now is swappable for tests.
	now func() time.Time
}

// New creates a cache with the given TTL. A zero or negative ttl falls back
// to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]map[string]entry),
		now:     time.Now,
	}
}

// Keys are case-insensitive identifiers or normalized names.
func cacheKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Get returns the stored value if it is younger than the TTL. A stale entry
// is evicted and reported as a miss.
func (c *Cache) Get(namespace, key string) (interface{}, bool) {
	key = cacheKey(key)

	c.mu.RLock()
	e, ok := c.entries[namespace][key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.storedAt) < c.ttl {
		return e.value, true
	}

	// Stale: delete-then-miss. Re-check under the write lock since another
	// goroutine may have refreshed the entry in between.
	c.mu.Lock()
	if cur, ok := c.entries[namespace][key]; ok && cur.storedAt.Equal(e.storedAt) {
		delete(c.entries[namespace], key)
	}
	c.mu.Unlock()
	return nil, false
}

// Set overwrites unconditionally with a fresh timestamp.
func (c *Cache) Set(namespace, key string, value interface{}) {
	key = cacheKey(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	ns, ok := c.entries[namespace]
	if !ok {
		ns = make(map[string]entry)
		c.entries[namespace] = ns
	}
	ns[key] = entry{storedAt: c.now(), value: value}
}

// Clear wipes the given namespaces, or everything when called without
// arguments.
func (c *Cache) Clear(namespaces ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(namespaces) == 0 {
		c.entries = make(map[string]map[string]entry)
		return
	}
	for _, ns := range namespaces {
		delete(c.entries, ns)
	}
}

// Len reports how many entries a namespace currently holds, stale included.
func (c *Cache) Len(namespace string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries[namespace])
}

// SetClock replaces the time source. Tests only.
func (c *Cache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
