package analytics

import (
	"sync"
	"time"
)

// DefaultCacheTTL is the safety-net expiry. Invalidation normally
// happens through the fingerprint; the TTL only bounds the damage of a
// fingerprint collision.
const DefaultCacheTTL = 5 * time.Minute

// Fingerprint is a cheap digest of the store's content: the record
// count plus the most recent record's timestamp. Any append changes
// it, so cached snapshots are content-addressed rather than purely
// time-addressed.
type Fingerprint struct {
	Count  int
	Latest int64 // unix nanoseconds of the newest record
}

// NewFingerprint builds a fingerprint from store stats.
func NewFingerprint(count int, latest time.Time) Fingerprint {
	fp := Fingerprint{Count: count}
	if !latest.IsZero() {
		fp.Latest = latest.UnixNano()
	}
	return fp
}

// cacheKey identifies one memoized snapshot. All fields are
// comparable, so the key works directly as a map key.
type cacheKey struct {
	window Window
	gameID string
	fp     Fingerprint
}

type cacheEntry struct {
	snap     *Snapshot
	storedAt time.Time
}

// Cache memoizes composite snapshots keyed by (window, game filter,
// fingerprint). Expiry is tracked per key, so refreshing one scope
// never invalidates a different, still-fresh scope.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[cacheKey]cacheEntry
	clock   func() time.Time
}

// NewCache creates a cache with the given safety-net TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[cacheKey]cacheEntry),
		clock:   time.Now,
	}
}

// Get returns the cached snapshot for the scope and fingerprint, if
// present and not past its TTL.
func (c *Cache) Get(scope Scope, fp Fingerprint) (*Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{window: scope.Window, gameID: scope.GameID, fp: fp}
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.clock().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.snap, true
}

// Put stores a snapshot for the scope and fingerprint.
func (c *Cache) Put(scope Scope, fp Fingerprint, snap *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{window: scope.Window, gameID: scope.GameID, fp: fp}
	c.entries[key] = cacheEntry{snap: snap, storedAt: c.clock()}
}

// Purge drops every entry. Used after a store reset.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}
