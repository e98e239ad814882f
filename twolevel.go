package glyphcache

// slot holds one cached entry. A nil *slot marks an unpopulated position.
type slot[K comparable, V any] struct {
	key   K
	value V
}

// TwoLevelCache is a fixed-capacity cache for expensive render resources
// (font faces, atlas pages, pipelines) keyed by an opaque lookup key.
//
// The layout is two tiers: a single "hot" primary slot plus a small
// most-recently-inserted-first secondary ring of fixed length. The primary
// slot is sticky: it holds the first key ever inserted and keeps it until
// Clear, or until a direct replacement when the ring capacity is zero. New
// distinct keys enter at the front of the ring, shifting older entries toward
// the tail; the entry that falls off the end is evicted. This is deliberately
// not an LRU: it fits workloads with one dominant hot key (the current font)
// and a handful of recent alternates, and keeps lookups to one comparison
// plus a short linear scan.
//
// Values displaced from the cache are handed to the eviction callback exactly
// once; after the callback runs the cache holds no reference to the value and
// the callback is its sole owner. A value built by a factory that turns out
// to be redundant (the key was already cached) is evicted immediately and
// never becomes visible as an entry.
//
// TwoLevelCache is NOT safe for concurrent use. It assumes a single logical
// owner, typically one render goroutine; callers that share an instance must
// serialize access externally. The factory and the eviction callback must not
// call back into the same cache.
type TwoLevelCache[K comparable, V any] struct {
	// secondaryCap is the ring length, fixed at construction.
	secondaryCap int

	// primary is the hot slot. Nil until the first insert.
	primary *slot[K, V]

	// secondary is the ring, allocated lazily on first need and then
	// fixed-length. Index 0 is the newest entry; populated slots form a
	// contiguous prefix.
	secondary []*slot[K, V]

	onEvict  func(V)
	keyEqual func(K, K) bool
}

// New creates a cache with the given secondary ring capacity. Total capacity
// is 1 + secondaryCap. A secondaryCap of 0 leaves only the primary slot, in
// which case a new key replaces (and evicts) the current occupant directly.
//
// Returns ErrNegativeCapacity if secondaryCap is negative.
func New[K comparable, V any](secondaryCap int, opts ...Option[K, V]) (*TwoLevelCache[K, V], error) {
	if secondaryCap < 0 {
		return nil, ErrNegativeCapacity
	}
	c := &TwoLevelCache[K, V]{secondaryCap: secondaryCap}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Lookup returns the cached value for key.
// Returns (value, true) if found, (zero, false) otherwise.
//
// A hit on the ring does not promote the entry to the primary slot, and a
// miss has no side effects.
func (c *TwoLevelCache[K, V]) Lookup(key K) (V, bool) {
	if c.primary != nil && c.keysEqual(c.primary.key, key) {
		return c.primary.value, true
	}
	for _, s := range c.secondary {
		if s == nil {
			break
		}
		if c.keysEqual(s.key, key) {
			return s.value, true
		}
	}
	var zero V
	return zero, false
}

// GetOrAdd returns the cached value for key, calling factory to build it on a
// miss. The factory is never called when the key is already cached, and a
// factory error propagates unchanged with no entry installed.
//
// On a miss the new value lands in the primary slot if it is empty, otherwise
// at the front of the secondary ring; the entry shifted off the tail (if any)
// is evicted. With a ring capacity of zero the primary occupant is evicted
// and replaced instead.
func (c *TwoLevelCache[K, V]) GetOrAdd(key K, factory func(K) (V, error)) (V, error) {
	if v, ok := c.Lookup(key); ok {
		return v, nil
	}

	candidate, err := factory(key)
	if err != nil {
		var zero V
		return zero, err
	}

	// First insert fills the hot slot.
	if c.primary == nil {
		c.primary = &slot[K, V]{key: key, value: candidate}
		return candidate, nil
	}

	// The key landed in the primary between lookup and insert. Cannot happen
	// under the single-owner contract, but a reentrant factory could do it;
	// the candidate is redundant and the cached value wins.
	if c.keysEqual(c.primary.key, key) {
		c.evict(candidate)
		return c.primary.value, nil
	}

	if c.secondary == nil {
		if c.secondaryCap == 0 {
			// The hot slot is the entire cache.
			old := c.primary.value
			c.primary = &slot[K, V]{key: key, value: candidate}
			c.evict(old)
			return candidate, nil
		}
		c.secondary = make([]*slot[K, V], c.secondaryCap)
		c.secondary[0] = &slot[K, V]{key: key, value: candidate}
		return candidate, nil
	}

	// Redundant build against an existing ring entry: no rotation.
	for _, s := range c.secondary {
		if s == nil {
			break
		}
		if c.keysEqual(s.key, key) {
			c.evict(candidate)
			return s.value, nil
		}
	}

	// Genuine new key: rotate the ring. The replacement slice is built first
	// so no partially shifted state is ever observable, then bookkeeping is
	// swapped before the eviction callback runs.
	next := make([]*slot[K, V], c.secondaryCap)
	next[0] = &slot[K, V]{key: key, value: candidate}
	copy(next[1:], c.secondary[:c.secondaryCap-1])
	dropped := c.secondary[c.secondaryCap-1]
	c.secondary = next
	if dropped != nil {
		c.evict(dropped.value)
	}
	return candidate, nil
}

// Clear evicts every cached value and returns the cache to its
// just-constructed state. The primary value (if any) is evicted first, then
// each populated ring slot front to back; unpopulated slots are skipped, so
// the eviction callback never receives a value the cache did not hold. The
// ring storage is discarded and reallocated on the next insert that needs it.
func (c *TwoLevelCache[K, V]) Clear() {
	evicted := make([]V, 0, c.Len())
	if c.primary != nil {
		evicted = append(evicted, c.primary.value)
	}
	for _, s := range c.secondary {
		if s == nil {
			break
		}
		evicted = append(evicted, s.value)
	}

	c.primary = nil
	c.secondary = nil

	for _, v := range evicted {
		c.evict(v)
	}
}

// Len returns the number of populated entries.
func (c *TwoLevelCache[K, V]) Len() int {
	n := 0
	if c.primary != nil {
		n++
	}
	for _, s := range c.secondary {
		if s == nil {
			break
		}
		n++
	}
	return n
}

// Capacity returns the total capacity, 1 + the secondary ring capacity.
func (c *TwoLevelCache[K, V]) Capacity() int {
	return 1 + c.secondaryCap
}

// keysEqual applies the configured comparer, defaulting to ==.
func (c *TwoLevelCache[K, V]) keysEqual(a, b K) bool {
	if c.keyEqual != nil {
		return c.keyEqual(a, b)
	}
	return a == b
}

// evict hands a displaced value to the eviction callback. Without a callback
// the value is simply dropped and the garbage collector reclaims it.
func (c *TwoLevelCache[K, V]) evict(v V) {
	if c.onEvict != nil {
		c.onEvict(v)
	}
}
