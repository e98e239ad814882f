package glyphcache

// Option configures a TwoLevelCache during creation.
type Option[K comparable, V any] func(*TwoLevelCache[K, V])

// WithEvict sets the eviction callback. The callback is invoked exactly once
// for every value permanently displaced from the cache (ring rotation, direct
// replacement, redundant factory result, or Clear) and becomes the sole owner
// of the value; use it to release native or pooled resources
// deterministically.
//
// The callback runs after the cache's own bookkeeping is updated, so a
// callback failure cannot leave the cache inconsistent. It must not call
// back into the same cache.
func WithEvict[K comparable, V any](onEvict func(V)) Option[K, V] {
	return func(c *TwoLevelCache[K, V]) {
		c.onEvict = onEvict
	}
}

// WithKeyComparer overrides the key equality relation used by Lookup and
// GetOrAdd. The default is the natural == comparison.
//
// Example:
//
//	// Case-insensitive font family keys:
//	c, _ := glyphcache.New[string, *Handle](2,
//	    glyphcache.WithKeyComparer[string, *Handle](strings.EqualFold))
func WithKeyComparer[K comparable, V any](equal func(K, K) bool) Option[K, V] {
	return func(c *TwoLevelCache[K, V]) {
		c.keyEqual = equal
	}
}
