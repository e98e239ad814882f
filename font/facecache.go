package font

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphcache"
)

// FaceKey uniquely identifies a sized face in the cache.
type FaceKey struct {
	// FontID is the Source's process-unique identifier.
	FontID uint64

	// Size is the face size in 26.6 fixed point, so fractional sizes key
	// distinctly without float comparison in the key.
	Size fixed.Int26_6
}

// CacheConfig holds configuration for FaceCache.
type CacheConfig struct {
	// RecentFaces is the number of faces kept besides the hot one.
	// Default: 2
	RecentFaces int
}

// DefaultCacheConfig returns the default cache configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{RecentFaces: 2}
}

// CacheStats holds face cache counters.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// FaceCache memoizes sized faces with a two-level layout: the first face
// requested stays in the hot slot (typically the document's body font), and
// up to RecentFaces alternates rotate through a most-recently-inserted ring.
// Displaced faces are released immediately.
//
// FaceCache is single-owner, like the cache it wraps; one text-layout
// goroutine owns it for its lifetime.
type FaceCache struct {
	cache *glyphcache.TwoLevelCache[FaceKey, *Face]
	stats CacheStats
}

// NewFaceCache creates a face cache. A non-positive RecentFaces falls back
// to the default.
func NewFaceCache(config CacheConfig) *FaceCache {
	if config.RecentFaces <= 0 {
		config.RecentFaces = DefaultCacheConfig().RecentFaces
	}

	fc := &FaceCache{}
	cache, err := glyphcache.New[FaceKey, *Face](config.RecentFaces,
		glyphcache.WithEvict[FaceKey, *Face](func(f *Face) {
			fc.stats.Evictions++
			f.Release()
		}))
	if err != nil {
		// Unreachable: RecentFaces is normalized above.
		panic(err)
	}
	fc.cache = cache
	return fc
}

// Get returns the cached face for source at size, minting it on first use.
// The returned face is owned by the cache; callers must not release it.
func (c *FaceCache) Get(source *Source, size float64) (*Face, error) {
	key := FaceKey{FontID: source.ID(), Size: floatToFixed(size)}

	if f, ok := c.cache.Lookup(key); ok {
		c.stats.Hits++
		return f, nil
	}

	f, err := c.cache.GetOrAdd(key, func(FaceKey) (*Face, error) {
		return source.NewFace(size)
	})
	if err != nil {
		return nil, err
	}

	// Failed mints install nothing, so they do not count as misses either;
	// Hits+Misses always equals the number of faces handed out.
	c.stats.Misses++
	return f, nil
}

// Lookup returns the cached face without minting a missing one.
func (c *FaceCache) Lookup(source *Source, size float64) (*Face, bool) {
	return c.cache.Lookup(FaceKey{FontID: source.ID(), Size: floatToFixed(size)})
}

// Clear releases every cached face and resets the cache to empty. Counters
// are kept.
func (c *FaceCache) Clear() {
	c.cache.Clear()
}

// Len returns the number of cached faces.
func (c *FaceCache) Len() int {
	return c.cache.Len()
}

// Stats returns the cache counters.
func (c *FaceCache) Stats() CacheStats {
	return c.stats
}
