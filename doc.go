// Package glyphcache provides bounded memoization for expensive render
// resources: font faces, glyph-atlas pages, and similar handles that are
// costly to build and must be released deterministically when displaced.
//
// # Overview
//
// The core type is TwoLevelCache, a fixed-capacity, single-owner cache with
// a two-tier layout: one sticky "hot" slot plus a small most-recently-
// inserted-first ring. The layout trades a general hash map for an array
// scan because render workloads concentrate on one dominant key (the current
// font) with a handful of recent alternates, and the ring stays tiny (2-4
// entries in practice).
//
// # Quick Start
//
//	release := func(f *font.Face) { f.Release() }
//	c, err := glyphcache.New[font.FaceKey, *font.Face](2,
//	    glyphcache.WithEvict[font.FaceKey, *font.Face](release))
//	if err != nil {
//	    // handle error
//	}
//
//	face, err := c.GetOrAdd(key, buildFace)
//
// # Ownership
//
// Every value leaving the cache goes through the eviction callback exactly
// once, and a value handed back to a caller as the authoritative cached
// instance is never evicted behind the caller's back. This makes the cache
// safe to use with values holding native resources (GPU textures, parsed
// font tables): release happens in the callback, never implicitly.
//
// # Sub-packages
//
//   - font: font sources, sized face handles, and a face cache built on
//     TwoLevelCache
//   - atlas: glyph-atlas pages keyed by render-options fingerprint
//   - render: the render-options record (first-non-default-wins merge) and
//     CPU render targets
//   - scene: a minimal visual-tree node with attached render options
//
// # Thread Safety
//
// TwoLevelCache is single-owner by contract and provides no internal
// synchronization; see the type documentation.
package glyphcache
