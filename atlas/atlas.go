// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package atlas caches glyph-atlas pages keyed by render options.
//
// A rendered glyph's pixels depend on the effective render options of the
// node that draws it (edge mode, text rendering mode), so each resolved
// option set gets its own atlas page. Pages are pixel buffers sized for
// texture upload and are released deterministically when displaced: one page
// for the dominant option set stays hot, a few recent alternates rotate.
package atlas

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glyphcache"
	"github.com/gogpu/glyphcache/render"
)

// Atlas errors.
var (
	// ErrInvalidPageSize is returned when a page dimension is not positive.
	ErrInvalidPageSize = errors.New("atlas: page dimensions must be positive")

	// ErrUnsupportedFormat is returned for texture formats the atlas cannot
	// lay out on the CPU.
	ErrUnsupportedFormat = errors.New("atlas: unsupported texture format")
)

// DefaultPageSize is the default page edge length in pixels.
const DefaultPageSize = 1024

// PageKey identifies an atlas page: the fingerprint of the resolved render
// options it was rasterized under, and the texture format it uploads as.
type PageKey struct {
	Options uint64
	Format  gputypes.TextureFormat
}

// Page is a single atlas page: CPU pixel storage awaiting texture upload.
type Page struct {
	width  int
	height int
	format gputypes.TextureFormat
	pix    []byte
}

// NewPage allocates a page. Alpha-only atlases use R8Unorm (one byte per
// pixel); color-emoji atlases use RGBA8/BGRA8 (four bytes per pixel). Other
// formats return ErrUnsupportedFormat.
func NewPage(width, height int, format gputypes.TextureFormat) (*Page, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidPageSize
	}
	bpp, err := bytesPerPixel(format)
	if err != nil {
		return nil, err
	}
	return &Page{
		width:  width,
		height: height,
		format: format,
		pix:    make([]byte, width*height*bpp),
	}, nil
}

// bytesPerPixel returns the CPU layout width of a texel.
func bytesPerPixel(format gputypes.TextureFormat) (int, error) {
	switch format {
	case gputypes.TextureFormatR8Unorm:
		return 1, nil
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 4, nil
	default:
		return 0, ErrUnsupportedFormat
	}
}

// Width returns the page width in pixels.
func (p *Page) Width() int { return p.width }

// Height returns the page height in pixels.
func (p *Page) Height() int { return p.height }

// Format returns the page's texture format.
func (p *Page) Format() gputypes.TextureFormat { return p.format }

// Pixels returns the raw pixel buffer, or nil after Release.
func (p *Page) Pixels() []byte { return p.pix }

// SizeBytes returns the pixel memory held by the page.
func (p *Page) SizeBytes() int64 { return int64(len(p.pix)) }

// Released reports whether Release has been called.
func (p *Page) Released() bool { return p.pix == nil }

// Release frees the page's pixel memory. Idempotent.
func (p *Page) Release() {
	p.pix = nil
}

// PageCache memoizes atlas pages per resolved render-option set. The page
// for the first option set requested (in practice the application's default
// options) stays hot; recent alternates rotate through a small ring and are
// released when displaced.
//
// PageCache is single-owner: one rasterization goroutine owns it.
type PageCache struct {
	cache    *glyphcache.TwoLevelCache[PageKey, *Page]
	pageSize int

	evictions uint64
}

// NewPageCache creates a page cache keeping recentPages alternates besides
// the hot page. Pages are square with edge length pageSize; a non-positive
// pageSize falls back to DefaultPageSize.
//
// Returns glyphcache.ErrNegativeCapacity when recentPages is negative.
func NewPageCache(recentPages, pageSize int) (*PageCache, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	pc := &PageCache{pageSize: pageSize}
	cache, err := glyphcache.New[PageKey, *Page](recentPages,
		glyphcache.WithEvict[PageKey, *Page](func(p *Page) {
			pc.evictions++
			size := p.SizeBytes()
			p.Release()
			glyphcache.Logger().Debug("atlas page evicted",
				"format", p.Format(), "bytes", size)
		}))
	if err != nil {
		return nil, err
	}
	pc.cache = cache
	return pc, nil
}

// Page returns the cached page for the given resolved options and format,
// allocating it on first use. The returned page is owned by the cache;
// callers must not release it.
func (c *PageCache) Page(opts render.Options, format gputypes.TextureFormat) (*Page, error) {
	key := PageKey{Options: opts.Fingerprint(), Format: format}
	return c.cache.GetOrAdd(key, func(PageKey) (*Page, error) {
		return NewPage(c.pageSize, c.pageSize, format)
	})
}

// Lookup returns the cached page without allocating a missing one.
func (c *PageCache) Lookup(opts render.Options, format gputypes.TextureFormat) (*Page, bool) {
	return c.cache.Lookup(PageKey{Options: opts.Fingerprint(), Format: format})
}

// Clear releases every cached page and resets the cache to empty.
func (c *PageCache) Clear() {
	c.cache.Clear()
}

// Len returns the number of cached pages.
func (c *PageCache) Len() int {
	return c.cache.Len()
}

// Evictions returns the number of pages released so far.
func (c *PageCache) Evictions() uint64 {
	return c.evictions
}
