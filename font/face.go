package font

import (
	gtfont "github.com/go-text/typesetting/font"

	"github.com/gogpu/glyphcache"
)

// Face is a font face at a specific size: the render resource the face cache
// stores and releases.
//
// A Face wraps a go-text font.Face, which carries per-face glyph caches and
// is NOT safe for concurrent use. A Face therefore follows the same
// single-owner contract as the cache that holds it.
type Face struct {
	source *Source
	size   float64
	gtFace *gtfont.Face

	released bool
}

// Source returns the Source this face was minted from.
func (f *Face) Source() *Source {
	return f.source
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Released reports whether Release has been called.
func (f *Face) Released() bool {
	return f.released
}

// Release drops the face's glyph data. A released face must not be used for
// shaping; the face cache calls Release from its eviction callback, after
// which it holds no reference to the face.
func (f *Face) Release() {
	if f.released {
		glyphcache.Logger().Warn("font face released twice",
			"font_id", f.source.id, "size", f.size)
		return
	}
	f.released = true
	f.gtFace = nil
	glyphcache.Logger().Debug("font face released",
		"font_id", f.source.id, "size", f.size)
}
