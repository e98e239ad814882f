// Package font provides font sources, sized face handles, and a face cache
// keyed to the "one hot font plus a few recent alternates" workload.
//
// A Source owns parsed font tables and mints Face handles at concrete sizes.
// Faces are the expensive resources the cache memoizes: building one parses
// and caches glyph data, so displaced faces are released through the cache's
// eviction callback rather than left to the garbage collector.
package font

import (
	"bytes"
	"fmt"
	"os"
	"sync/atomic"

	gtfont "github.com/go-text/typesetting/font"

	"github.com/gogpu/glyphcache"
)

// nextSourceID mints process-unique source identifiers used in cache keys.
var nextSourceID atomic.Uint64

// Source represents a loaded font file. One Source can mint multiple Face
// handles at different sizes. Source is heavyweight and should be shared
// across the application.
//
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the Source itself.
	addr *Source

	// id is a process-unique identifier, stable for the source's lifetime;
	// FaceKey embeds it so cache keys stay comparable without hashing font
	// bytes.
	id uint64

	data   []byte
	parsed *gtfont.Font
	closed bool
}

// NewSource creates a Source from font data (TTF or OTF). The data slice is
// copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font data: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &Source{
		id:     nextSourceID.Add(1),
		data:   dataCopy,
		parsed: face.Font,
	}
	s.addr = s
	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewSource(data)
}

// ID returns the process-unique identifier for this source.
func (s *Source) ID() uint64 {
	s.copyCheck()
	return s.id
}

// NewFace mints a face handle at the given size in pixels. The face wraps
// its own glyph data caches, so minting is the expensive step the face cache
// exists to avoid repeating.
//
// Returns ErrSourceClosed after Close.
func (s *Source) NewFace(size float64) (*Face, error) {
	if s == nil {
		panic("font: Source is nil — did you check the error from NewSourceFromFile?")
	}
	s.copyCheck()

	if s.closed {
		return nil, ErrSourceClosed
	}

	return &Face{
		source: s,
		size:   size,
		gtFace: gtfont.NewFace(s.parsed),
	}, nil
}

// Closed reports whether Close has been called.
func (s *Source) Closed() bool {
	s.copyCheck()
	return s.closed
}

// Close releases the source's font data. Faces already minted keep their own
// reference to the parsed tables and stay usable; new faces cannot be
// minted. Idempotent.
func (s *Source) Close() error {
	s.copyCheck()

	if s.closed {
		return nil
	}
	s.closed = true
	s.data = nil
	s.parsed = nil

	glyphcache.Logger().Debug("font source closed", "font_id", s.id)
	return nil
}

// copyCheck panics if Source was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("font: Source must not be copied by value")
	}
}
