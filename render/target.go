// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"

	"github.com/gogpu/gputypes"
)

// Target errors.
var (
	// ErrInvalidTargetSize is returned when a target dimension is not positive.
	ErrInvalidTargetSize = errors.New("render: target dimensions must be positive")

	// ErrUnsupportedFormat is returned for texture formats without a CPU layout.
	ErrUnsupportedFormat = errors.New("render: unsupported texture format")
)

// Target is a rendering destination with deterministic release.
//
// A Target may hold pixel memory sized for GPU upload, so displaced targets
// must go through Release rather than waiting for the garbage collector.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data, 4 bytes per pixel.
	// Returns nil after Release.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int

	// Release frees the target's pixel memory. The target is unusable
	// afterwards; Release is idempotent.
	Release()
}

// PixmapTarget is a CPU-backed render target using *image.RGBA.
//
// It is the destination glyphs are rasterized into before texture upload:
// cheap to read back, sized for upload, released explicitly when displaced.
type PixmapTarget struct {
	img    *image.RGBA
	format gputypes.TextureFormat
}

// NewPixmapTarget creates a CPU-backed target. Only the RGBA8 and BGRA8
// unorm formats have a CPU pixel layout; other formats return
// ErrUnsupportedFormat.
func NewPixmapTarget(width, height int, format gputypes.TextureFormat) (*PixmapTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidTargetSize
	}
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
	default:
		return nil, ErrUnsupportedFormat
	}
	return &PixmapTarget{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		format: format,
	}, nil
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	if t.img == nil {
		return 0
	}
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	if t.img == nil {
		return 0
	}
	return t.img.Bounds().Dy()
}

// Format returns the pixel format of the target.
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return t.format
}

// Pixels returns the raw pixel buffer, or nil after Release.
func (t *PixmapTarget) Pixels() []byte {
	if t.img == nil {
		return nil
	}
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	if t.img == nil {
		return 0
	}
	return t.img.Stride
}

// Image returns the backing image for direct drawing, or nil after Release.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// SizeBytes returns the pixel memory held by the target.
func (t *PixmapTarget) SizeBytes() int64 {
	if t.img == nil {
		return 0
	}
	return int64(len(t.img.Pix))
}

// Release frees the pixel memory. Idempotent.
func (t *PixmapTarget) Release() {
	t.img = nil
}

// Released reports whether Release has been called.
func (t *PixmapTarget) Released() bool {
	return t.img == nil
}
