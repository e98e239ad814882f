// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render holds the render-options record shared across the visual
// tree and the CPU render targets that glyph atlases are built on.
package render

import (
	"hash"
	"hash/fnv"
)

// EdgeMode controls how shape and text edges are rasterized.
// The zero value means "unset": the option is inherited during a merge.
type EdgeMode uint8

const (
	// EdgeModeUnset defers to the inherited value.
	EdgeModeUnset EdgeMode = iota
	// EdgeModeAntialias renders smoothed edges.
	EdgeModeAntialias
	// EdgeModeAliased renders hard edges without smoothing.
	EdgeModeAliased
)

// String returns the mode name for diagnostics.
func (m EdgeMode) String() string {
	switch m {
	case EdgeModeAntialias:
		return "antialias"
	case EdgeModeAliased:
		return "aliased"
	default:
		return "unset"
	}
}

// BitmapInterpolation controls the filter used when scaling bitmaps.
// The zero value means "unset".
type BitmapInterpolation uint8

const (
	BitmapInterpolationUnset BitmapInterpolation = iota
	BitmapInterpolationLowQuality
	BitmapInterpolationMediumQuality
	BitmapInterpolationHighQuality
)

// String returns the interpolation name for diagnostics.
func (m BitmapInterpolation) String() string {
	switch m {
	case BitmapInterpolationLowQuality:
		return "low"
	case BitmapInterpolationMediumQuality:
		return "medium"
	case BitmapInterpolationHighQuality:
		return "high"
	default:
		return "unset"
	}
}

// TextRenderingMode controls glyph rasterization quality.
// The zero value means "unset".
type TextRenderingMode uint8

const (
	TextRenderingUnset TextRenderingMode = iota
	TextRenderingAntialias
	TextRenderingSubpixelAntialias
	TextRenderingAliased
)

// BitmapBlending controls how bitmaps composite onto the target.
// The zero value means "unset".
type BitmapBlending uint8

const (
	BitmapBlendingUnset BitmapBlending = iota
	BitmapBlendingSourceOver
	BitmapBlendingPlus
)

// Options is a set of rendering preferences attached to a scene node.
//
// Every field's zero value means "unset"; MergeWith fills unset fields from a
// parent, so options resolve with first-non-default-wins inheritance down the
// visual tree. Options is a small value type and is passed by value.
type Options struct {
	EdgeMode            EdgeMode
	BitmapInterpolation BitmapInterpolation
	TextRenderingMode   TextRenderingMode
	BitmapBlending      BitmapBlending

	// RequiresFullOpacity forces opacity handling through an intermediate
	// layer. Nil means unset; a pointer distinguishes an explicit false
	// from "inherit".
	RequiresFullOpacity *bool
}

// MergeWith resolves o against a parent's options: each field set on o wins,
// each unset field takes the parent's value. Neither receiver nor argument is
// modified.
func (o Options) MergeWith(parent Options) Options {
	merged := o
	if merged.EdgeMode == EdgeModeUnset {
		merged.EdgeMode = parent.EdgeMode
	}
	if merged.BitmapInterpolation == BitmapInterpolationUnset {
		merged.BitmapInterpolation = parent.BitmapInterpolation
	}
	if merged.TextRenderingMode == TextRenderingUnset {
		merged.TextRenderingMode = parent.TextRenderingMode
	}
	if merged.BitmapBlending == BitmapBlendingUnset {
		merged.BitmapBlending = parent.BitmapBlending
	}
	if merged.RequiresFullOpacity == nil {
		merged.RequiresFullOpacity = parent.RequiresFullOpacity
	}
	return merged
}

// Fingerprint returns a structural FNV-1a hash of the options, suitable as a
// cache key component: two option sets that resolve identically produce the
// same fingerprint.
func (o Options) Fingerprint() uint64 {
	h := fnv.New64a()
	hashWriteByte(h, byte(o.EdgeMode))
	hashWriteByte(h, byte(o.BitmapInterpolation))
	hashWriteByte(h, byte(o.TextRenderingMode))
	hashWriteByte(h, byte(o.BitmapBlending))

	// Encode the tri-state pointer as unset/false/true.
	switch {
	case o.RequiresFullOpacity == nil:
		hashWriteByte(h, 0)
	case !*o.RequiresFullOpacity:
		hashWriteByte(h, 1)
	default:
		hashWriteByte(h, 2)
	}
	return h.Sum64()
}

// hashWriteByte writes a single byte to the hash.
// hash.Hash.Write never returns an error.
func hashWriteByte(h hash.Hash64, b byte) {
	_, _ = h.Write([]byte{b})
}

// FullOpacity returns a pointer to b, for use as the RequiresFullOpacity
// field value.
func FullOpacity(b bool) *bool {
	return &b
}
