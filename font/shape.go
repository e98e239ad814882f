package font

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Glyph is one positioned glyph produced by shaping.
type Glyph struct {
	// GID is the glyph index within the face's font.
	GID GlyphID

	// Cluster is the rune index in the source text this glyph maps to.
	Cluster int

	// X and Y position the glyph relative to the run origin, offsets
	// included.
	X float64
	Y float64

	// XAdvance and YAdvance move the pen after this glyph; one of them is
	// zero depending on run direction.
	XAdvance float64
	YAdvance float64
}

// Shaper converts text into positioned glyphs using HarfBuzz shaping via
// go-text/typesetting. It handles kerning, ligatures, and right-to-left
// runs.
//
// Shaper is safe for concurrent use: HarfbuzzShaper instances have internal
// mutable state and are pooled per call. The faces passed in are not, so
// concurrent callers must use distinct faces.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a Shaper backed by go-text/typesetting's HarfBuzz
// implementation.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape converts text into positioned glyphs using face. Returns nil for
// empty text or a released face.
func (s *Shaper) Shape(face *Face, text string) []Glyph {
	if text == "" || face == nil || face.released {
		return nil
	}

	runes := []rune(text)
	dir := detectDirection(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face.gtFace,
		Size:      floatToFixed(face.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	return convertGlyphs(output.Glyphs, dir)
}

// Advance returns the total advance width of text in pixels when shaped
// with face.
func (s *Shaper) Advance(face *Face, text string) float64 {
	total := 0.0
	for _, g := range s.Shape(face, text) {
		total += g.XAdvance
	}
	return total
}

// detectDirection resolves the paragraph direction of text with the Unicode
// bidi algorithm, falling back to left-to-right when the text carries no
// strong direction.
func detectDirection(text string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script text, split runs by script before
// shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to fixed.Int26_6 (6 fractional bits).
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// convertGlyphs converts go-text shaping output to Glyphs, accumulating the
// pen position along the run's axis.
func convertGlyphs(glyphs []shaping.Glyph, dir di.Direction) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]Glyph, len(glyphs))

	var x, y float64
	for i, g := range glyphs {
		result[i] = Glyph{
			GID:     GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph indices are 16-bit in sfnt fonts
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       y + fixedToFloat(g.YOffset),
		}

		adv := fixedToFloat(g.Advance)
		if dir.IsVertical() {
			result[i].YAdvance = adv
			y += adv
		} else {
			result[i].XAdvance = adv
			x += adv
		}
	}
	return result
}
