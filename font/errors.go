package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrSourceClosed is returned when minting a face from a closed source.
	ErrSourceClosed = errors.New("font: source is closed")
)
