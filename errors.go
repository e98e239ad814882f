package glyphcache

import "errors"

// ErrNegativeCapacity is returned by New when the secondary ring capacity is
// negative.
var ErrNegativeCapacity = errors.New("glyphcache: secondary capacity must be non-negative")
