package mazefile

import "errors"

var (
	// ErrBadHeader indicates missing or non-positive grid dimensions.
	ErrBadHeader = errors.New("mazefile: bad header")
	// ErrTruncated indicates the input ended before every cell was read.
	ErrTruncated = errors.New("mazefile: truncated cell data")
	// ErrUnknownCode indicates a numeric cell code with no terrain.
	ErrUnknownCode = errors.New("mazefile: unknown cell code")
	// ErrUnknownGlyph indicates a layout rune absent from the legend.
	ErrUnknownGlyph = errors.New("mazefile: unknown glyph")
	// ErrNilGrid indicates a writer was handed a nil grid.
	ErrNilGrid = errors.New("mazefile: grid is nil")
)
