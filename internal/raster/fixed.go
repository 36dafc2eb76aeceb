// Package raster implements scanline polygon filling with sub-scanline
// vertical supersampling and fixed-point horizontal coverage, the way a
// software SVG rasterizer resolves anti-aliasing without a full
// analytic-coverage accumulator.
package raster

// Sub is the number of vertical sub-scanlines sampled per output pixel
// row. Horizontal coverage within each sub-scanline is exact (fixed-point
// fractional pixel position); only the vertical axis is supersampled.
const Sub = 5

// fixShift and fix define the Q22.10 fixed-point format used for active
// edge X positions: fix is one whole pixel, fixShift converts between
// fixed-point and integer pixel columns.
const (
	fixShift = 10
	fix      = 1 << fixShift
	fixMask  = fix - 1
)
