package svgraster

// ParseOption configures the SVG parser.
// Use functional options to customize parsing behavior.
//
// Example:
//
//	img := svgraster.Parse(data, svgraster.WithExtendedColorNames())
type ParseOption func(*parseOptions)

// parseOptions holds optional configuration for parsing.
type parseOptions struct {
	extendedColorNames bool
	dpi                float64
}

// defaultParseOptions returns the default parser options.
func defaultParseOptions() parseOptions {
	return parseOptions{
		extendedColorNames: false,
		dpi: 96,
	}
}

// WithExtendedColorNames opts into resolving the full SVG 1.1 color
// keyword table (e.g. "cornflowerblue") instead of just the
// 10 core CSS/SVG color keywords.
func WithExtendedColorNames() ParseOption {
	return func(o *parseOptions) {
		o.extendedColorNames = true
	}
}

// WithDPI overrides the assumed device resolution used to resolve
// absolute-unit lengths ("in", "cm", "mm", "pt", "pc") on the root
// <svg> element. The default is 96 DPI, matching the CSS reference
// pixel convention.
func WithDPI(dpi float64) ParseOption {
	return func(o *parseOptions) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// RasterizeOption configures a Rasterizer during creation, or the
// Rasterizer that a single RasterizeImage call creates.
//
// Example:
//
//	r := svgraster.NewRasterizer(svgraster.WithFlattenTolerance(0.1))
type RasterizeOption func(*rasterizeOptions)

// rasterizeOptions holds optional configuration for rasterization.
type rasterizeOptions struct {
	flattenTolerance float64
}

// defaultRasterizeOptions returns the default rasterizer options.
func defaultRasterizeOptions() rasterizeOptions {
	return rasterizeOptions{
		flattenTolerance: 0,
	}
}

// WithFlattenTolerance overrides the curve-flattening tolerance used
// when converting cubic Bézier segments into line segments. Smaller
// values produce smoother curves at higher point-count cost. A value
// of 0 (the default) selects tol = 2.0/scale automatically, where
// scale is the combined transform scale at rasterize time.
func WithFlattenTolerance(tol float64) RasterizeOption {
	return func(o *rasterizeOptions) {
		if tol > 0 {
			o.flattenTolerance = tol
		}
	}
}
