package svgraster

// Path is a single contiguous poly-Bézier contour in absolute,
// already-transformed user-space coordinates.
//
// Points holds 1+3k control points: a leading on-curve point followed by
// triples of (control, control, on-curve) for each cubic Bézier segment.
// A Path with fewer than 4 points (npts == 1) is a degenerate single point
// and contributes no edges to rasterization.
type Path struct {
	Points []Point
	Closed bool
}

// NumSegments returns the number of cubic Bézier segments in the path.
func (p *Path) NumSegments() int {
	if len(p.Points) < 4 {
		return 0
	}
	return (len(p.Points) - 1) / 3
}

// Shape is one fillable/strokeable element: a <path>, <rect>, <circle>,
// and so on, reduced to its paths plus its committed paint state.
//
// Color channels are packed RGB until commit, at which point the alpha
// channel is folded in from the corresponding opacity (see [opacityToAlpha]).
type Shape struct {
	Paths []Path

	FillColor   Color
	StrokeColor Color
	StrokeWidth float64

	HasFill   bool
	HasStroke bool
	Visible   bool
}

// Image is the result of parsing an SVG document: its declared pixel
// dimensions and the flattened-to-paths shapes, stored in reverse
// document order (Shapes[0] is the last shape in the document).
// Rasterization composites shapes in slice order, so a shape that comes
// earlier in the document is painted over the shapes after it.
type Image struct {
	// Width and Height are the document's nominal size in pixels, or -1
	// if the root <svg> element omitted the corresponding attribute.
	Width  float64
	Height float64

	// WidthUnit and HeightUnit are the unit suffixes ("px", "pt", "em",
	// ...) as written in the document. They are opaque to parsing and
	// rasterization and are preserved only for the caller's benefit.
	WidthUnit  string
	HeightUnit string

	Shapes []Shape
}
