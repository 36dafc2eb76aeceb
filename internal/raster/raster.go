package raster

// PathInput is one contiguous poly-Bézier subpath. Points are in the
// shape's own user-space coordinates (after the shape's document
// transform is baked in, before the viewport tx/ty/scale passed to
// Rasterize); they are flattened at that scale and only scaled and
// translated into device pixels afterward, so curve flattening gets a
// tolerance relative to the curve's own geometry rather than a
// post-scale constant.
type PathInput struct {
	Points []Point
	Closed bool
}

// ShapeInput is one fillable shape: a set of subpaths sharing a single
// winding fill, plus the straight (non-premultiplied) RGBA color (R,G,B,A
// packed little-endian in bytes 0..3) it is filled with; the compositor
// premultiplies it by coverage and alpha.
type ShapeInput struct {
	Paths     []PathInput
	FillColor uint32
}

// Buffers holds the scratch state reused across Rasterize calls so a
// caller rasterizing many images, or the same image repeatedly, avoids
// reallocating the active-edge pool and edge/scanline slices each time.
type Buffers struct {
	pool     activePool
	edges    []Edge
	scanline []uint8
}

// Rasterize fills shapes into dst, an RGBA byte buffer w*h pixels with
// the given stride (bytes per row, >= w*4). shapes are rasterized in
// slice order with non-zero winding fill and premultiplied source-over
// compositing; dst is assumed already zeroed (or pre-populated with a
// premultiplied background the caller wants shapes composited onto).
// tx, ty and scale place the document's user-space coordinates onto the
// device pixel grid: device = (user*scale)+t for each axis. tol is the
// curve-flattening tolerance to use; a value <= 0 selects the default
// tol = 2.0/scale.
func Rasterize(shapes []ShapeInput, tx, ty, scale, tol float64, dst []byte, w, h, stride int, buf *Buffers) {
	if buf.scanline == nil || len(buf.scanline) < w {
		buf.scanline = make([]uint8, w)
	}
	if tol <= 0 {
		tol = FlattenTolerance(scale)
	}

	for _, shape := range shapes {
		buf.pool.reset()
		buf.edges = buf.edges[:0]

		// Flatten in the shape's own coordinate space first (tol already
		// compensates for the scale to follow), then scale and translate
		// the resulting edges into device space. Flattening after scaling
		// would need a different, non-constant tolerance per curve.
		for _, p := range shape.Paths {
			buf.edges = FlattenPath(p.Points, p.Closed, tol, buf.edges)
		}

		for i := range buf.edges {
			e := &buf.edges[i]
			e.X0 = tx + e.X0*scale
			e.Y0 = (ty + e.Y0*scale) * Sub
			e.X1 = tx + e.X1*scale
			e.Y1 = (ty + e.Y1*scale) * Sub
		}

		if len(buf.edges) == 0 {
			continue
		}

		sortEdgesByY0(buf.edges)
		rasterizeSortedEdges(buf.edges, shape.FillColor, dst, w, h, stride, &buf.pool, buf.scanline[:w])
	}

	Unpremultiply(dst, w, h, stride)
}
