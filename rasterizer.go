package svgraster

import "github.com/gogpu/svgraster/internal/raster"

// Rasterizer rasterizes Images into RGBA pixel buffers. It owns
// growable scratch state (an active-edge pool, an edge list, a
// per-row coverage scanline) reused across calls, so a Rasterizer
// amortizes allocation when rasterizing many images, or the same
// image at many sizes, but a single Rasterizer must not be used
// concurrently from more than one goroutine.
type Rasterizer struct {
	buf raster.Buffers
	opt rasterizeOptions
}

// NewRasterizer returns a Rasterizer ready to use.
func NewRasterizer(opts ...RasterizeOption) *Rasterizer {
	r := &Rasterizer{opt: defaultRasterizeOptions()}
	for _, opt := range opts {
		opt(&r.opt)
	}
	return r
}

// Rasterize fills img's visible, fillable shapes into dst, an RGBA byte
// buffer w*h pixels with the given stride (bytes per row, must be >=
// w*4). dst is zeroed before drawing, so callers compositing onto an
// existing scene should blit the result themselves rather than passing
// a buffer they expect to show through. tx, ty and scale map the
// image's user-space coordinates onto dst's pixel grid.
func (r *Rasterizer) Rasterize(img *Image, tx, ty, scale float64, dst []byte, w, h, stride int) {
	for i := 0; i < h; i++ {
		row := dst[i*stride : i*stride+w*4]
		for j := range row {
			row[j] = 0
		}
	}

	shapes := make([]raster.ShapeInput, 0, len(img.Shapes))
	for _, shape := range img.Shapes {
		if !shape.Visible || !shape.HasFill {
			continue
		}
		paths := make([]raster.PathInput, len(shape.Paths))
		for i, p := range shape.Paths {
			pts := make([]raster.Point, len(p.Points))
			for j, pt := range p.Points {
				pts[j] = raster.Point{X: pt.X, Y: pt.Y}
			}
			paths[i] = raster.PathInput{Points: pts, Closed: p.Closed}
		}
		shapes = append(shapes, raster.ShapeInput{
			Paths:     paths,
			FillColor: uint32(shape.FillColor),
		})
	}

	raster.Rasterize(shapes, tx, ty, scale, r.opt.flattenTolerance, dst, w, h, stride, &r.buf)
}

// RasterizeImage is a convenience wrapper around Rasterize that
// allocates a tightly-packed RGBA buffer sized w*h*4 and returns it
// alongside its stride (always w*4).
func RasterizeImage(img *Image, w, h int, opts ...RasterizeOption) (pix []byte, stride int) {
	r := NewRasterizer(opts...)
	stride = w * 4
	pix = make([]byte, h*stride)
	r.Rasterize(img, 0, 0, 1, pix, w, h, stride)
	return pix, stride
}
