package svgraster

import "testing"

func TestWithFlattenToleranceSetsOption(t *testing.T) {
	r := NewRasterizer(WithFlattenTolerance(0.5))
	if r.opt.flattenTolerance != 0.5 {
		t.Errorf("flattenTolerance = %v, want 0.5", r.opt.flattenTolerance)
	}
}

func TestWithFlattenToleranceIgnoresNonPositive(t *testing.T) {
	r := NewRasterizer(WithFlattenTolerance(-1))
	if r.opt.flattenTolerance != 0 {
		t.Errorf("flattenTolerance = %v, want 0 (default, non-positive override ignored)", r.opt.flattenTolerance)
	}
}

func TestRasterizeImageFillsRect(t *testing.T) {
	img := Parse([]byte(`<svg width="20" height="20"><rect x="0" y="0" width="20" height="20" fill="#00ff00"/></svg>`))
	pix, stride := RasterizeImage(img, 20, 20)
	center := 10*stride + 10*4
	if pix[center+3] != 255 {
		t.Errorf("center alpha = %d, want 255", pix[center+3])
	}
	if pix[center+1] != 255 {
		t.Errorf("center G = %d, want 255", pix[center+1])
	}
}

// TestRasterizeImageWithFlattenToleranceProducesConsistentFill checks that
// a custom flatten tolerance still reaches internal/raster's Rasterize and
// yields the same filled-region result for a simple axis-aligned shape
// (the geometry here has no curves to subdivide differently, so this
// mainly guards against the option wiring breaking the call entirely).
func TestRasterizeImageWithFlattenToleranceProducesConsistentFill(t *testing.T) {
	img := Parse([]byte(`<svg width="20" height="20"><rect x="0" y="0" width="20" height="20" fill="#00ff00"/></svg>`))
	pix, stride := RasterizeImage(img, 20, 20, WithFlattenTolerance(0.01))
	center := 10*stride + 10*4
	if pix[center+3] != 255 {
		t.Errorf("center alpha = %d, want 255", pix[center+3])
	}
}
