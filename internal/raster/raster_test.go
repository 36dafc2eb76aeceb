package raster

import "testing"

func TestRasterizeFillsAxisAlignedRect(t *testing.T) {
	// A unit square path (user space) scaled 10x onto a 20x20 canvas,
	// offset by (5,5): device rect should span (5,5)-(15,15).
	shape := ShapeInput{
		FillColor: 0xff0000ff, // opaque red: R in byte 0, A in byte 3
		Paths: []PathInput{{
			Closed: true,
			Points: []Point{
				{X: 0, Y: 0}, {X: 0.33, Y: 0}, {X: 0.67, Y: 0}, {X: 1, Y: 0},
				{X: 1, Y: 0.33}, {X: 1, Y: 0.67}, {X: 1, Y: 1},
				{X: 0.67, Y: 1}, {X: 0.33, Y: 1}, {X: 0, Y: 1},
				{X: 0, Y: 0.67}, {X: 0, Y: 0.33}, {X: 0, Y: 0},
			},
		}},
	}

	w, h := 20, 20
	stride := w * 4
	dst := make([]byte, h*stride)
	var buf Buffers

	Rasterize([]ShapeInput{shape}, 5, 5, 10, 0, dst, w, h, stride, &buf)

	inside := (10*stride + 10*4)
	if dst[inside+3] != 255 {
		t.Errorf("inside pixel alpha = %d, want 255 (opaque fill)", dst[inside+3])
	}
	if dst[inside] != 255 {
		t.Errorf("inside pixel R = %d, want 255 after unpremultiply", dst[inside])
	}

	outside := (1*stride + 1*4)
	if dst[outside+3] != 0 {
		t.Errorf("outside pixel alpha = %d, want 0", dst[outside+3])
	}
}

func TestRasterizeToleranceOverrideAffectsFlattening(t *testing.T) {
	// A single cubic Bézier segment (not colinear), so recursive
	// subdivision depth actually depends on tol.
	shape := ShapeInput{
		FillColor: 0xff0000ff,
		Paths: []PathInput{{
			Closed: true,
			Points: []Point{
				{X: 0, Y: 0}, {X: 0, Y: 50}, {X: 50, Y: 50}, {X: 50, Y: 0},
			},
		}},
	}
	w, h := 100, 100
	stride := w * 4

	var bufFine Buffers
	Rasterize([]ShapeInput{shape}, 0, 0, 1, 0.01, make([]byte, h*stride), w, h, stride, &bufFine)
	fine := len(bufFine.edges)

	var bufCoarse Buffers
	Rasterize([]ShapeInput{shape}, 0, 0, 1, 20, make([]byte, h*stride), w, h, stride, &bufCoarse)
	coarse := len(bufCoarse.edges)

	if fine <= coarse {
		t.Errorf("fine tol=0.01 produced %d edges, coarse tol=20 produced %d; want fine > coarse", fine, coarse)
	}
}

func TestRasterizeZeroToleranceFallsBackToDefault(t *testing.T) {
	shape := ShapeInput{
		FillColor: 0xff0000ff,
		Paths: []PathInput{{
			Closed: true,
			Points: []Point{
				{X: 0, Y: 0}, {X: 0, Y: 50}, {X: 50, Y: 50}, {X: 50, Y: 0},
			},
		}},
	}
	w, h := 100, 100
	stride := w * 4

	var bufZero Buffers
	Rasterize([]ShapeInput{shape}, 0, 0, 2, 0, make([]byte, h*stride), w, h, stride, &bufZero)

	var bufExplicit Buffers
	Rasterize([]ShapeInput{shape}, 0, 0, 2, FlattenTolerance(2), make([]byte, h*stride), w, h, stride, &bufExplicit)

	if len(bufZero.edges) != len(bufExplicit.edges) {
		t.Errorf("tol=0 produced %d edges, want %d (FlattenTolerance(scale) default)", len(bufZero.edges), len(bufExplicit.edges))
	}
}

func TestRasterizeEmptyShapeListLeavesZeroedBufferZero(t *testing.T) {
	w, h := 4, 4
	stride := w * 4
	dst := make([]byte, h*stride)
	var buf Buffers
	Rasterize(nil, 0, 0, 1, 0, dst, w, h, stride, &buf)
	for i, b := range dst {
		if b != 0 {
			t.Fatalf("Rasterize with no shapes over a zeroed buffer should leave it zero, dst[%d] = %d", i, b)
		}
	}
}
