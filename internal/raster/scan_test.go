package raster

import "testing"

func TestRasterizeSortedEdgesFillsSquare(t *testing.T) {
	// A 10x10 axis-aligned square at (2,2)-(12,12) in a 16x16 image,
	// scaled by Sub for the sub-scanline Y convention Rasterize applies.
	edges := []Edge{
		{X0: 2, Y0: 2 * Sub, X1: 2, Y1: 12 * Sub, Dir: 1},
		{X0: 12, Y0: 2 * Sub, X1: 12, Y1: 12 * Sub, Dir: -1},
	}
	sortEdgesByY0(edges)

	w, h := 16, 16
	stride := w * 4
	dst := make([]byte, h*stride)
	var pool activePool
	scanline := make([]uint8, w)

	rasterizeSortedEdges(edges, 0xff0000ff, dst, w, h, stride, &pool, scanline)

	// Interior pixel should be fully opaque red (premultiplied: A=255).
	px := (6*stride + 6*4)
	if dst[px+3] != 255 {
		t.Errorf("interior pixel alpha = %d, want 255", dst[px+3])
	}
	// Outside the square should remain untouched (A=0).
	px = (0*stride + 0*4)
	if dst[px+3] != 0 {
		t.Errorf("exterior pixel alpha = %d, want 0", dst[px+3])
	}
}

func TestBlendScanlineSolidSourceOver(t *testing.T) {
	dst := []byte{10, 20, 30, 40}
	cover := []uint8{255}
	// Opaque red fully covering: result should be pure red, fully opaque.
	blendScanlineSolid(dst, 1, cover, 0xff0000ff)
	if dst[0] != 255 || dst[3] != 255 {
		t.Errorf("dst = %v, want fully opaque red", dst)
	}
}

func TestFillActiveEdgesNonZeroWinding(t *testing.T) {
	scanline := make([]uint8, 20)
	// Two edges of opposite Dir at x=5 and x=15 in fixed point: the
	// winding count goes 0 -> 1 -> 0, so a non-zero winding fill should
	// cover [5,15) at full weight.
	e2 := &activeEdge{x: 15 * fix, dir: -1}
	e1 := &activeEdge{x: 5 * fix, dir: 1, next: e2}
	xmin, xmax := len(scanline), 0
	fillActiveEdges(scanline, len(scanline), e1, 255/Sub, &xmin, &xmax)

	for x := 6; x < 15; x++ {
		if scanline[x] == 0 {
			t.Errorf("scanline[%d] = 0, want full coverage inside the span", x)
		}
	}
	if scanline[0] != 0 || scanline[19] != 0 {
		t.Error("coverage leaked outside the [5,15) span")
	}
}
