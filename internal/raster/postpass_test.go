package raster

import "testing"

func TestUnpremultiplyRecoversStraightAlpha(t *testing.T) {
	// Premultiplied 50% red over nothing: R=127, A=127 -> straight R=255.
	pix := []byte{127, 0, 0, 127}
	Unpremultiply(pix, 1, 1, 4)
	if pix[0] != 255 {
		t.Errorf("unpremultiplied R = %d, want 255", pix[0])
	}
}

func TestUnpremultiplyLeavesFullyTransparentAlone(t *testing.T) {
	pix := []byte{0, 0, 0, 0}
	Unpremultiply(pix, 1, 1, 4)
	if pix[3] != 0 {
		t.Errorf("alpha = %d, want still 0", pix[3])
	}
}

func TestDefringeAveragesOpaqueNeighbors(t *testing.T) {
	// 3x1 row: opaque red, transparent, opaque blue.
	stride := 3 * 4
	pix := []byte{
		255, 0, 0, 255,
		0, 0, 0, 0,
		0, 0, 255, 255,
	}
	defringe(pix, 3, 1, stride)

	mid := pix[4:8]
	if mid[3] != 0 {
		t.Errorf("defringe should not set alpha, got %d", mid[3])
	}
	wantR, wantB := uint8(127), uint8(127)
	if mid[0] != wantR || mid[2] != wantB {
		t.Errorf("defringed color = (%d,_,%d), want averaged (%d,_,%d)", mid[0], mid[2], wantR, wantB)
	}
}

func TestDefringeLeavesIsolatedTransparentPixelBlack(t *testing.T) {
	pix := make([]byte, 4*4)
	defringe(pix, 4, 1, 16)
	for _, b := range pix {
		if b != 0 {
			t.Fatalf("isolated transparent row should stay all zero, got %v", pix)
		}
	}
}
