package svgraster

import "testing"

func collectPaths(d string) []Path {
	var paths []Path
	parsePathData(d, Identity(), func(p Path) { paths = append(paths, p) })
	return paths
}

func TestParsePathDataSimpleLine(t *testing.T) {
	paths := collectPaths("M0 0L10 10")
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d, want 1", len(paths))
	}
	p := paths[0]
	if got := p.NumSegments(); got != 1 {
		t.Fatalf("NumSegments() = %d, want 1", got)
	}
	if !pointsClose(p.Points[0], Pt(0, 0)) || !pointsClose(p.Points[3], Pt(10, 10)) {
		t.Errorf("endpoints = %v, %v, want (0,0) and (10,10)", p.Points[0], p.Points[3])
	}
}

func TestParsePathDataClosePath(t *testing.T) {
	paths := collectPaths("M0 0L10 0L10 10Z")
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d, want 1", len(paths))
	}
	if !paths[0].Closed {
		t.Error("path should be Closed after a Z command")
	}
	last := paths[0].Points[len(paths[0].Points)-1]
	if !pointsClose(last, Pt(0, 0)) {
		t.Errorf("closing the path should return to the start point, got %v", last)
	}
}

// TestParsePathDataMoveToFallthroughIsLineTo grounds the resolved M/m
// fallthrough ambiguity: "M0 0 10 0 10 10" is one moveTo followed by
// two implicit lineTos, not three independent moveTos.
func TestParsePathDataMoveToFallthroughIsLineTo(t *testing.T) {
	paths := collectPaths("M0 0 10 0 10 10")
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d, want 1 (implicit lineTos stay in the same subpath)", len(paths))
	}
	if got := paths[0].NumSegments(); got != 2 {
		t.Fatalf("NumSegments() = %d, want 2", got)
	}
}

func TestParsePathDataMultipleSubpaths(t *testing.T) {
	paths := collectPaths("M0 0L10 10 M20 20L30 30")
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2", len(paths))
	}
}

// TestParsePathDataRelativeMoveResetsToOrigin grounds the literal (not
// one of the documented ambiguities, so kept as-is) source behavior
// where a bare M/m token resets the current point to (0,0) before
// applying its own coordinates, rather than continuing from wherever
// the previous subpath ended.
func TestParsePathDataRelativeMoveResetsToOrigin(t *testing.T) {
	paths := collectPaths("M50 50L60 60 m5 5L0 0")
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2", len(paths))
	}
	start := paths[1].Points[0]
	if !pointsClose(start, Pt(5, 5)) {
		t.Errorf("relative moveto start = %v, want (5,5) (relative to reset origin, not (60,60))", start)
	}
}

func TestParsePathDataQuadToShorthand(t *testing.T) {
	paths := collectPaths("M0 0Q50 100 100 0T200 0")
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d, want 1", len(paths))
	}
	if got := paths[0].NumSegments(); got != 2 {
		t.Fatalf("NumSegments() = %d, want 2 (one Q, one T)", got)
	}
	end := paths[0].Points[len(paths[0].Points)-1]
	if !pointsClose(end, Pt(200, 0)) {
		t.Errorf("final point = %v, want (200,0)", end)
	}
}

func TestParsePathDataCubicShorthand(t *testing.T) {
	paths := collectPaths("M0 0C0 50 50 50 50 0S100 -50 100 0")
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d, want 1", len(paths))
	}
	if got := paths[0].NumSegments(); got != 2 {
		t.Fatalf("NumSegments() = %d, want 2 (one C, one S)", got)
	}
}

func TestParsePathDataAppliesTransform(t *testing.T) {
	var paths []Path
	xform := Translate(100, 0)
	parsePathData("M0 0L10 0", xform, func(p Path) { paths = append(paths, p) })
	if !pointsClose(paths[0].Points[0], Pt(100, 0)) {
		t.Errorf("transformed start = %v, want (100,0)", paths[0].Points[0])
	}
}

func TestNextPathItemStickyNumbers(t *testing.T) {
	tok, next := nextPathItem("10-20", 0)
	if tok != "10" {
		t.Errorf("nextPathItem = %q, want %q", tok, "10")
	}
	tok2, _ := nextPathItem("10-20", next)
	if tok2 != "-20" {
		t.Errorf("second token = %q, want %q", tok2, "-20")
	}
}
