package raster

import "math"

// maxFlattenDepth bounds cubic Bézier subdivision recursion. A curve that
// still fails the flatness test at this depth is flattened anyway at
// its current subdivision rather than recursing further.
const maxFlattenDepth = 10

// FlattenTolerance computes the default flattening tolerance for a given
// combined transform scale: tighter scales (more zoomed in) need a
// proportionally smaller tolerance to keep perceived curve error constant
// in device pixels.
func FlattenTolerance(scale float64) float64 {
	if scale <= 0 {
		return 2.0
	}
	return 2.0 / scale
}

// FlattenPath converts a path's cubic Bézier points (see the Points
// invariant: one leading on-curve point then (ctrl,ctrl,on-curve)
// triples) into polygon edges, appending them to edges. Points are in
// whatever coordinate space tol was computed for; the caller scales and
// translates the resulting edges into device space afterward, since
// flattening needs a tolerance relative to the curve's own scale rather
// than a post-scale constant.
func FlattenPath(pts []Point, closed bool, tol float64, edges []Edge) []Edge {
	if len(pts) == 0 {
		return edges
	}
	px, py := pts[0].X, pts[0].Y
	startX, startY := px, py

	for i := 0; i+3 < len(pts); i += 3 {
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[i+2]
		p4 := pts[i+3]
		px, py, edges = flattenCubic(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y, p4.X, p4.Y, tol, 0, edges)
	}

	// A closed subpath (or a subpath whose fill must be closed regardless,
	// which every subpath is for this rasterizer's purposes) gets an
	// implicit edge back to its start so the polygon is never left open.
	if closed || px != startX || py != startY {
		edges = addEdge(edges, px, py, startX, startY)
	}
	return edges
}

func flattenCubic(x1, y1, x2, y2, x3, y3, x4, y4, tol float64, depth int, edges []Edge) (float64, float64, []Edge) {
	if depth > maxFlattenDepth {
		return x4, y4, addEdge(edges, x1, y1, x4, y4)
	}

	d := math.Abs(x1+x3-x2-x2) + math.Abs(y1+y3-y2-y2) +
		math.Abs(x2+x4-x3-x3) + math.Abs(y2+y4-y3-y3)
	if d < tol {
		return x4, y4, addEdge(edges, x1, y1, x4, y4)
	}

	x12 := (x1 + x2) * 0.5
	y12 := (y1 + y2) * 0.5
	x23 := (x2 + x3) * 0.5
	y23 := (y2 + y3) * 0.5
	x34 := (x3 + x4) * 0.5
	y34 := (y3 + y4) * 0.5
	x123 := (x12 + x23) * 0.5
	y123 := (y12 + y23) * 0.5
	x234 := (x23 + x34) * 0.5
	y234 := (y23 + y34) * 0.5
	x1234 := (x123 + x234) * 0.5
	y1234 := (y123 + y234) * 0.5

	px, py := x1, y1
	px, py, edges = flattenCubic(px, py, x12, y12, x123, y123, x1234, y1234, tol, depth+1, edges)
	px, py, edges = flattenCubic(px, py, x234, y234, x34, y34, x4, y4, tol, depth+1, edges)
	return px, py, edges
}
