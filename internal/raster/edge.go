package raster

import "math"

// Point is a 2D point of a path passed to FlattenPath, in the caller's
// user-space coordinates; Rasterize scales and translates the resulting
// edges into device pixels afterward.
type Point struct {
	X, Y float64
}

// Edge is one non-horizontal segment of a flattened path, already
// normalized so Y0 <= Y1. Dir records the original winding direction
// (+1 if the segment originally ran top-to-bottom, -1 if it was
// flipped to normalize it) for the non-zero winding rule.
type Edge struct {
	X0, Y0, X1, Y1 float64
	Dir            int
}

// addEdge appends a new Edge to edges for the segment (x0,y0)-(x1,y1),
// normalizing direction. Horizontal segments contribute no coverage and
// are skipped entirely, matching the scanline algorithm's requirement
// that every edge have a well-defined Y extent.
func addEdge(edges []Edge, x0, y0, x1, y1 float64) []Edge {
	if y0 == y1 {
		return edges
	}
	if y0 < y1 {
		return append(edges, Edge{X0: x0, Y0: y0, X1: x1, Y1: y1, Dir: 1})
	}
	return append(edges, Edge{X0: x1, Y0: y1, X1: x0, Y1: y0, Dir: -1})
}

// activeEdge is one edge currently intersecting the scanline being swept,
// tracked in Q22.10 fixed point for its X position and per-sub-scanline
// step, matching the stb_truetype-derived active-edge-list technique.
type activeEdge struct {
	x, dx int32
	ey    float64
	dir   int
	next  *activeEdge
}

// activePool is a bump allocator with a freelist for activeEdge nodes,
// reused across scanlines within a single shape's rasterization to avoid
// a per-edge heap allocation.
type activePool struct {
	free  *activeEdge
	nodes []activeEdge
	used  int
}

func (p *activePool) reset() {
	p.free = nil
	p.used = 0
}

func (p *activePool) alloc() *activeEdge {
	if p.free != nil {
		z := p.free
		p.free = z.next
		*z = activeEdge{}
		return z
	}
	if p.used >= len(p.nodes) {
		grow := 64
		if len(p.nodes) > 0 {
			grow = len(p.nodes)
		}
		newNodes := make([]activeEdge, len(p.nodes)+grow)
		copy(newNodes, p.nodes)
		p.nodes = newNodes
	}
	z := &p.nodes[p.used]
	p.used++
	return z
}

func (p *activePool) release(z *activeEdge) {
	z.next = p.free
	p.free = z
}

// newActive builds an activeEdge for e, computing its fixed-point X
// position at startY (the first sub-scanline center this edge is active
// for) and its fixed-point per-scanline X step, rounded toward zero so
// repeated stepping never overshoots the true intersection.
func (p *activePool) newActive(e Edge, startY float64) *activeEdge {
	z := p.alloc()
	dxdy := (e.X1 - e.X0) / (e.Y1 - e.Y0)
	if dxdy < 0 {
		z.dx = -floorF(fix * -dxdy)
	} else {
		z.dx = floorF(fix * dxdy)
	}
	z.x = floorF(fix * (e.X0 + dxdy*(startY-e.Y0)))
	z.ey = e.Y1
	z.dir = e.Dir
	return z
}

func floorF(v float64) int32 {
	return int32(math.Floor(v))
}
