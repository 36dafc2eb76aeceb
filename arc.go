package svgraster

import "math"

// arcTo converts an SVG elliptical-arc path command into cubic Bézier
// segments appended to b, using the center parameterization from the
// SVG 1.1 implementation notes
// (https://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes).
//
// args are (rx, ry, xAxisRotationDegrees, largeArcFlag, sweepFlag, x, y);
// rel selects whether the endpoint is relative to (cpx,cpy). Returns the
// new current point.
func arcTo(b *pathBuilder, cpx, cpy, rxArg, ryArg, rotDeg, largeArcArg, sweepArg, xArg, yArg float64, rel bool) (float64, float64) {
	rx := math.Abs(rxArg)
	ry := math.Abs(ryArg)
	rotx := rotDeg / 180 * math.Pi
	largeArc := math.Abs(largeArcArg) > 1e-6
	sweep := math.Abs(sweepArg) > 1e-6

	x1, y1 := cpx, cpy
	var x2, y2 float64
	if rel {
		x2, y2 = cpx+xArg, cpy+yArg
	} else {
		x2, y2 = xArg, yArg
	}

	dx := x1 - x2
	dy := y1 - y2
	d := math.Hypot(dx, dy)
	if d < 1e-6 || rx < 1e-6 || ry < 1e-6 {
		// Degenerates to a straight line.
		b.lineTo(x2, y2)
		return x2, y2
	}

	sinrx := math.Sin(rotx)
	cosrx := math.Cos(rotx)

	// 1) Compute (x1', y1').
	x1p := cosrx*dx/2 + sinrx*dy/2
	y1p := -sinrx*dx/2 + cosrx*dy/2
	dRatio := sqr(x1p)/sqr(rx) + sqr(y1p)/sqr(ry)
	if dRatio > 1 {
		scale := math.Sqrt(dRatio)
		rx *= scale
		ry *= scale
	}

	// 2) Compute (cx', cy').
	sa := sqr(rx)*sqr(ry) - sqr(rx)*sqr(y1p) - sqr(ry)*sqr(x1p)
	sb := sqr(rx)*sqr(y1p) + sqr(ry)*sqr(x1p)
	if sa < 0 {
		sa = 0
	}
	s := 0.0
	if sb > 0 {
		s = math.Sqrt(sa / sb)
	}
	if largeArc == sweep {
		s = -s
	}
	cxp := s * rx * y1p / ry
	cyp := s * -ry * x1p / rx

	// 3) Compute (cx, cy) from (cx', cy').
	cx := (x1+x2)/2 + cosrx*cxp - sinrx*cyp
	cy := (y1+y2)/2 + sinrx*cxp + cosrx*cyp

	// 4) Compute theta1 and delta-theta.
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := (-x1p - cxp) / rx
	vy := (-y1p - cyp) / ry
	a1 := vecAngle(1, 0, ux, uy)
	da := vecAngle(ux, uy, vx, vy)

	if largeArc {
		if da > 0 {
			da -= 2 * math.Pi
		} else {
			da = 2*math.Pi + da
		}
	}

	// t is the rotation+translation that maps the unit circle in arc-local
	// space to the ellipse's actual position and orientation.
	t := Matrix{A: cosrx, D: sinrx, B: -sinrx, E: cosrx, C: cx, F: cy}

	ndivs := int(math.Abs(da)/(math.Pi*0.5) + 0.5)
	if ndivs < 1 {
		ndivs = 1
	}
	hda := (da / float64(ndivs)) / 2
	kappa := math.Abs(4.0 / 3.0 * (1 - math.Cos(hda)) / math.Sin(hda))
	if da < 0 {
		kappa = -kappa
	}

	var px, py, ptanx, ptany float64
	for i := 0; i <= ndivs; i++ {
		a := a1 + da*(float64(i)/float64(ndivs))
		ca := math.Cos(a)
		sa := math.Sin(a)
		pt := t.TransformPoint(Pt(ca*rx, sa*ry))
		tan := t.TransformVector(Pt(-sa*rx*kappa, ca*ry*kappa))
		if i > 0 {
			b.cubicBezTo(px+ptanx, py+ptany, pt.X-tan.X, pt.Y-tan.Y, pt.X, pt.Y)
		}
		px, py = pt.X, pt.Y
		ptanx, ptany = tan.X, tan.Y
	}

	return x2, y2
}

func sqr(x float64) float64 { return x * x }

func vecAngle(ux, uy, vx, vy float64) float64 {
	r := (ux*vx + uy*vy) / (math.Hypot(ux, uy) * math.Hypot(vx, vy))
	if r < -1 {
		r = -1
	}
	if r > 1 {
		r = 1
	}
	sign := 1.0
	if ux*vy < uy*vx {
		sign = -1
	}
	return sign * math.Acos(r)
}
