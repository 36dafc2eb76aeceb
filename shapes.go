package svgraster

// kappa90 approximates a cubic Bézier handle length proportional to the
// radius needed to approximate a 90-degree circular arc.
const kappa90 = 0.5522847498307936

// rectPath builds a (possibly rounded) rectangle subpath. Returns false if
// the rectangle has zero width or height.
func rectPath(x, y, w, h, rx, ry float64, xform Matrix) (Path, bool) {
	if w == 0 || h == 0 {
		return Path{}, false
	}
	if rx < 0 && ry > 0 {
		rx = ry
	}
	if ry < 0 && rx > 0 {
		ry = rx
	}
	if rx < 0 {
		rx = 0
	}
	if ry < 0 {
		ry = 0
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}

	var b pathBuilder
	if rx < 0.00001 || ry < 0.0001 {
		b.moveTo(x, y)
		b.lineTo(x+w, y)
		b.lineTo(x+w, y+h)
		b.lineTo(x, y+h)
	} else {
		b.moveTo(x+rx, y)
		b.lineTo(x+w-rx, y)
		b.cubicBezTo(x+w-rx*(1-kappa90), y, x+w, y+ry*(1-kappa90), x+w, y+ry)
		b.lineTo(x+w, y+h-ry)
		b.cubicBezTo(x+w, y+h-ry*(1-kappa90), x+w-rx*(1-kappa90), y+h, x+w-rx, y+h)
		b.lineTo(x+rx, y+h)
		b.cubicBezTo(x+rx*(1-kappa90), y+h, x, y+h-ry*(1-kappa90), x, y+h-ry)
		b.lineTo(x, y+ry)
		b.cubicBezTo(x, y+ry*(1-kappa90), x+rx*(1-kappa90), y, x+rx, y)
	}
	return b.finishPath(xform, true)
}

// ellipsePath builds a 4-segment cubic-Bézier approximation of an ellipse
// (or circle, when rx == ry) centered at (cx,cy). Returns false if either
// radius is non-positive.
func ellipsePath(cx, cy, rx, ry float64, xform Matrix) (Path, bool) {
	if rx <= 0 || ry <= 0 {
		return Path{}, false
	}
	var b pathBuilder
	b.moveTo(cx+rx, cy)
	b.cubicBezTo(cx+rx, cy+ry*kappa90, cx+rx*kappa90, cy+ry, cx, cy+ry)
	b.cubicBezTo(cx-rx*kappa90, cy+ry, cx-rx, cy+ry*kappa90, cx-rx, cy)
	b.cubicBezTo(cx-rx, cy-ry*kappa90, cx-rx*kappa90, cy-ry, cx, cy-ry)
	b.cubicBezTo(cx+rx*kappa90, cy-ry, cx+rx, cy-ry*kappa90, cx+rx, cy)
	return b.finishPath(xform, true)
}

// linePath builds a single open segment from (x1,y1) to (x2,y2).
func linePath(x1, y1, x2, y2 float64, xform Matrix) (Path, bool) {
	var b pathBuilder
	b.moveTo(x1, y1)
	b.lineTo(x2, y2)
	return b.finishPath(xform, false)
}

// polyPath builds a polyline/polygon subpath from a flat list of
// coordinate pairs (x0,y0,x1,y1,...). closed selects <polygon> behavior.
func polyPath(coords []float64, closed bool, xform Matrix) (Path, bool) {
	var b pathBuilder
	for i := 0; i+1 < len(coords); i += 2 {
		if i == 0 {
			b.moveTo(coords[0], coords[1])
		} else {
			b.lineTo(coords[i], coords[i+1])
		}
	}
	return b.finishPath(xform, closed)
}
