package svgraster

import "strconv"

// pathBuilder accumulates the untransformed poly-Bézier points for the
// subpath currently being built, in the same representation as the
// committed Path: a leading on-curve point, then (control, control,
// on-curve) triples.
type pathBuilder struct {
	pts []Point
}

func (b *pathBuilder) reset() {
	b.pts = b.pts[:0]
}

func (b *pathBuilder) addPoint(x, y float64) {
	b.pts = append(b.pts, Pt(x, y))
}

func (b *pathBuilder) moveTo(x, y float64) {
	b.addPoint(x, y)
}

// lineTo appends a straight segment as a degenerate cubic whose control
// points lie a third of the way along the segment, so every subpath keeps
// the uniform 1+3k point layout regardless of how its segments were
// authored.
func (b *pathBuilder) lineTo(x, y float64) {
	if len(b.pts) == 0 {
		return
	}
	last := b.pts[len(b.pts)-1]
	dx := x - last.X
	dy := y - last.Y
	b.addPoint(last.X+dx/3, last.Y+dy/3)
	b.addPoint(x-dx/3, y-dy/3)
	b.addPoint(x, y)
}

func (b *pathBuilder) cubicBezTo(cx1, cy1, cx2, cy2, x, y float64) {
	b.addPoint(cx1, cy1)
	b.addPoint(cx2, cy2)
	b.addPoint(x, y)
}

// finishPath closes (if requested) and transforms the accumulated points
// by xform, producing a committed Path. Closing adds a line back to the
// first point only when the path does not already end there. Returns
// false if there were no points to commit.
func (b *pathBuilder) finishPath(xform Matrix, closed bool) (Path, bool) {
	if len(b.pts) == 0 {
		return Path{}, false
	}
	if closed && b.pts[len(b.pts)-1] != b.pts[0] {
		b.lineTo(b.pts[0].X, b.pts[0].Y)
	}
	out := make([]Point, len(b.pts))
	for i, p := range b.pts {
		out[i] = xform.TransformPoint(p)
	}
	return Path{Points: out, Closed: closed}, true
}

// nextPathItem scans the next comma/whitespace-delimited token from an SVG
// path "d" string, starting at offset i. A token is either a signed number
// (including bare command-letter-adjacent numbers with no separator, e.g.
// "10-20") or a single command letter. Returns the token and the offset to
// resume scanning from.
func nextPathItem(s string, i int) (tok string, next int) {
	for i < len(s) && (isPathSpace(s[i]) || s[i] == ',') {
		i++
	}
	if i >= len(s) {
		return "", i
	}
	c := s[i]
	if c == '-' || c == '+' || isPathNum(c) {
		start := i
		for i < len(s) && (s[i] == '-' || s[i] == '+') {
			i++
		}
		for i < len(s) && s[i] != '-' && s[i] != '+' && isPathNum(s[i]) {
			i++
		}
		return s[start:i], i
	}
	return s[i : i+1], i + 1
}

func isPathSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isPathNum(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.', 'e', 'E':
		return true
	}
	return false
}

func argsPerCommand(cmd byte) int {
	switch cmd {
	case 'v', 'V', 'h', 'H':
		return 1
	case 'm', 'M', 'l', 'L', 't', 'T':
		return 2
	case 'q', 'Q', 's', 'S':
		return 4
	case 'c', 'C':
		return 6
	case 'a', 'A':
		return 7
	}
	return 0
}

// parsePathData parses an SVG path "d" attribute value, committing each
// resulting subpath (transformed by xform) to commit. Reflected control
// points for the "S"/"T" shorthand commands only carry over from an
// immediately preceding cubic/quadratic command of the same family; any
// other preceding command resets the reflection to the current point,
// per the SVG path grammar.
func parsePathData(d string, xform Matrix, commit func(Path)) {
	var b pathBuilder
	var cmd byte
	var rargs int
	var nargs int
	var args [10]float64
	var cpx, cpy float64
	var cpx2, cpy2 float64
	var prevCmd byte
	firstMovePair := true
	closed := false

	flush := func() {
		if p, ok := b.finishPath(xform, closed); ok {
			commit(p)
		}
		b.reset()
		closed = false
	}

	i := 0
	for i < len(d) {
		var tok string
		tok, i = nextPathItem(d, i)
		if tok == "" {
			break
		}
		c := tok[0]
		if isPathNum(c) || c == '-' || c == '+' {
			if nargs < len(args) {
				if v, err := strconv.ParseFloat(tok, 64); err == nil {
					args[nargs] = v
				}
				nargs++
			}
			if nargs >= rargs {
				switch cmd {
				case 'm', 'M':
					if cmd == 'm' {
						cpx += args[0]
						cpy += args[1]
					} else {
						cpx = args[0]
						cpy = args[1]
					}
					if firstMovePair {
						b.moveTo(cpx, cpy)
						firstMovePair = false
					} else {
						b.lineTo(cpx, cpy)
					}
				case 'l', 'L':
					if cmd == 'l' {
						cpx += args[0]
						cpy += args[1]
					} else {
						cpx = args[0]
						cpy = args[1]
					}
					b.lineTo(cpx, cpy)
				case 'h', 'H':
					if cmd == 'h' {
						cpx += args[0]
					} else {
						cpx = args[0]
					}
					b.lineTo(cpx, cpy)
				case 'v', 'V':
					if cmd == 'v' {
						cpy += args[0]
					} else {
						cpy = args[0]
					}
					b.lineTo(cpx, cpy)
				case 'c', 'C':
					var cx1, cy1, cx2, cy2, x2, y2 float64
					if cmd == 'c' {
						cx1, cy1 = cpx+args[0], cpy+args[1]
						cx2, cy2 = cpx+args[2], cpy+args[3]
						x2, y2 = cpx+args[4], cpy+args[5]
					} else {
						cx1, cy1 = args[0], args[1]
						cx2, cy2 = args[2], args[3]
						x2, y2 = args[4], args[5]
					}
					b.cubicBezTo(cx1, cy1, cx2, cy2, x2, y2)
					cpx2, cpy2 = cx2, cy2
					cpx, cpy = x2, y2
				case 's', 'S':
					var cx2, cy2, x2, y2 float64
					if cmd == 's' {
						cx2, cy2 = cpx+args[0], cpy+args[1]
						x2, y2 = cpx+args[2], cpy+args[3]
					} else {
						cx2, cy2 = args[0], args[1]
						x2, y2 = args[2], args[3]
					}
					var cx1, cy1 float64
					if prevCmd == 'c' || prevCmd == 'C' || prevCmd == 's' || prevCmd == 'S' {
						cx1, cy1 = 2*cpx-cpx2, 2*cpy-cpy2
					} else {
						cx1, cy1 = cpx, cpy
					}
					b.cubicBezTo(cx1, cy1, cx2, cy2, x2, y2)
					cpx2, cpy2 = cx2, cy2
					cpx, cpy = x2, y2
				case 'q', 'Q':
					var qx, qy, x2, y2 float64
					if cmd == 'q' {
						qx, qy = cpx+args[0], cpy+args[1]
						x2, y2 = cpx+args[2], cpy+args[3]
					} else {
						qx, qy = args[0], args[1]
						x2, y2 = args[2], args[3]
					}
					cx1 := cpx + 2.0/3.0*(qx-cpx)
					cy1 := cpy + 2.0/3.0*(qy-cpy)
					cx2 := x2 + 2.0/3.0*(qx-x2)
					cy2 := y2 + 2.0/3.0*(qy-y2)
					b.cubicBezTo(cx1, cy1, cx2, cy2, x2, y2)
					cpx2, cpy2 = qx, qy
					cpx, cpy = x2, y2
				case 't', 'T':
					var x2, y2 float64
					if cmd == 't' {
						x2, y2 = cpx+args[0], cpy+args[1]
					} else {
						x2, y2 = args[0], args[1]
					}
					var qx, qy float64
					if prevCmd == 'q' || prevCmd == 'Q' || prevCmd == 't' || prevCmd == 'T' {
						qx, qy = 2*cpx-cpx2, 2*cpy-cpy2
					} else {
						qx, qy = cpx, cpy
					}
					cx1 := cpx + 2.0/3.0*(qx-cpx)
					cy1 := cpy + 2.0/3.0*(qy-cpy)
					cx2 := x2 + 2.0/3.0*(qx-x2)
					cy2 := y2 + 2.0/3.0*(qy-y2)
					b.cubicBezTo(cx1, cy1, cx2, cy2, x2, y2)
					cpx2, cpy2 = qx, qy
					cpx, cpy = x2, y2
				case 'a', 'A':
					cpx, cpy = arcTo(&b, cpx, cpy, args[0], args[1], args[2], args[3], args[4], args[5], args[6], cmd == 'a')
				default:
					if nargs >= 2 {
						cpx, cpy = args[nargs-2], args[nargs-1]
					}
				}
				prevCmd = cmd
				nargs = 0
			}
		} else {
			switch c {
			case 'M', 'm':
				if len(b.pts) > 0 {
					flush()
				}
				nargs = 0
				cpx, cpy = 0, 0
				firstMovePair = true
			case 'Z', 'z':
				closed = true
				if len(b.pts) > 0 {
					flush()
				}
				nargs = 0
			}
			cmd = c
			rargs = argsPerCommand(cmd)
		}
	}
	if len(b.pts) > 0 {
		flush()
	}
}
