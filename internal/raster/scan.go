package raster

import "sort"

// sortEdgesByY0 sorts edges by their (already normalized) starting Y,
// the order the sweep below depends on for incrementally activating
// edges as it advances downward.
func sortEdgesByY0(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Y0 < edges[j].Y0 })
}

// rasterizeSortedEdges sweeps Y-sorted edges across h pixel rows, each
// sampled at Sub sub-scanline centers, accumulating non-zero-winding
// coverage into a per-row scanline buffer and compositing it over dst
// with fillColor (premultiplied source-over, matching scanlineSolid).
func rasterizeSortedEdges(edges []Edge, fillColor uint32, dst []byte, w, h, stride int, pool *activePool, scanline []uint8) {
	var active *activeEdge
	e := 0
	maxWeight := 255 / Sub

	for y := 0; y < h; y++ {
		for i := range scanline {
			scanline[i] = 0
		}
		xmin, xmax := w, 0

		for s := 0; s < Sub; s++ {
			scany := float64(y*Sub+s) + 0.5

			// Drop edges that ended before this sub-scanline, advance the rest.
			pp := &active
			for *pp != nil {
				z := *pp
				if z.ey <= scany {
					*pp = z.next
					pool.release(z)
				} else {
					z.x += z.dx
					pp = &z.next
				}
			}

			// Bubble-sort the active list by X; it is nearly sorted already.
			for {
				changed := false
				pp = &active
				for *pp != nil && (*pp).next != nil {
					if (*pp).x > (*pp).next.x {
						t := *pp
						q := t.next
						t.next = q.next
						q.next = t
						*pp = q
						changed = true
					}
					pp = &(*pp).next
				}
				if !changed {
					break
				}
			}

			// Activate edges that start at or before this sub-scanline.
			for e < len(edges) && edges[e].Y0 <= scany {
				if edges[e].Y1 > scany {
					z := pool.newActive(edges[e], scany)
					if active == nil || z.x < active.x {
						z.next = active
						active = z
					} else {
						p := active
						for p.next != nil && p.next.x < z.x {
							p = p.next
						}
						z.next = p.next
						p.next = z
					}
				}
				e++
			}

			if active != nil {
				fillActiveEdges(scanline, w, active, maxWeight, &xmin, &xmax)
			}
		}

		if xmin < 0 {
			xmin = 0
		}
		if xmax > w-1 {
			xmax = w - 1
		}
		if xmin <= xmax {
			blendScanlineSolid(dst[y*stride+xmin*4:], xmax-xmin+1, scanline[xmin:], fillColor)
		}
	}
}

// fillActiveEdges walks the active edge list in X order, toggling a
// non-zero winding counter, and distributes antialiased coverage into
// scanline for each span where the winding count transitions to zero.
func fillActiveEdges(scanline []uint8, length int, e *activeEdge, maxWeight int, xmin, xmax *int) {
	x0 := int32(0)
	w := 0
	for e != nil {
		if w == 0 {
			x0 = e.x
			w += e.dir
		} else {
			x1 := e.x
			w += e.dir
			if w == 0 {
				i := int(x0 >> fixShift)
				j := int(x1 >> fixShift)
				if i < *xmin {
					*xmin = i
				}
				if j > *xmax {
					*xmax = j
				}
				if i < length && j >= 0 {
					if i == j {
						scanline[i] += uint8((x1 - x0) * int32(maxWeight) >> fixShift)
					} else {
						if i >= 0 {
							scanline[i] += uint8(((fix - (x0 & fixMask)) * int32(maxWeight)) >> fixShift)
						} else {
							i = -1
						}
						if j < length {
							scanline[j] += uint8(((x1 & fixMask) * int32(maxWeight)) >> fixShift)
						} else {
							j = length
						}
						for i++; i < j; i++ {
							scanline[i] += uint8(maxWeight)
						}
					}
				}
			}
		}
		e = e.next
	}
}

// blendScanlineSolid composites count pixels of fillColor over dst using
// cover as the per-pixel coverage (0-255), with premultiplied
// source-over blending in-place.
func blendScanlineSolid(dst []byte, count int, cover []uint8, color uint32) {
	cr := int(color & 0xff)
	cg := int((color >> 8) & 0xff)
	cb := int((color >> 16) & 0xff)
	ca := int((color >> 24) & 0xff)

	// div255 divides a product of two 0-255 values by 255, so that full
	// coverage of an opaque color yields exactly 255.
	div255 := func(x int) int { return ((x + 1) * 257) >> 16 }

	di := 0
	for x := 0; x < count; x++ {
		a := div255(int(cover[x]) * ca)
		ia := 255 - a

		r := div255(cr*a) + div255(ia*int(dst[di]))
		g := div255(cg*a) + div255(ia*int(dst[di+1]))
		b := div255(cb*a) + div255(ia*int(dst[di+2]))
		da := a + div255(ia*int(dst[di+3]))

		dst[di] = uint8(r)
		dst[di+1] = uint8(g)
		dst[di+2] = uint8(b)
		dst[di+3] = uint8(da)
		di += 4
	}
}
