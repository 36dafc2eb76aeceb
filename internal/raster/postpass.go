package raster

// Unpremultiply converts an RGBA buffer built by the scanline compositor
// (premultiplied source-over blending, always composited over a fully
// transparent black background) into straight alpha, then defringes
// fully-transparent pixels by writing back the average color of their
// opaque neighbors. Premultiplied color leaks no information at alpha=0,
// so a naive unpremultiply divide-by-zero would otherwise leave those
// pixels black; averaging a hidden neighbor's color in keeps edge
// scaling/compositing from haloing.
func Unpremultiply(pix []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w*4]
		for x := 0; x < w; x++ {
			i := x * 4
			a := row[i+3]
			if a != 0 {
				r := int(row[i]) * 255 / int(a)
				g := int(row[i+1]) * 255 / int(a)
				b := int(row[i+2]) * 255 / int(a)
				row[i] = clamp255(r)
				row[i+1] = clamp255(g)
				row[i+2] = clamp255(b)
			}
		}
	}

	defringe(pix, w, h, stride)
}

func defringe(pix []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w*4]
		for x := 0; x < w; x++ {
			i := x * 4
			if row[i+3] != 0 {
				continue
			}
			var r, g, b, n int
			if x > 0 && row[i-4+3] != 0 {
				r += int(row[i-4])
				g += int(row[i-4+1])
				b += int(row[i-4+2])
				n++
			}
			if x+1 < w && row[i+4+3] != 0 {
				r += int(row[i+4])
				g += int(row[i+4+1])
				b += int(row[i+4+2])
				n++
			}
			if y > 0 {
				j := (y-1)*stride + x*4
				if pix[j+3] != 0 {
					r += int(pix[j])
					g += int(pix[j+1])
					b += int(pix[j+2])
					n++
				}
			}
			if y+1 < h {
				j := (y+1)*stride + x*4
				if pix[j+3] != 0 {
					r += int(pix[j])
					g += int(pix[j+1])
					b += int(pix[j+2])
					n++
				}
			}
			if n > 0 {
				row[i] = uint8(r / n)
				row[i+1] = uint8(g / n)
				row[i+2] = uint8(b / n)
			}
		}
	}
}

func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
