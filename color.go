package svgraster

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a packed color value. Before a shape is committed, it holds
// only the RGB channels in its low 24 bits (R in bits 0-7, G in bits
// 8-15, B in bits 16-23); alpha is folded in from the effective opacity
// at shape-commit time. After commit, bits 24-31 hold alpha, giving the
// little-endian R,G,B,A byte layout used throughout the rasterizer.
type Color uint32

// RGB packs red, green, and blue channels into a Color with no alpha set.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16)
}

// RGBA packs all four channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

func (c Color) R() uint8 { return uint8(c) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c >> 16) }
func (c Color) A() uint8 { return uint8(c >> 24) }

// WithAlpha returns c with its alpha channel replaced, leaving RGB intact.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00ffffff | uint32(a)<<24)
}

// baseColorNames is the built-in 10-keyword table. Values match the
// original source exactly, including its non-HTML green and grey.
var baseColorNames = map[string]Color{
	"red":     RGB(255, 0, 0),
	"green":   RGB(0, 128, 0),
	"blue":    RGB(0, 0, 255),
	"yellow":  RGB(255, 255, 0),
	"cyan":    RGB(0, 255, 255),
	"magenta": RGB(255, 0, 255),
	"black":   RGB(0, 0, 0),
	"grey":    RGB(128, 128, 128),
	"gray":    RGB(128, 128, 128),
	"white":   RGB(255, 255, 255),
}

// ParseColor resolves an SVG color value — "#rgb", "#rrggbb",
// "rgb(...)", or a keyword — to its packed RGB value. Unrecognized
// input yields opaque black (the zero Color): per spec, alpha is folded
// in separately from the effective opacity, so "opaque" here only
// means "no color data recognized", not that alpha is set here.
func ParseColor(s string, extendedNames bool) Color {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseColorHex(s[1:])
	case strings.HasPrefix(s, "rgb("):
		return parseColorRGB(s)
	default:
		if c, ok := baseColorNames[s]; ok {
			return c
		}
		if extendedNames {
			if nc, ok := colornames.Map[s]; ok {
				return RGB(nc.R, nc.G, nc.B)
			}
		}
		return 0
	}
}

func parseColorHex(hex string) Color {
	var r, g, b uint32
	switch len(hex) {
	case 3:
		r = hexNibble(hex[0]) * 17
		g = hexNibble(hex[1]) * 17
		b = hexNibble(hex[2]) * 17
	case 6:
		r = hexByte(hex[0:2])
		g = hexByte(hex[2:4])
		b = hexByte(hex[4:6])
	default:
		return 0
	}
	return RGB(uint8(r), uint8(g), uint8(b))
}

func hexNibble(c byte) uint32 {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0')
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10
	}
	return 0
}

func hexByte(s string) uint32 {
	return hexNibble(s[0])*16 + hexNibble(s[1])
}

// parseColorRGB parses "rgb(r,g,b)" with either integer or percent
// components. Percent-or-not is detected uniformly from the first
// component and applied to all three, resolving the source's
// undocumented mixed-unit behavior (see DESIGN.md).
func parseColorRGB(s string) Color {
	open := strings.IndexByte(s, '(')
	close := strings.IndexByte(s, ')')
	if open < 0 || close < 0 || close < open {
		return 0
	}
	inner := s[open+1 : close]
	parts := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 3 {
		return 0
	}
	isPercent := strings.Contains(parts[0], "%")
	chans := [3]uint8{}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if isPercent {
			p = strings.TrimSuffix(p, "%")
			v, _ := strconv.ParseFloat(p, 64)
			chans[i] = clampChannel(v * 255 / 100)
		} else {
			v, _ := strconv.ParseFloat(p, 64)
			chans[i] = clampChannel(v)
		}
	}
	return RGB(chans[0], chans[1], chans[2])
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// opacityToAlpha converts an SVG opacity value in [0,1] to a byte alpha,
// per the invariant that a shape's alpha equals round(opacity*255).
func opacityToAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity*255 + 0.5)
}
