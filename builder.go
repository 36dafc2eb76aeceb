package svgraster

import (
	"strconv"
	"strings"

	"github.com/gogpu/svgraster/internal/xmlscan"
)

// builder drives Image construction from a stream of xmlscan events,
// mirroring a recursive-descent SVG walk with an explicit attribute
// stack instead of the call stack.
type builder struct {
	image  *Image
	attrs  *attrStack
	pending []Path

	inDefs bool
	opts   parseOptions
}

func newBuilder(opts parseOptions) *builder {
	return &builder{
		image: &Image{Width: -1, Height: -1},
		attrs: newAttrStack(),
		opts:  opts,
	}
}

func (b *builder) StartElement(name string, attrs []xmlscan.Attr) {
	if b.inDefs {
		return
	}
	switch name {
	case "g":
		b.attrs.push()
		b.applyAttrs(attrs)
	case "path":
		b.attrs.push()
		b.buildPath(attrs)
		b.attrs.pop()
	case "rect":
		b.attrs.push()
		b.buildRect(attrs)
		b.attrs.pop()
	case "circle":
		b.attrs.push()
		b.buildCircle(attrs)
		b.attrs.pop()
	case "ellipse":
		b.attrs.push()
		b.buildEllipse(attrs)
		b.attrs.pop()
	case "line":
		b.attrs.push()
		b.buildLine(attrs)
		b.attrs.pop()
	case "polyline":
		b.attrs.push()
		b.buildPoly(attrs, false)
		b.attrs.pop()
	case "polygon":
		b.attrs.push()
		b.buildPoly(attrs, true)
		b.attrs.pop()
	case "defs":
		b.inDefs = true
	case "svg":
		b.applySVGRoot(attrs)
	}
}

func (b *builder) EndElement(name string) {
	switch name {
	case "g":
		b.attrs.pop()
	case "defs":
		b.inDefs = false
	}
}

func (b *builder) Content(string) {}

// applyAttrs applies the generic attribute table (style, display, fill,
// fill-opacity, stroke, stroke-width, stroke-opacity, transform) to the
// current top-of-stack frame, folding
// a "style" attribute's ";"-separated declarations in as if they were
// individual attributes.
func (b *builder) applyAttrs(attrs []xmlscan.Attr) {
	for _, a := range attrs {
		if a.Name == "style" {
			b.applyStyle(a.Value)
		} else {
			b.applyAttr(a.Name, a.Value)
		}
	}
}

func (b *builder) applyStyle(style string) {
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		b.applyAttr(strings.TrimSpace(name), strings.TrimSpace(value))
	}
}

// applyAttr handles the fixed recognized-attribute table. Unrecognized
// attribute names are ignored (geometry attributes like "x"/"width" are
// handled by each shape's own build function, not here).
func (b *builder) applyAttr(name, value string) bool {
	frame := b.attrs.top()
	switch name {
	case "style":
		b.applyStyle(value)
	case "display":
		frame.visible = value != "none"
	case "fill":
		if value == "none" {
			frame.hasFill = false
		} else {
			frame.hasFill = true
			frame.fillColor = ParseColor(value, b.opts.extendedColorNames)
		}
	case "fill-opacity":
		frame.fillOpacity = parseFloatLoose(value)
	case "stroke":
		if value == "none" {
			frame.hasStroke = false
		} else {
			frame.hasStroke = true
			frame.strokeColor = ParseColor(value, b.opts.extendedColorNames)
		}
	case "stroke-width":
		frame.strokeWidth = parseFloatLoose(value)
	case "stroke-opacity":
		frame.strokeOpacity = parseFloatLoose(value)
	case "transform":
		frame.xform = parseTransformList(frame.xform, value)
	default:
		return false
	}
	return true
}

func (b *builder) applySVGRoot(attrs []xmlscan.Attr) {
	for _, a := range attrs {
		if b.applyAttr(a.Name, a.Value) {
			continue
		}
		switch a.Name {
		case "width":
			b.image.Width, b.image.WidthUnit = parseLength(a.Value, b.opts.dpi)
		case "height":
			b.image.Height, b.image.HeightUnit = parseLength(a.Value, b.opts.dpi)
		}
	}
}

func (b *builder) buildPath(attrs []xmlscan.Attr) {
	d := ""
	for _, a := range attrs {
		if a.Name == "d" {
			d = a.Value
			continue
		}
		if a.Name == "style" {
			b.applyStyle(a.Value)
		} else {
			b.applyAttr(a.Name, a.Value)
		}
	}
	if d == "" {
		return
	}
	frame := b.attrs.top()
	parsePathData(d, frame.xform, func(p Path) {
		b.pending = append(b.pending, p)
	})
	b.commitShape()
}

func (b *builder) buildRect(attrs []xmlscan.Attr) {
	var x, y, w, h float64
	rx, ry := -1.0, -1.0
	for _, a := range attrs {
		if b.applyAttr(a.Name, a.Value) {
			continue
		}
		switch a.Name {
		case "x":
			x = parseFloatLoose(a.Value)
		case "y":
			y = parseFloatLoose(a.Value)
		case "width":
			w = parseFloatLoose(a.Value)
		case "height":
			h = parseFloatLoose(a.Value)
		case "rx":
			rx = absf(parseFloatLoose(a.Value))
		case "ry":
			ry = absf(parseFloatLoose(a.Value))
		}
	}
	frame := b.attrs.top()
	if p, ok := rectPath(x, y, w, h, rx, ry, frame.xform); ok {
		b.pending = append(b.pending, p)
	}
	b.commitShape()
}

func (b *builder) buildCircle(attrs []xmlscan.Attr) {
	var cx, cy, r float64
	for _, a := range attrs {
		if b.applyAttr(a.Name, a.Value) {
			continue
		}
		switch a.Name {
		case "cx":
			cx = parseFloatLoose(a.Value)
		case "cy":
			cy = parseFloatLoose(a.Value)
		case "r":
			r = absf(parseFloatLoose(a.Value))
		}
	}
	frame := b.attrs.top()
	if p, ok := ellipsePath(cx, cy, r, r, frame.xform); ok {
		b.pending = append(b.pending, p)
	}
	b.commitShape()
}

func (b *builder) buildEllipse(attrs []xmlscan.Attr) {
	var cx, cy, rx, ry float64
	for _, a := range attrs {
		if b.applyAttr(a.Name, a.Value) {
			continue
		}
		switch a.Name {
		case "cx":
			cx = parseFloatLoose(a.Value)
		case "cy":
			cy = parseFloatLoose(a.Value)
		case "rx":
			rx = absf(parseFloatLoose(a.Value))
		case "ry":
			ry = absf(parseFloatLoose(a.Value))
		}
	}
	frame := b.attrs.top()
	if p, ok := ellipsePath(cx, cy, rx, ry, frame.xform); ok {
		b.pending = append(b.pending, p)
	}
	b.commitShape()
}

func (b *builder) buildLine(attrs []xmlscan.Attr) {
	var x1, y1, x2, y2 float64
	for _, a := range attrs {
		if b.applyAttr(a.Name, a.Value) {
			continue
		}
		switch a.Name {
		case "x1":
			x1 = parseFloatLoose(a.Value)
		case "y1":
			y1 = parseFloatLoose(a.Value)
		case "x2":
			x2 = parseFloatLoose(a.Value)
		case "y2":
			y2 = parseFloatLoose(a.Value)
		}
	}
	frame := b.attrs.top()
	if p, ok := linePath(x1, y1, x2, y2, frame.xform); ok {
		b.pending = append(b.pending, p)
	}
	b.commitShape()
}

func (b *builder) buildPoly(attrs []xmlscan.Attr, closed bool) {
	var coords []float64
	for _, a := range attrs {
		if b.applyAttr(a.Name, a.Value) {
			continue
		}
		if a.Name == "points" {
			coords = parseCoordList(a.Value)
		}
	}
	frame := b.attrs.top()
	if p, ok := polyPath(coords, closed, frame.xform); ok {
		b.pending = append(b.pending, p)
	}
	b.commitShape()
}

// commitShape folds the current frame's paint state into a Shape from
// the accumulated pending paths, prepending it to the image (matching
// the original construction order, which builds the shape list from
// the head).
func (b *builder) commitShape() {
	if len(b.pending) == 0 {
		return
	}
	frame := b.attrs.top()
	scale := maxf(absf(frame.xform.A), absf(frame.xform.E))

	shape := Shape{
		Paths:       b.pending,
		HasFill:     frame.hasFill,
		HasStroke:   frame.hasStroke,
		StrokeWidth: frame.strokeWidth * scale,
		Visible:     frame.visible,
	}
	shape.FillColor = frame.fillColor
	if shape.HasFill {
		shape.FillColor = shape.FillColor.WithAlpha(opacityToAlpha(frame.fillOpacity))
	}
	shape.StrokeColor = frame.strokeColor
	if shape.HasStroke {
		shape.StrokeColor = shape.StrokeColor.WithAlpha(opacityToAlpha(frame.strokeOpacity))
	}

	b.image.Shapes = append([]Shape{shape}, b.image.Shapes...)
	b.pending = nil
}

func parseFloatLoose(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] == '-' || s[end] == '+' || s[end] == '.' ||
		(s[end] >= '0' && s[end] <= '9') || s[end] == 'e' || s[end] == 'E') {
		end++
	}
	v, _ := strconv.ParseFloat(s[:end], 64)
	return v
}

// parseLength splits a numeric length like "8.5in" into its value and
// unit suffix, converting known absolute-length units to pixels using
// dpi. Relative units ("px", "em", "%", or no suffix) pass through
// unconverted.
func parseLength(s string, dpi float64) (float64, string) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] == '-' || s[end] == '+' || s[end] == '.' ||
		(s[end] >= '0' && s[end] <= '9') || s[end] == 'e' || s[end] == 'E') {
		end++
	}
	// A trailing 'e'/'E' with no exponent digits is the start of a unit
	// such as "em" or "ex", not part of the number.
	if end > 0 && (s[end-1] == 'e' || s[end-1] == 'E') {
		end--
	}
	v, _ := strconv.ParseFloat(s[:end], 64)
	unit := strings.TrimSpace(s[end:])

	switch unit {
	case "in":
		v *= dpi
	case "cm":
		v *= dpi / 2.54
	case "mm":
		v *= dpi / 25.4
	case "pt":
		v *= dpi / 72
	case "pc":
		v *= dpi / 6
	}
	return v, unit
}

// parseCoordList parses a "points" attribute's flat whitespace/comma
// separated coordinate list.
func parseCoordList(s string) []float64 {
	var coords []float64
	i := 0
	for i < len(s) {
		tok, next := nextPathItem(s, i)
		if tok == "" {
			break
		}
		i = next
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			coords = append(coords, v)
		}
	}
	return coords
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
