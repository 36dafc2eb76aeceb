package svgraster

// maxAttrDepth bounds the <g>/<path>/... attribute frame stack. Document
// nesting deeper than this silently stops pushing new frames; the element
// continues to inherit the deepest frame reached so far rather than
// erroring out on pathological input.
const maxAttrDepth = 128

// attrFrame is the inheritable paint and transform state in effect at a
// point in the document tree: combined transform, fill/stroke color and
// opacity, stroke width, and visibility.
type attrFrame struct {
	xform Matrix

	fillColor   Color
	strokeColor Color

	fillOpacity   float64
	strokeOpacity float64
	strokeWidth   float64

	hasFill   bool
	hasStroke bool
	visible   bool
}

func defaultAttrFrame() attrFrame {
	return attrFrame{
		xform:         Identity(),
		fillColor:     RGB(0, 0, 0),
		strokeColor:   RGB(0, 0, 0),
		fillOpacity:   1,
		strokeOpacity: 1,
		strokeWidth:   1,
		hasFill:       false,
		hasStroke:     false,
		visible:       true,
	}
}

// attrStack is a fixed-depth stack of attrFrame values, mirroring the
// inheritance behavior of nested SVG elements: pushAttr copies the current
// top so the new frame starts identical to its parent, and popAttr
// discards it again once the element's children have been visited.
type attrStack struct {
	frames [maxAttrDepth]attrFrame
	head   int
}

func newAttrStack() *attrStack {
	s := &attrStack{}
	s.frames[0] = defaultAttrFrame()
	return s
}

func (s *attrStack) top() *attrFrame {
	return &s.frames[s.head]
}

func (s *attrStack) push() {
	if s.head < maxAttrDepth-1 {
		s.head++
		s.frames[s.head] = s.frames[s.head-1]
	}
}

func (s *attrStack) pop() {
	if s.head > 0 {
		s.head--
	}
}
