package svgraster

import (
	"math"
	"strconv"
	"strings"
)

// parseTransformList parses an SVG transform attribute value ("translate(…)
// scale(…) rotate(…) …") and folds each token into xform in document order.
//
// Each token composes as xform = xform.Multiply(token), so a token nearer
// the end of the list applies closer to the shape's own local space and
// a token nearer the start applies in the outer (already-transformed)
// space — matching how nested <g transform="…"> ancestors compose with a
// shape's own transform attribute.
func parseTransformList(xform Matrix, s string) Matrix {
	for s != "" {
		switch {
		case strings.HasPrefix(s, "matrix"):
			// The original gates on "na != 6 return" rather than
			// zero-padding a short argument list, so matrix(...) with
			// fewer than 6 numbers is skipped entirely.
			args, rest, na, ok := transformArgs(s, 6)
			s = rest
			if ok && na == 6 {
				xform = xform.Multiply(Matrix{A: args[0], D: args[1], B: args[2], E: args[3], C: args[4], F: args[5]})
			}
		case strings.HasPrefix(s, "translate"):
			args, rest, _, ok := transformArgs(s, 2)
			s = rest
			if ok {
				xform = xform.Multiply(Translate(args[0], args[1]))
			}
		case strings.HasPrefix(s, "scale"):
			args, rest, ok := transformArgsScale(s)
			s = rest
			if ok {
				xform = xform.Multiply(Scale(args[0], args[1]))
			}
		case strings.HasPrefix(s, "rotate"):
			// rotate(a,cx,cy) is Translate(cx,cy) * Rotate(a) *
			// Translate(-cx,-cy), folded in as three successive Multiply
			// calls, so a point is moved to the origin, rotated, and moved
			// back: the pivot (cx,cy) stays fixed.
			args, rest, na := transformArgsRotate(s)
			s = rest
			if na >= 1 {
				angle := args[0] * math.Pi / 180
				if na > 1 {
					xform = xform.Multiply(Translate(args[1], args[2]))
				}
				xform = xform.Multiply(Rotate(angle))
				if na > 1 {
					xform = xform.Multiply(Translate(-args[1], -args[2]))
				}
			}
		case strings.HasPrefix(s, "skewX"):
			args, rest, _, ok := transformArgs(s, 1)
			s = rest
			if ok {
				xform = xform.Multiply(skewX(args[0] * math.Pi / 180))
			}
		case strings.HasPrefix(s, "skewY"):
			args, rest, _, ok := transformArgs(s, 1)
			s = rest
			if ok {
				xform = xform.Multiply(skewY(args[0] * math.Pi / 180))
			}
		default:
			s = s[1:]
		}
	}
	return xform
}

func skewX(a float64) Matrix {
	return Matrix{A: 1, B: math.Tan(a), C: 0, D: 0, E: 1, F: 0}
}

func skewY(a float64) Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: math.Tan(a), E: 1, F: 0}
}

// transformArgs finds the "(…)" following the function name at the start
// of s, parses up to want numeric arguments, and returns the arguments
// (zero-padded to want) plus the remainder of s after the closing paren.
// na reports how many arguments were actually present before padding, so
// a caller that requires an exact count (matrix requires exactly 6, per
// the original's "if (na != 6) return" gate) can tell a short argument
// list apart from a fully-specified one. Extra characters inside the
// parens that are not part of a number are skipped, matching the
// original SVG-transform tokenizer's tolerant scanning.
func transformArgs(s string, want int) (args []float64, rest string, na int, ok bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return nil, "", 0, false
	}
	closeIdx := strings.IndexByte(s[open:], ')')
	if closeIdx < 0 {
		return nil, "", 0, false
	}
	closeIdx += open

	body := s[open+1 : closeIdx]
	rest = s[closeIdx+1:]

	args = make([]float64, 0, want)
	i := 0
	for i < len(body) && len(args) < want {
		c := body[i]
		if isNumStart(c) {
			j := scanNumberEnd(body, i)
			if v, err := strconv.ParseFloat(body[i:j], 64); err == nil {
				args = append(args, v)
			}
			i = j
		} else {
			i++
		}
	}
	na = len(args)
	for len(args) < want {
		args = append(args, 0)
	}
	return args, rest, na, true
}

// transformArgsScale handles scale(sx) and scale(sx,sy): a single argument
// means uniform scale on both axes.
func transformArgsScale(s string) ([]float64, string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return nil, "", false
	}
	closeIdx := strings.IndexByte(s[open:], ')')
	if closeIdx < 0 {
		return nil, "", false
	}
	closeIdx += open
	body := s[open+1 : closeIdx]
	rest := s[closeIdx+1:]

	nums := scanNumbers(body, 2)
	if len(nums) == 0 {
		return nil, rest, false
	}
	if len(nums) == 1 {
		nums = append(nums, nums[0])
	}
	return nums, rest, true
}

// transformArgsRotate handles rotate(angle) and rotate(angle,cx,cy),
// returning the count of arguments actually present.
func transformArgsRotate(s string) ([]float64, string, int) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return nil, "", 0
	}
	closeIdx := strings.IndexByte(s[open:], ')')
	if closeIdx < 0 {
		return nil, "", 0
	}
	closeIdx += open
	body := s[open+1 : closeIdx]
	rest := s[closeIdx+1:]

	nums := scanNumbers(body, 3)
	na := len(nums)
	if na == 1 {
		nums = append(nums, 0, 0)
	}
	for len(nums) < 3 {
		nums = append(nums, 0)
	}
	return nums, rest, na
}

func scanNumbers(body string, max int) []float64 {
	var nums []float64
	i := 0
	for i < len(body) && len(nums) < max {
		c := body[i]
		if isNumStart(c) {
			j := scanNumberEnd(body, i)
			if v, err := strconv.ParseFloat(body[i:j], 64); err == nil {
				nums = append(nums, v)
			}
			i = j
		} else {
			i++
		}
	}
	return nums
}

func isNumStart(c byte) bool {
	return c == '-' || c == '+' || (c >= '0' && c <= '9') || c == '.'
}

// scanNumberEnd returns the end offset of the number starting at body[i].
// A '-'/'+' only continues the number immediately after an 'e'/'E'
// exponent marker; otherwise it starts the next, separate number, so
// "10-20" scans as two numbers rather than one malformed token.
func scanNumberEnd(body string, i int) int {
	j := i + 1
	for j < len(body) {
		c := body[j]
		if (c >= '0' && c <= '9') || c == '.' {
			j++
			continue
		}
		if c == 'e' || c == 'E' {
			j++
			if j < len(body) && (body[j] == '-' || body[j] == '+') {
				j++
			}
			continue
		}
		break
	}
	return j
}
