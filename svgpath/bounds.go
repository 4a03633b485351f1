package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// box accumulates points; it is empty while min > max
type box struct {
	minX, minY, maxX, maxY float64
}

func emptyBox() box { return box{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)} }

func (b *box) add(x, y float64) {
	b.minX, b.maxX = math.Min(b.minX, x), math.Max(b.maxX, x)
	b.minY, b.maxY = math.Min(b.minY, y), math.Max(b.maxY, y)
}

func toFloat(p fixed.Point26_6) (x, y float64) { return float64(p.X) / 64, float64(p.Y) / 64 }

// cubicAt evaluates one coordinate of a Bézier curve
func cubicAt(p0, p1, p2, p3, t float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

// cubicExtrema returns the parameters in ]0,1[ where
// the derivative of one coordinate vanishes.
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	// derivative / 3 = a t² + b t + c
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	var roots []float64
	if a == 0 {
		if b != 0 {
			roots = append(roots, -c/b)
		}
	} else if d := b*b - 4*a*c; d >= 0 {
		sq := math.Sqrt(d)
		roots = append(roots, (-b+sq)/(2*a), (-b-sq)/(2*a))
	}
	out := roots[:0]
	for _, t := range roots {
		if 0 < t && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

func (b *box) addCubic(p0, p1, p2, p3 fixed.Point26_6) {
	x0, y0 := toFloat(p0)
	x1, y1 := toFloat(p1)
	x2, y2 := toFloat(p2)
	x3, y3 := toFloat(p3)
	b.add(x3, y3)
	ts := append(cubicExtrema(x0, x1, x2, x3), cubicExtrema(y0, y1, y2, y3)...)
	for _, t := range ts {
		b.add(cubicAt(x0, x1, x2, x3, t), cubicAt(y0, y1, y2, y3, t))
	}
}

// Bounds returns the smallest rectangle containing the path,
// control points excluded, or false for an empty path.
// A single segment gives a degenerate rectangle.
func (p Path) Bounds() (fixed.Rectangle26_6, bool) {
	var current fixed.Point26_6
	bb := emptyBox()
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = fixed.Point26_6(op)
			bb.add(toFloat(current))
		case LineTo:
			current = fixed.Point26_6(op)
			bb.add(toFloat(current))
		case CubicTo:
			bb.addCubic(current, op[0], op[1], op[2])
			current = op[2]
		}
	}
	if bb.minX > bb.maxX {
		return fixed.Rectangle26_6{}, false
	}
	return fixed.Rectangle26_6{Min: toFixedP(bb.minX, bb.minY), Max: toFixedP(bb.maxX, bb.maxY)}, true
}
