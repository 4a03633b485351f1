package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// when approximating an ellipse.
const maxDx float64 = math.Pi / 8

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Fixed converts the point to 26.6 fixed point.
func (p Point) Fixed() fixed.Point26_6 {
	return toFixedP(p.X, p.Y)
}

// toFixedP converts two floats to a fixed point,
// clamping each coordinate to MaxCoord.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(math.Round(clampAbs(x, MaxCoord) * 64))
	p.Y = fixed.Int26_6(math.Round(clampAbs(y, MaxCoord) * 64))
	return
}

// AddRect adds a closed rectangle with corners (minX, minY) and (maxX, maxY).
func (p *Path) AddRect(minX, minY, maxX, maxY float64) {
	p.Start(toFixedP(minX, minY))
	p.Line(toFixedP(maxX, minY))
	p.Line(toFixedP(maxX, maxY))
	p.Line(toFixedP(minX, maxY))
	p.Stop(true)
}

// AddEllipse adds a closed, axis aligned ellipse centered at (cx, cy),
// approximated by cubic bezier curves. A circle has rx == ry.
// Nothing is added for a degenerate ellipse.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 && ry == 0 {
		return
	}
	n := 2*math.Pi/maxDx + 0.5
	segs := int(n)
	dEta := 2 * math.Pi / float64(segs)
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3

	lx, ly := ellipsePointAt(rx, ry, 0, cx, cy)
	ldx, ldy := ellipsePrime(rx, ry, 0)
	p.Start(toFixedP(lx, ly))
	for i := 1; i <= segs; i++ {
		eta := dEta * float64(i)
		px, py := ellipsePointAt(rx, ry, eta, cx, cy)
		if i == segs {
			px, py = cx+rx, cy // closes exactly
		}
		dx, dy := ellipsePrime(rx, ry, eta)
		p.CubeBezier(toFixedP(lx+alpha*ldx, ly+alpha*ldy),
			toFixedP(px-alpha*dx, py-alpha*dy), toFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	p.Stop(true)
}

// AddPolyline adds an open curve through `points`.
// At least two points are required. Segments are clipped
// to MaxCoord, keeping their direction.
func (p *Path) AddPolyline(points []Point) {
	if len(points) < 2 {
		return
	}
	sg := segmenter{path: p}
	sg.moveTo(points[0])
	for _, pt := range points[1:] {
		sg.lineTo(pt)
	}
	p.Stop(false)
}

// AddLine adds a single open segment.
func (p *Path) AddLine(x1, y1, x2, y2 float64) {
	p.AddPolyline([]Point{{x1, y1}, {x2, y2}})
}

// ellipsePrime gives tangent vectors for parameterized ellipse; a, b radii, eta parameter
func ellipsePrime(a, b, eta float64) (px, py float64) {
	return -a * math.Sin(eta), b * math.Cos(eta)
}

// ellipsePointAt gives points for parameterized ellipse; a, b radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, eta, cx, cy float64) (px, py float64) {
	return cx + a*math.Cos(eta), cy + b*math.Sin(eta)
}
