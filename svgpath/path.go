// Package svgpath stores shapes as sequences of fixed point
// path operations, and parses the SVG path syntaxes
// (points lists and path data).
package svgpath

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Adder accumulates path commands.
// rasterx Filler and Dasher satisfy it, as do the drawers of
// the svgdraw package.
type Adder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
}

// Operation is one of MoveTo, LineTo, CubicTo or Close.
type Operation interface {
	// replay sends the operation to `q`
	replay(q Adder)
	// svg returns the absolute SVG command
	svg() string
}

type (
	MoveTo  fixed.Point26_6
	LineTo  fixed.Point26_6
	CubicTo [3]fixed.Point26_6 // two control points and the end point
	Close   struct{}
)

func formatPoint(p fixed.Point26_6) string {
	return fmt.Sprintf("%.3f,%.3f", float64(p.X)/64, float64(p.Y)/64)
}

// a MoveTo ends the previous sub-path, left open
func (op MoveTo) replay(q Adder) {
	q.Stop(false)
	q.Start(fixed.Point26_6(op))
}

func (op LineTo) replay(q Adder)  { q.Line(fixed.Point26_6(op)) }
func (op CubicTo) replay(q Adder) { q.CubeBezier(op[0], op[1], op[2]) }
func (Close) replay(q Adder)      { q.Stop(true) }

func (op MoveTo) svg() string { return "M" + formatPoint(fixed.Point26_6(op)) }
func (op LineTo) svg() string { return "L" + formatPoint(fixed.Point26_6(op)) }
func (op CubicTo) svg() string {
	return "C" + formatPoint(op[0]) + "," + formatPoint(op[1]) + "," + formatPoint(op[2])
}
func (Close) svg() string { return "Z" }

// Path is a sequence of operations, in canvas coordinates.
// Every shape is reduced to a Path before painting.
// The zero value is an empty path, ready to use.
type Path []Operation

// ToSVGPath returns the path data, as absolute SVG commands
// separated by spaces.
func (p Path) ToSVGPath() string {
	var sb strings.Builder
	for i, op := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(op.svg())
	}
	return sb.String()
}

func (p Path) String() string { return p.ToSVGPath() }

// Clear empties the path, keeping its storage.
func (p *Path) Clear() { *p = (*p)[:0] }

func (p *Path) Start(a fixed.Point26_6)            { *p = append(*p, MoveTo(a)) }
func (p *Path) Line(b fixed.Point26_6)             { *p = append(*p, LineTo(b)) }
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) { *p = append(*p, CubicTo{b, c, d}) }

// Stop records a Close when `closeLoop` is true.
// Open sub-paths need no marker.
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// AddTo replays the path onto `q`, and ends the last sub-path.
func (p Path) AddTo(q Adder) {
	for _, op := range p {
		op.replay(q)
	}
	q.Stop(false)
}
