package svgdraw

import (
	"fmt"
	"log"
	"math"

	"github.com/benoitkugler/svgpng/svgattr"
	"github.com/benoitkugler/svgpng/svgelem"
	"github.com/benoitkugler/svgpng/svgpath"
)

// cursor is used while compiling elements
type cursor struct {
	Diagnostics
	errorMode ErrorMode
	element   *svgelem.Element // current element
}

func (c *cursor) warnf(format string, args ...interface{}) {
	c.warn(c.errorMode, "<%s>: %s", c.element.TagName, fmt.Sprintf(format, args...))
}

// float resolves a geometry attribute, defaulting to 0.
func (c *cursor) float(name string) float64 {
	if v, ok := c.element.Value(name); ok && math.IsNaN(svgattr.Float(c.element, name, math.NaN())) {
		c.warnf("invalid %s %q", name, v)
	}
	return svgattr.Float(c.element, name, 0)
}

// paint resolves a color attribute and its opacity.
func (c *cursor) paint(name, defColor string) svgattr.Paint {
	p, err := svgattr.ColorAndOpacity(c.element, name, defColor, 1)
	if err != nil {
		c.warnf("%s", err)
	}
	return p
}

// strokeStyle resolves the stroke shared by every shape. Fill is disabled.
func (c *cursor) strokeStyle(join JoinMode) Style {
	const attr = "stroke-width"
	// the default is returned when the two calls differ
	if v, ok := c.element.Value(attr); ok && svgattr.Int(c.element, attr, 0) != svgattr.Int(c.element, attr, 1) {
		c.warnf("invalid %s %q", attr, v)
	}
	return Style{
		Stroke:      c.paint("stroke", "black"),
		StrokeWidth: float64(svgattr.Int(c.element, attr, 1)),
		Join:        join,
	}
}

// filledStyle resolves the stroke and the fill.
func (c *cursor) filledStyle() Style {
	st := c.strokeStyle(Miter)
	st.Fill = c.paint("fill", svgattr.None)
	return st
}

// shapeFunc compiles the current element. It returns false
// when there is nothing to draw.
type shapeFunc func(c *cursor) (Shape, bool)

var drawFuncs = map[string]shapeFunc{
	"svg":      svgF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  ellipseF,
	"line":     lineF,
	"polyline": polylineF,
	"path":     pathF,
}

// IsSupported returns true if elements with the given tag are drawn.
func IsSupported(tagName string) bool {
	_, ok := drawFuncs[tagName]
	return ok
}

func svgF(c *cursor) (Shape, bool) {
	if c.errorMode == WarnErrorMode {
		log.Println("Drawing svg...")
	}
	return Shape{}, false
}

func rectF(c *cursor) (Shape, bool) {
	x, y := c.float("x"), c.float("y")
	w, h := c.float("width"), c.float("height")
	if w < 0 || h < 0 {
		c.warnf("negative size %gx%g", w, h)
		return Shape{}, false
	}
	var sh Shape
	sh.Style = c.filledStyle()
	sh.Path.AddRect(x, y, x+w, y+h)
	if d := sh.Style.inset(math.Min(w, h)); d > 0 {
		sh.Outline.AddRect(x+d, y+d, x+w-d, y+h-d)
	}
	return sh, true
}

func circleF(c *cursor) (Shape, bool) {
	cx, cy, r := c.float("cx"), c.float("cy"), c.float("r")
	return c.ellipse(cx, cy, r, r)
}

func ellipseF(c *cursor) (Shape, bool) {
	cx, cy := c.float("cx"), c.float("cy")
	rx, ry := c.float("rx"), c.float("ry")
	return c.ellipse(cx, cy, rx, ry)
}

func (c *cursor) ellipse(cx, cy, rx, ry float64) (Shape, bool) {
	if rx < 0 || ry < 0 {
		c.warnf("negative radius %g, %g", rx, ry)
		return Shape{}, false
	}
	var sh Shape
	sh.Style = c.filledStyle()
	sh.Path.AddEllipse(cx, cy, rx, ry)
	if d := sh.Style.inset(math.Min(rx, ry)); d > 0 {
		sh.Outline.AddEllipse(cx, cy, rx-d, ry-d)
	}
	return sh, true
}

func lineF(c *cursor) (Shape, bool) {
	x1, y1 := c.float("x1"), c.float("y1")
	x2, y2 := c.float("x2"), c.float("y2")
	var sh Shape
	sh.Style = c.strokeStyle(Round)
	sh.Path.AddLine(x1, y1, x2, y2)
	return sh, true
}

func polylineF(c *cursor) (Shape, bool) {
	points, errs := svgpath.ParsePoints(svgattr.String(c.element, "points", ""))
	for _, err := range errs {
		c.warnf("%s", err)
	}
	if len(points) == 0 {
		return Shape{}, false
	}
	var sh Shape
	sh.Style = c.strokeStyle(Round)
	sh.Path.AddPolyline(points)
	return sh, true
}

func pathF(c *cursor) (Shape, bool) {
	path, errs := svgpath.ParseData(svgattr.String(c.element, "d", ""))
	for _, err := range errs {
		c.warnf("%s", err)
	}
	if len(path) == 0 {
		return Shape{}, false
	}
	return Shape{Path: path, Style: c.strokeStyle(Round)}, true
}
