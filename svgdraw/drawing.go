package svgdraw

import (
	"github.com/benoitkugler/svgpng/svgelem"
	"golang.org/x/image/math/fixed"
)

// Drawing draws element sequences into a driver.
type Drawing struct {
	Driver    Driver
	ErrorMode ErrorMode

	// Viewport is the visible area of the driver. If not empty,
	// shapes lying entirely outside of it are reported.
	// They are still sent to the driver, which discards them.
	Viewport fixed.Rectangle26_6
}

// Draw draws each element in order, so that later elements
// paint over earlier ones. Unsupported elements are skipped
// and problems are collected in the returned Diagnostics:
// they never stop the drawing.
func (dr Drawing) Draw(elements []*svgelem.Element) Diagnostics {
	c := cursor{errorMode: dr.ErrorMode}
	for _, e := range elements {
		dr.drawElement(&c, e)
	}
	return c.Diagnostics
}

func (dr Drawing) drawElement(c *cursor, e *svgelem.Element) {
	sh, ok := c.compile(e)
	if !ok {
		return
	}
	if !dr.Viewport.Empty() && sh.outside(dr.Viewport) {
		c.warnf("shape is outside the canvas")
	}
	sh.Draw(dr.Driver)
}

func (c *cursor) compile(e *svgelem.Element) (Shape, bool) {
	c.element = e
	df, ok := drawFuncs[e.TagName]
	if !ok {
		c.unsupported(c.errorMode, e.TagName)
		return Shape{}, false
	}
	return df(c)
}

// Compile resolves the shape described by `e`, without drawing it.
// It returns false for unsupported elements and for elements
// with nothing to draw.
func Compile(e *svgelem.Element, errorMode ErrorMode) (Shape, Diagnostics, bool) {
	c := cursor{errorMode: errorMode}
	sh, ok := c.compile(e)
	return sh, c.Diagnostics, ok
}
