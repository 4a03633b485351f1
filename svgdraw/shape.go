package svgdraw

import (
	"math"

	"github.com/benoitkugler/svgpng/svgattr"
	"github.com/benoitkugler/svgpng/svgpath"
	"golang.org/x/image/math/fixed"
)

// Style holds the paint parameters of a shape.
type Style struct {
	Fill, Stroke svgattr.Paint
	StrokeWidth  float64
	Join         JoinMode
}

// Shape binds a style to a path
type Shape struct {
	Path svgpath.Path

	// Outline is the stroked path, if different from Path.
	// Closed shapes move it inwards by half the stroke width,
	// so that the outline stays inside the shape's box.
	Outline svgpath.Path
	Style   Style
}

// defaultMiterLimit is the SVG initial value of stroke-miterlimit.
const defaultMiterLimit = 4

// fToFixed converts a length, clamped to svgpath.MaxCoord.
func fToFixed(f float64) fixed.Int26_6 {
	f = math.Max(-svgpath.MaxCoord, math.Min(svgpath.MaxCoord, f))
	return fixed.Int26_6(math.Round(f * 64))
}

func (s Shape) willFill() bool { return !s.Style.Fill.None() }

func (s Shape) willStroke() bool { return !s.Style.Stroke.None() && s.Style.StrokeWidth > 0 }

// Draw paints the shape into the driver `d`:
// the fill first, then the outline.
func (s Shape) Draw(d Driver) {
	willFill, willStroke := s.willFill(), s.willStroke()
	if len(s.Path) == 0 || !(willFill || willStroke) {
		return
	}
	filler, stroker := d.SetupDrawers(willFill, willStroke)
	if filler != nil {
		filler.Clear()
		filler.SetWinding(true)
		s.Path.AddTo(filler)
		filler.SetColor(s.Style.Fill.Color)
		filler.Draw()
	}

	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth:  fToFixed(s.Style.StrokeWidth),
			MiterLimit: fToFixed(defaultMiterLimit),
			LineJoin:   s.Style.Join,
			LineCap:    ButtCap,
		})
		s.outline().AddTo(stroker)
		stroker.SetColor(s.Style.Stroke.Color)
		stroker.Draw()
	}
}

func (s Shape) outline() svgpath.Path {
	if len(s.Outline) != 0 {
		return s.Outline
	}
	return s.Path
}

// inset returns how far the outline of a closed shape is moved
// inwards, `extent` being its smallest dimension.
// Thick strokes are not moved past the middle of the shape.
func (st Style) inset(extent float64) float64 {
	if st.Stroke.None() || st.StrokeWidth <= 0 {
		return 0
	}
	return math.Min(st.StrokeWidth, extent) / 2
}

// outside returns true if nothing of the shape may be
// visible in `viewport`.
func (s Shape) outside(viewport fixed.Rectangle26_6) bool {
	bbox, ok := s.Path.Bounds()
	if !ok {
		return false
	}
	if s.willStroke() {
		m := fToFixed(s.Style.StrokeWidth / 2)
		bbox.Min = bbox.Min.Sub(fixed.Point26_6{X: m, Y: m})
		bbox.Max = bbox.Max.Add(fixed.Point26_6{X: m, Y: m})
	}
	return bbox.Max.X <= viewport.Min.X || bbox.Min.X >= viewport.Max.X ||
		bbox.Max.Y <= viewport.Min.Y || bbox.Min.Y >= viewport.Max.Y
}
