// Package svgpdf writes SVG shapes as vector paths on a PDF page,
// using github.com/jung-kurt/gofpdf.
// One canvas pixel is one point, and the y axis is flipped
// by gofpdf, so coordinates are given in the SVG orientation.
package svgpdf

import (
	"image/color"

	"github.com/benoitkugler/svgpng/svgdraw"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

var (
	_ svgdraw.Driver  = Renderer{}
	_ svgdraw.Filler  = (*fillPainter)(nil)
	_ svgdraw.Stroker = (*strokePainter)(nil)
)

// Renderer paints on the current page of a document.
type Renderer struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer returns a driver writing on the current page of `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer { return Renderer{pdf: pdf} }

func (r Renderer) SetupDrawers(willFill, willStroke bool) (svgdraw.Filler, svgdraw.Stroker) {
	var (
		f svgdraw.Filler
		s svgdraw.Stroker
	)
	if willFill {
		f = &fillPainter{segments: segments{r.pdf}, nonZero: true}
	}
	if willStroke {
		s = &strokePainter{segments{r.pdf}}
	}
	return f, s
}

// segments writes the path operators, which are
// painted and discarded by DrawPath
type segments struct {
	pdf *gofpdf.Fpdf
}

func pt(p fixed.Point26_6) (x, y float64) { return float64(p.X) / 64, float64(p.Y) / 64 }

func (segments) Clear() {}

func (sg segments) Start(a fixed.Point26_6) { sg.pdf.MoveTo(pt(a)) }
func (sg segments) Line(b fixed.Point26_6)  { sg.pdf.LineTo(pt(b)) }

func (sg segments) CubeBezier(b, c, d fixed.Point26_6) {
	x1, y1 := pt(b)
	x2, y2 := pt(c)
	x, y := pt(d)
	sg.pdf.CurveBezierCubicTo(x1, y1, x2, y2, x, y)
}

func (sg segments) Stop(closeLoop bool) {
	if closeLoop {
		sg.pdf.ClosePath()
	}
}

// the graphic state alpha applies to both fill and stroke,
// and is set again by each painter
func (sg segments) setAlpha(c color.NRGBA) { sg.pdf.SetAlpha(float64(c.A)/255, "Normal") }

type fillPainter struct {
	segments
	nonZero bool
}

func (f *fillPainter) SetWinding(useNonZeroWinding bool) { f.nonZero = useNonZeroWinding }

func (f *fillPainter) SetColor(c color.NRGBA) {
	f.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	f.setAlpha(c)
}

func (f *fillPainter) Draw() {
	if f.nonZero {
		f.pdf.DrawPath("F")
	} else {
		f.pdf.DrawPath("F*")
	}
}

type strokePainter struct {
	segments
}

var (
	capStyles  = [...]string{svgdraw.ButtCap: "butt", svgdraw.SquareCap: "square", svgdraw.RoundCap: "round"}
	joinStyles = [...]string{svgdraw.Round: "round", svgdraw.Bevel: "bevel", svgdraw.Miter: "miter"}
)

func (s *strokePainter) SetStrokeOptions(options svgdraw.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	s.pdf.SetLineCapStyle(capStyles[options.LineCap])
	s.pdf.SetLineJoinStyle(joinStyles[options.LineJoin])
}

func (s *strokePainter) SetColor(c color.NRGBA) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.setAlpha(c)
}

func (s *strokePainter) Draw() { s.pdf.DrawPath("D") }
