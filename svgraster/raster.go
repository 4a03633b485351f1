// Implements a raster backend to render SVG elements,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"

	"github.com/benoitkugler/svgpng/svgdraw"
	"github.com/benoitkugler/svgpng/svgelem"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// DefaultBackground is the initial color of the canvas.
var DefaultBackground color.Color = color.White

var _ svgdraw.Driver = (*Rasterizer)(nil) // assert interface conformance

// Rasterizer owns a canvas and paints shapes on it.
// It is not safe for concurrent use.
type Rasterizer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRasterizer returns a `width` x `height` canvas filled with `background`.
// Non positive dimensions are replaced by the default ones,
// larger than svgdraw.MaxSize are reduced to it,
// and a nil background means DefaultBackground.
func NewRasterizer(width, height int, background color.Color) *Rasterizer {
	if width <= 0 {
		width = svgdraw.DefaultWidth
	}
	if height <= 0 {
		height = svgdraw.DefaultHeight
	}
	width, height = min(width, svgdraw.MaxSize), min(height, svgdraw.MaxSize)
	if background == nil {
		background = DefaultBackground
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Rasterizer{
		img:    img,
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
	}
}

// Image returns the canvas.
func (rd *Rasterizer) Image() *image.RGBA { return rd.img }

// Draw paints the elements in order, and returns the problems found.
func (rd *Rasterizer) Draw(elements []*svgelem.Element, errorMode svgdraw.ErrorMode) svgdraw.Diagnostics {
	b := rd.img.Bounds()
	dr := svgdraw.Drawing{
		Driver:    rd,
		ErrorMode: errorMode,
		Viewport:  fixed.R(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y),
	}
	return dr.Draw(elements)
}

func (rd *Rasterizer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Filler, s svgdraw.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(c color.NRGBA) { f.Filler.SetColor(c) }

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(c color.NRGBA) { s.Dasher.SetColor(c) }

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgdraw.Round: rasterx.Round,
		svgdraw.Bevel: rasterx.Bevel,
		svgdraw.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgdraw.ButtCap:   rasterx.ButtCap,
		svgdraw.SquareCap: rasterx.SquareCap,
		svgdraw.RoundCap:  rasterx.RoundCap,
	}
)

func (s stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	s.Dasher.SetStroke(
		options.LineWidth, options.MiterLimit, capToFunc[options.LineCap],
		capToFunc[options.LineCap], rasterx.FlatGap,
		joinToJoin[options.LineJoin], nil, 0,
	)
}
