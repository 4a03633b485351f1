package svgraster

import (
	"image"
	"image/color"

	"github.com/benoitkugler/svgpng/svgdraw"
	"github.com/benoitkugler/svgpng/svgelem"
	"github.com/benoitkugler/svgpng/svgout"
)

var _ svgdraw.Converter = Converter{} // assert interface conformance

// Converter rasterizes element sequences and writes
// the result to an image file.
// Each conversion uses a new canvas.
type Converter struct {
	Width, Height int         // zero for the default
	Background    color.Color // nil for DefaultBackground
	Output        string      // file path, or svgout.Stdout
	Encoder       svgout.Encoder
	ErrorMode     svgdraw.ErrorMode
}

// Rasterize draws `elements` on a fresh canvas.
func (c Converter) Rasterize(elements []*svgelem.Element) (*image.RGBA, svgdraw.Diagnostics) {
	rd := NewRasterizer(c.Width, c.Height, c.Background)
	diags := rd.Draw(elements, c.ErrorMode)
	return rd.Image(), diags
}

// Convert draws `elements` and encodes the canvas into the Output file.
// If Encoder is nil, it is chosen from the Output extension.
// An output failure is returned, and also recorded in the diagnostics.
func (c Converter) Convert(elements []*svgelem.Element) (svgdraw.Diagnostics, error) {
	if err := svgdraw.CheckSize(c.Width, c.Height); err != nil {
		var diags svgdraw.Diagnostics
		diags.Warn(c.ErrorMode, err)
		return diags, err
	}
	img, diags := c.Rasterize(elements)
	enc := c.Encoder
	if enc == nil {
		var err error
		enc, err = svgout.ForPath(c.Output)
		if err != nil {
			diags.Warn(c.ErrorMode, err)
			return diags, err
		}
	}
	if err := svgout.WriteFile(c.Output, img, enc); err != nil {
		diags.Warn(c.ErrorMode, err)
		return diags, err
	}
	return diags, nil
}
