package svgpdf

import (
	"bytes"
	"image/color"
	"io"
	"os"

	"github.com/benoitkugler/svgpng/svgdraw"
	"github.com/benoitkugler/svgpng/svgelem"
	"github.com/benoitkugler/svgpng/svgout"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Converter = Converter{} // assert interface conformance

// Converter writes element sequences as one page PDF documents.
type Converter struct {
	Width, Height int         // page size in points, zero for the default
	Background    color.Color // nil for white
	Output        string      // file path, or svgout.Stdout
	ErrorMode     svgdraw.ErrorMode
}

func (c Converter) size() (w, h int) {
	w, h = c.Width, c.Height
	if w <= 0 {
		w = svgdraw.DefaultWidth
	}
	if h <= 0 {
		h = svgdraw.DefaultHeight
	}
	return w, h
}

// newDocument returns a document with one page, filled
// with the background.
func (c Converter) newDocument() *gofpdf.Fpdf {
	w, h := c.size()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	bg := c.Background
	if bg == nil {
		bg = color.White
	}
	nc := color.NRGBAModel.Convert(bg).(color.NRGBA)
	pdf.SetFillColor(int(nc.R), int(nc.G), int(nc.B))
	pdf.SetAlpha(float64(nc.A)/255, "Normal")
	pdf.Rect(0, 0, float64(w), float64(h), "F")
	return pdf
}

// Render draws `elements` and writes the document to `out`.
func (c Converter) Render(elements []*svgelem.Element, out io.Writer) (svgdraw.Diagnostics, error) {
	if err := svgdraw.CheckSize(c.Width, c.Height); err != nil {
		var diags svgdraw.Diagnostics
		diags.Warn(c.ErrorMode, err)
		return diags, err
	}
	pdf := c.newDocument()
	w, h := c.size()
	dr := svgdraw.Drawing{
		Driver:    NewRenderer(pdf),
		ErrorMode: c.ErrorMode,
		Viewport:  fixed.R(0, 0, w, h),
	}
	diags := dr.Draw(elements)
	if err := pdf.Output(out); err != nil {
		err = errors.Wrap(err, "can't write pdf")
		diags.Warn(c.ErrorMode, err)
		return diags, err
	}
	return diags, nil
}

// Convert draws `elements` and writes the document to the Output file.
// An output failure is returned, and also recorded in the diagnostics.
func (c Converter) Convert(elements []*svgelem.Element) (svgdraw.Diagnostics, error) {
	var buf bytes.Buffer
	diags, err := c.Render(elements, &buf)
	if err != nil {
		return diags, err
	}
	if c.Output == svgout.Stdout {
		_, err = buf.WriteTo(os.Stdout)
	} else {
		err = os.WriteFile(c.Output, buf.Bytes(), 0o644)
	}
	if err != nil {
		err = errors.Wrapf(err, "can't write %s", c.Output)
		diags.Warn(c.ErrorMode, err)
	}
	return diags, err
}
