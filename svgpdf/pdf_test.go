package svgpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/svgpng/svgdraw"
	"github.com/benoitkugler/svgpng/svgelem"
	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newElement(tag string, attrs ...string) *svgelem.Element {
	e := svgelem.NewElement(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		e.AddAttribute(svgelem.Attribute{Name: attrs[i], Value: attrs[i+1]})
	}
	return e
}

func TestRenderer(t *testing.T) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: gofpdf.SizeType{Wd: 100, Ht: 100}})
	pdf.SetCompression(false)
	pdf.AddPage()

	diags := svgdraw.Drawing{Driver: NewRenderer(pdf)}.Draw([]*svgelem.Element{
		newElement("rect", "x", "10", "y", "10", "width", "50", "height", "30", "fill", "red"),
		newElement("circle", "cx", "50", "cy", "50", "r", "20"),
		newElement("path", "d", "M 0 0 L 10 0 L 10 10", "stroke", "blue", "stroke-opacity", "0.5"),
	})
	assert.True(t, diags.Empty())

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	content := buf.String()
	// PDF coordinates have a bottom left origin
	assert.Contains(t, content, "10.00 90.00 m")
	assert.Contains(t, content, "60.00 60.00 l")
	assert.Contains(t, content, "69.50 50.00 m") // outline inside the circle
	assert.Contains(t, content, "0.00 100.00 m")
	assert.Contains(t, content, "10.00 90.00 l")
}

func TestConvert(t *testing.T) {
	output := filepath.Join(t.TempDir(), "output.pdf")
	conv := Converter{Width: 200, Height: 100, Output: output}
	diags, err := conv.Convert([]*svgelem.Element{
		newElement("svg"),
		newElement("rect", "x", "10", "y", "10", "width", "50", "height", "30", "fill", "red"),
		newElement("text"),
		newElement("line", "x1", "300", "y1", "300", "x2", "400", "y2", "400"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"text"}, diags.Unsupported)
	assert.Len(t, diags.Warnings, 1)

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "%PDF-"))
}

func TestConvertTooLarge(t *testing.T) {
	var buf bytes.Buffer
	_, err := Converter{Width: svgdraw.MaxSize + 1}.Render(nil, &buf)
	assert.ErrorIs(t, err, svgdraw.ErrSize)
	assert.Zero(t, buf.Len())
}

func TestConvertFailure(t *testing.T) {
	conv := Converter{Output: filepath.Join(t.TempDir(), "missing", "output.pdf")}
	diags, err := conv.Convert([]*svgelem.Element{newElement("rect", "width", "10", "height", "10")})
	assert.Error(t, err)
	assert.Len(t, diags.Warnings, 1)
}
