package svgdraw

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/benoitkugler/svgpng/svgattr"
	"github.com/benoitkugler/svgpng/svgelem"
	"github.com/benoitkugler/svgpng/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

// recordDriver logs every operation, prefixed by the drawer kind
type recordDriver struct {
	ops []string
}

type recordDrawer struct {
	kind string
	d    *recordDriver
}

func (r recordDrawer) log(format string, args ...interface{}) {
	r.d.ops = append(r.d.ops, r.kind+" "+fmt.Sprintf(format, args...))
}

func (r recordDrawer) Clear()                             { r.log("clear") }
func (r recordDrawer) Start(a fixed.Point26_6)            { r.log("start %d,%d", a.X/64, a.Y/64) }
func (r recordDrawer) Line(b fixed.Point26_6)             { r.log("line %d,%d", b.X/64, b.Y/64) }
func (r recordDrawer) CubeBezier(_, _, d fixed.Point26_6) { r.log("cube %d,%d", d.X/64, d.Y/64) }
func (r recordDrawer) Stop(closeLoop bool) {
	if closeLoop {
		r.log("close")
	}
}
func (r recordDrawer) SetColor(c color.NRGBA)              { r.log("color %v", c) }
func (r recordDrawer) Draw()                               { r.log("draw") }
func (r recordDrawer) SetWinding(useNonZeroWinding bool)   { r.log("winding %v", useNonZeroWinding) }
func (r recordDrawer) SetStrokeOptions(opts StrokeOptions) { r.log("width %d join %s", opts.LineWidth/64, opts.LineJoin) }

func (d *recordDriver) SetupDrawers(willFill, willStroke bool) (f Filler, s Stroker) {
	if willFill {
		f = recordDrawer{kind: "fill", d: d}
	}
	if willStroke {
		s = recordDrawer{kind: "stroke", d: d}
	}
	return f, s
}

func newElement(tag string, attrs ...string) *svgelem.Element {
	e := svgelem.NewElement(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		e.AddAttribute(svgelem.Attribute{Name: attrs[i], Value: attrs[i+1]})
	}
	return e
}

var (
	black = svgattr.Paint{Color: color.NRGBA{0, 0, 0, 255}, Set: true}
	red   = svgattr.Paint{Color: color.NRGBA{255, 0, 0, 255}, Set: true}
)

func TestCompileRect(t *testing.T) {
	sh, diags, ok := Compile(newElement("rect", "x", "10", "y", "10", "width", "50", "height", "30", "fill", "red", "fill-opacity", "1"), WarnErrorMode)
	require.True(t, ok)
	assert.True(t, diags.Empty())
	assert.Equal(t, Style{Fill: red, Stroke: black, StrokeWidth: 1, Join: Miter}, sh.Style)
	assert.Equal(t, "M10.000,10.000 L60.000,10.000 L60.000,40.000 L10.000,40.000 Z", sh.Path.String())
	// the outline stays inside the rectangle
	assert.Equal(t, "M10.500,10.500 L59.500,10.500 L59.500,39.500 L10.500,39.500 Z", sh.Outline.String())
}

func TestCompileDefaults(t *testing.T) {
	sh, diags, ok := Compile(newElement("circle", "cx", "50", "cy", "50", "r", "20"), IgnoreErrorMode)
	require.True(t, ok)
	assert.True(t, diags.Empty())
	assert.Equal(t, Style{Fill: svgattr.NoPaint, Stroke: black, StrokeWidth: 1, Join: Miter}, sh.Style)
	bbox, _ := sh.Path.Bounds()
	assert.Equal(t, fixed.R(30, 30, 70, 70), bbox)
	bbox, _ = sh.Outline.Bounds()
	assert.Equal(t, fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 30*64 + 32, Y: 30*64 + 32},
		Max: fixed.Point26_6{X: 70*64 - 32, Y: 70*64 - 32},
	}, bbox)

	// lines are never filled
	sh, _, ok = Compile(newElement("line", "x2", "10", "fill", "red"), IgnoreErrorMode)
	require.True(t, ok)
	assert.True(t, sh.Style.Fill.None())
	assert.Equal(t, Round, sh.Style.Join)
	assert.Equal(t, "M0.000,0.000 L10.000,0.000", sh.Path.String())
}

func TestCompileEllipse(t *testing.T) {
	sh, _, ok := Compile(newElement("ellipse", "cx", "50", "cy", "40", "rx", "30", "ry", "10", "stroke", "none", "fill", "blue"), IgnoreErrorMode)
	require.True(t, ok)
	assert.True(t, sh.Style.Stroke.None())
	assert.Empty(t, sh.Outline)
	bbox, _ := sh.Path.Bounds()
	assert.Equal(t, fixed.R(20, 30, 80, 50), bbox)

	// thick strokes are not moved past the center
	sh, _, ok = Compile(newElement("circle", "cx", "50", "cy", "50", "r", "10", "stroke-width", "30"), IgnoreErrorMode)
	require.True(t, ok)
	bbox, _ = sh.Outline.Bounds()
	assert.Equal(t, fixed.R(45, 45, 55, 55), bbox)
}

func TestCompileNegativeSize(t *testing.T) {
	for _, e := range []*svgelem.Element{
		newElement("rect", "width", "-10", "height", "10"),
		newElement("rect", "width", "10", "height", "-1"),
		newElement("circle", "cx", "50", "cy", "50", "r", "-20"),
		newElement("ellipse", "rx", "10", "ry", "-5"),
	} {
		_, diags, ok := Compile(e, IgnoreErrorMode)
		assert.False(t, ok, e.String())
		assert.Len(t, diags.Warnings, 1, e.String())
	}

	// zero is a valid, empty size
	_, diags, ok := Compile(newElement("rect", "width", "0", "height", "10"), IgnoreErrorMode)
	assert.True(t, ok)
	assert.True(t, diags.Empty())
}

func TestWarningTagName(t *testing.T) {
	c := cursor{element: svgelem.NewElement("a%d")}
	c.warnf("invalid %s", "x")
	assert.Equal(t, []string{"<a%d>: invalid x"}, c.Warnings)
}

func TestHugeStrokeWidth(t *testing.T) {
	var driver recordDriver
	Drawing{Driver: &driver}.Draw([]*svgelem.Element{
		newElement("line", "x2", "100", "stroke-width", "50000000"),
	})
	assert.Contains(t, driver.ops, fmt.Sprintf("stroke width %d join Round", svgpath.MaxCoord))
}

func TestCompileInvalidAttributes(t *testing.T) {
	sh, diags, ok := Compile(newElement("rect", "x", "abc", "width", "10", "height", "10",
		"stroke-width", "2.5", "stroke", "nocolor", "fill", "red", "fill-opacity", "3"), IgnoreErrorMode)
	require.True(t, ok)
	assert.Len(t, diags.Warnings, 4)
	assert.Empty(t, diags.Unsupported)
	assert.Equal(t, 1., sh.Style.StrokeWidth)
	assert.True(t, sh.Style.Stroke.None())
	assert.True(t, sh.Style.Fill.None())
	assert.Equal(t, "M0.000,0.000 L10.000,0.000 L10.000,10.000 L0.000,10.000 Z", sh.Path.String())
}

func TestCompilePolylineAndPath(t *testing.T) {
	sh, diags, ok := Compile(newElement("polyline", "points", "0,0 10,10 20,0"), IgnoreErrorMode)
	require.True(t, ok)
	assert.True(t, diags.Empty())
	assert.Equal(t, "M0.000,0.000 L10.000,10.000 L20.000,0.000", sh.Path.String())

	_, diags, ok = Compile(newElement("polyline", "points", ""), IgnoreErrorMode)
	assert.False(t, ok)
	assert.True(t, diags.Empty())

	_, diags, ok = Compile(newElement("polyline"), IgnoreErrorMode)
	assert.False(t, ok)
	assert.True(t, diags.Empty())

	_, diags, ok = Compile(newElement("polyline", "points", "a,b"), IgnoreErrorMode)
	assert.False(t, ok)
	assert.Len(t, diags.Warnings, 1)

	sh, diags, ok = Compile(newElement("path", "d", "M 0 0 L 10 0 L 10 10"), IgnoreErrorMode)
	require.True(t, ok)
	assert.True(t, diags.Empty())
	assert.Equal(t, svgpath.Path{
		svgpath.MoveTo(fixed.P(0, 0)), svgpath.LineTo(fixed.P(10, 0)), svgpath.LineTo(fixed.P(10, 10)),
	}, sh.Path)

	_, _, ok = Compile(newElement("path"), IgnoreErrorMode)
	assert.False(t, ok)
}

func TestCompileUnsupported(t *testing.T) {
	_, diags, ok := Compile(newElement("foo"), IgnoreErrorMode)
	assert.False(t, ok)
	assert.Equal(t, []string{"foo"}, diags.Unsupported)

	_, diags, ok = Compile(newElement("svg", "width", "100"), WarnErrorMode)
	assert.False(t, ok)
	assert.True(t, diags.Empty())

	assert.True(t, IsSupported("path"))
	assert.False(t, IsSupported("g"))
}

func TestDrawOrder(t *testing.T) {
	var driver recordDriver
	elements := []*svgelem.Element{
		newElement("svg"),
		newElement("rect", "width", "10", "height", "10", "fill", "red", "stroke-width", "2"),
		newElement("foo"),
		newElement("line", "x2", "5", "stroke", "red"),
		newElement("line", "x2", "5", "stroke-width", "0"),
	}
	diags := Drawing{Driver: &driver}.Draw(elements)
	assert.Equal(t, []string{"foo"}, diags.Unsupported)
	assert.Empty(t, diags.Warnings)
	assert.Equal(t, []string{
		"fill clear", "fill winding true",
		"fill start 0,0", "fill line 10,0", "fill line 10,10", "fill line 0,10", "fill close",
		"fill color {255 0 0 255}", "fill draw",
		"stroke clear", "stroke width 2 join Miter",
		"stroke start 1,1", "stroke line 9,1", "stroke line 9,9", "stroke line 1,9", "stroke close",
		"stroke color {0 0 0 255}", "stroke draw",
		"stroke clear", "stroke width 1 join Round",
		"stroke start 0,0", "stroke line 5,0",
		"stroke color {255 0 0 255}", "stroke draw",
	}, driver.ops)
}

func TestDrawOutsideViewport(t *testing.T) {
	var driver recordDriver
	elements := []*svgelem.Element{
		newElement("rect", "x", "200", "y", "200", "width", "10", "height", "10"),
		newElement("rect", "x", "-5", "y", "-5", "width", "10", "height", "10"),
		newElement("line", "x1", "-10", "y1", "50", "x2", "-1", "y2", "50", "stroke-width", "4"),
	}
	diags := Drawing{Driver: &driver, Viewport: fixed.R(0, 0, 100, 100)}.Draw(elements)
	assert.Len(t, diags.Warnings, 1)
	assert.Contains(t, diags.Warnings[0], "outside")
	assert.NotEmpty(t, driver.ops)
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.Empty())
	assert.Equal(t, "no warning", d.String())

	d.Warn(IgnoreErrorMode, fmt.Errorf("invalid"))
	d.unsupported(IgnoreErrorMode, "g")
	d.unsupported(IgnoreErrorMode, "text")
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, "1 warning(s), 2 unsupported element(s): g, text", d.String())
}
