// Package svgdraw turns SVG elements into painting commands.
//
// Shapes are resolved from the element attributes, reduced to
// fixed point paths, and replayed on a Driver, which hides the
// output technology (raster canvas, PDF page).
package svgdraw

import (
	"image/color"

	"github.com/pkg/errors"
	"golang.org/x/image/math/fixed"
)

// Default size of the drawing surface, in pixels or points.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
)

// MaxSize bounds the width and height of a drawing surface.
const MaxSize = 1 << 14

// ErrSize is returned for surfaces larger than MaxSize.
var ErrSize = errors.New("canvas too large")

// CheckSize returns ErrSize, wrapped, if `width` or `height`
// exceeds MaxSize. Non positive values select the defaults
// and are accepted.
func CheckSize(width, height int) error {
	if width > MaxSize || height > MaxSize {
		return errors.Wrapf(ErrSize, "%dx%d (maximum is %d)", width, height, MaxSize)
	}
	return nil
}

// Drawer receives the geometry of one path, then paints it.
// It has no knowledge of SVG.
type Drawer interface {
	// Clear forgets the previous path.
	Clear()

	// Start begins a sub-path at `a`.
	Start(a fixed.Point26_6)

	// Line appends a segment from the current point to `b`.
	Line(b fixed.Point26_6)

	// CubeBezier appends a cubic curve with control points `b` and `c`, ending at `d`.
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop ends the current sub-path, joining it back
	// to its first point when `closeLoop` is true.
	Stop(closeLoop bool)

	// SetColor selects the paint. Its alpha is the opacity.
	SetColor(c color.NRGBA)

	// Draw paints the path accumulated since Clear.
	Draw()
}

type Filler interface {
	Drawer

	// SetWinding selects the non-zero rule (true) or the even-odd rule.
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	SetStrokeOptions(options StrokeOptions)
}

// Driver is the output backend.
type Driver interface {
	// SetupDrawers is called once per shape. A nil Filler (Stroker)
	// is expected when `willFill` (`willStroke`) is false.
	// If both are requested, the path is replayed on the Filler,
	// then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// JoinMode is the shape of the corners of a stroked path.
type JoinMode uint8

const (
	Round JoinMode = iota
	Bevel
	Miter
)

var joinNames = [...]string{Round: "Round", Bevel: "Bevel", Miter: "Miter"}

func (j JoinMode) String() string {
	if int(j) < len(joinNames) {
		return joinNames[j]
	}
	return "JoinMode(?)"
}

// CapMode is the shape of the ends of an open stroked path.
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
)

var capNames = [...]string{ButtCap: "ButtCap", SquareCap: "SquareCap", RoundCap: "RoundCap"}

func (c CapMode) String() string {
	if int(c) < len(capNames) {
		return capNames[c]
	}
	return "CapMode(?)"
}

// StrokeOptions describes the outline of a path.
// Lengths are in the canvas unit.
type StrokeOptions struct {
	LineWidth  fixed.Int26_6
	MiterLimit fixed.Int26_6 // ratio, used by Miter joins only
	LineJoin   JoinMode
	LineCap    CapMode
}
