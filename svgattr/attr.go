// Resolves the raw string attributes of an element into
// typed values. Every resolver takes a default, returned when
// the attribute is missing or invalid: resolution never fails.
package svgattr

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgpng/svgelem"
	"github.com/pkg/errors"
)

// Float returns the attribute `name` as a decimal number, or `def`.
// NaN and infinite values are rejected.
func Float(e *svgelem.Element, name string, def float64) float64 {
	v, ok := e.Value(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// Int returns the attribute `name` as an integer, or `def`.
// A value with a fractional part, like "2.5", is invalid.
func Int(e *svgelem.Element, name string, def int) int {
	v, ok := e.Value(name)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

// String returns the attribute `name`, or `def` if
// it is missing or empty.
func String(e *svgelem.Element, name, def string) string {
	v, ok := e.Value(name)
	if !ok || v == "" {
		return def
	}
	return v
}

// Paint is a resolved color, or the absence of paint
// when Set is false.
type Paint struct {
	Color color.NRGBA
	Set   bool
}

// NoPaint disables a fill or a stroke.
var NoPaint = Paint{}

// None returns true if nothing should be painted.
func (p Paint) None() bool { return !p.Set }

func (p Paint) String() string {
	if !p.Set {
		return None
	}
	return "rgba(" + strconv.Itoa(int(p.Color.R)) + "," + strconv.Itoa(int(p.Color.G)) + "," +
		strconv.Itoa(int(p.Color.B)) + "," + strconv.Itoa(int(p.Color.A)) + ")"
}

// ColorAndOpacity resolves the paint described by the attribute
// `name` (a color) and its companion `name`-opacity (a number in [0, 1]).
// The result is NoPaint for the "none" keyword, an unknown color
// or an out of range opacity. In the last two cases, a non nil error
// describes the problem; it is informative only: the returned
// Paint is always valid.
func ColorAndOpacity(e *svgelem.Element, name, defColor string, defOpacity float64) (Paint, error) {
	colorName := String(e, name, defColor)
	opacity := Float(e, name+"-opacity", defOpacity)

	if strings.EqualFold(strings.TrimSpace(colorName), None) {
		return NoPaint, nil
	}
	if opacity < 0 || opacity > 1 {
		return NoPaint, errors.Errorf("%s-opacity: %g is out of [0, 1]", name, opacity)
	}
	c, err := ParseColor(colorName)
	if err != nil {
		return NoPaint, errors.Wrap(err, name)
	}
	c.A = uint8(math.Round(opacity * 255))
	return Paint{Color: c, Set: true}, nil
}
