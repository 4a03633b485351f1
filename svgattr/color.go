package svgattr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// None is the color keyword disabling a paint.
const None = "none"

var (
	// ErrNone is returned by ParseColor for the "none" keyword,
	// which is not a color.
	ErrNone = errors.New("none is not a color")

	errUnknownColor = errors.New("unknown color")
)

// ParseColor parses an SVG color: one of the SVG 1.1 color
// names, #rgb, #rrggbb, or rgb(r, g, b) with integer or
// percentage components. The returned color is opaque.
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == None {
		return color.NRGBA{}, ErrNone
	}
	if cn, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: cn.R, G: cn.G, B: cn.B, A: 0xFF}, nil
	}
	if strings.HasPrefix(v, "#") {
		return parseHexColor(v[1:])
	}
	if args := strings.TrimPrefix(v, "rgb("); args != v && strings.HasSuffix(args, ")") {
		return parseRGBColor(strings.TrimSuffix(args, ")"))
	}
	return color.NRGBA{}, errors.Wrapf(errUnknownColor, "%q", s)
}

func parseHexColor(hex string) (color.NRGBA, error) {
	switch len(hex) {
	case 3:
		// each digit is duplicated
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.NRGBA{}, errors.Wrapf(errUnknownColor, "invalid hex notation #%s", hex)
	}
	var channels [3]uint8
	for i := range channels {
		c, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(errUnknownColor, "invalid hex notation #%s", hex)
		}
		channels[i] = uint8(c)
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: 0xFF}, nil
}

func parseRGBColor(args string) (color.NRGBA, error) {
	vals := strings.Split(args, ",")
	if len(vals) != 3 {
		return color.NRGBA{}, errors.Wrapf(errUnknownColor, "rgb(%s): expected 3 components", args)
	}
	var channels [3]uint8
	for i, v := range vals {
		c, err := parseColorValue(strings.TrimSpace(v))
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(errUnknownColor, "rgb(%s): %s", args, err)
		}
		channels[i] = c
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: 0xFF}, nil
}

// parseColorValue accepts an integer in [0, 255] or a percentage.
func parseColorValue(v string) (uint8, error) {
	if p := strings.TrimSuffix(v, "%"); p != v {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 100 {
			return 0, fmt.Errorf("invalid percentage %q", v)
		}
		return uint8((n*0xFF + 50) / 100), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("invalid channel %q", v)
	}
	return uint8(n), nil
}
