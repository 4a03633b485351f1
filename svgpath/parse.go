package svgpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errNotFinite = errors.New("value is not finite")

// ParseError reports an invalid chunk of a `points` or `d` attribute.
type ParseError struct {
	Chunk  string
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("invalid coordinates %q: %s", e.Chunk, e.Reason)
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err.(*strconv.NumError).Err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	return f, nil
}

// ParsePoints parses white space separated "x,y" pairs.
// An invalid pair is skipped and reported, the others are kept.
func ParsePoints(s string) (points []Point, errs []error) {
	for _, chunk := range strings.Fields(s) {
		coords := strings.Split(chunk, ",")
		if len(coords) != 2 {
			errs = append(errs, ParseError{chunk, "expected x,y"})
			continue
		}
		x, err := parseFloat(coords[0])
		if err != nil {
			errs = append(errs, ParseError{chunk, err.Error()})
			continue
		}
		y, err := parseFloat(coords[1])
		if err != nil {
			errs = append(errs, ParseError{chunk, err.Error()})
			continue
		}
		points = append(points, Point{x, y})
	}
	return points, errs
}

// ParseData compiles the `d` attribute of a path. Only the absolute
// commands M and L are supported, as separate tokens: "M x y L x y".
// Other tokens are ignored. The current point starts at (0,0),
// a command with invalid coordinates is skipped and reported,
// and a truncated trailing command is ignored.
func ParseData(d string) (path Path, errs []error) {
	tokens := strings.Fields(d)
	sg := segmenter{path: &path}
	started := false
	for i := 0; i < len(tokens); {
		cmd := tokens[i]
		if cmd != "M" && cmd != "L" {
			i++
			continue
		}
		if i+2 >= len(tokens) {
			break
		}
		x, errX := parseFloat(tokens[i+1])
		y, errY := parseFloat(tokens[i+2])
		chunk := strings.Join(tokens[i:i+3], " ")
		i += 3
		if errX != nil {
			errs = append(errs, ParseError{chunk, errX.Error()})
			continue
		} else if errY != nil {
			errs = append(errs, ParseError{chunk, errY.Error()})
			continue
		}

		switch cmd {
		case "M":
			sg.moveTo(Point{x, y})
		case "L":
			if !started {
				sg.moveTo(Point{})
			}
			sg.lineTo(Point{x, y})
		}
		started = true
	}
	return path, errs
}
