package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// MaxCoord bounds the coordinates stored in a Path.
// Differences of such coordinates, with stroke offsets added,
// still fit in 26.6 fixed point.
const MaxCoord = 1 << 22

// coordinates beyond this are only used to compute slopes
const floatLimit = 1e15

func clampAbs(v, limit float64) float64 { return math.Max(-limit, math.Min(limit, v)) }

// clipSegment restricts [a, b] to the square of half side MaxCoord
// (Liang-Barsky), so that the visible part keeps its slope.
// It returns false when the segment misses the square.
func clipSegment(a, b Point) (Point, Point, bool) {
	a = Point{clampAbs(a.X, floatLimit), clampAbs(a.Y, floatLimit)}
	b = Point{clampAbs(b.X, floatLimit), clampAbs(b.Y, floatLimit)}
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0., 1.
	for _, edge := range [4][2]float64{
		{-dx, a.X + MaxCoord},
		{dx, MaxCoord - a.X},
		{-dy, a.Y + MaxCoord},
		{dy, MaxCoord - a.Y},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, r)
		}
	}
	ca, cb := a, b // unclipped ends are kept exactly
	if t0 > 0 {
		ca = Point{a.X + t0*dx, a.Y + t0*dy}
	}
	if t1 < 1 {
		cb = Point{a.X + t1*dx, a.Y + t1*dy}
	}
	return ca, cb, true
}

// segmenter appends straight segments to a path, clipped
// with clipSegment. A new sub-path is started when clipping
// breaks the continuity.
type segmenter struct {
	path    *Path
	current Point           // unclipped current point
	pen     fixed.Point26_6 // last point written
}

func (s *segmenter) moveTo(p Point) {
	s.current, s.pen = p, p.Fixed()
	s.path.Start(s.pen)
}

func (s *segmenter) lineTo(p Point) {
	a, b, ok := clipSegment(s.current, p)
	s.current = p
	if !ok {
		return
	}
	if start := a.Fixed(); start != s.pen {
		s.path.Stop(false)
		s.path.Start(start)
	}
	s.pen = b.Fixed()
	s.path.Line(s.pen)
}
