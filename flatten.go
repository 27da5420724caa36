package winding

import "math"

// DefaultTolerance is the maximum chord deviation, in millimeters, used
// when flattening arcs to polylines.
const DefaultTolerance = 0.01

// arcSteps returns the number of chords needed to keep the sagitta of
// each chord under tol.
func arcSteps(a Arc, tol float64) int {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if a.Radius <= tol {
		return 1
	}
	maxStep := 2 * math.Acos(1-tol/a.Radius)
	n := int(math.Ceil(math.Abs(a.EndAngle-a.StartAngle) / maxStep))
	if n < 1 {
		n = 1
	}
	return n
}

// appendFlattened appends the polyline points of seg to pts, excluding
// the segment's start point.
func appendFlattened(pts []Point, seg Segment, tol float64) []Point {
	switch s := seg.(type) {
	case Line:
		return append(pts, s.To)
	case Arc:
		n := arcSteps(s, tol)
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			angle := s.StartAngle + t*(s.EndAngle-s.StartAngle)
			pts = append(pts, s.PointAt(angle))
		}
	}
	return pts
}

// FlattenPath converts a segment sequence into a single polyline with the
// given chord tolerance (DefaultTolerance if tol <= 0). The segments are
// assumed to be contiguous, as produced by ComputeSpiral.
func FlattenPath(segs []Segment, tol float64) []Point {
	if len(segs) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(segs)*8)
	pts = append(pts, segs[0].Start())
	for _, seg := range segs {
		pts = appendFlattened(pts, seg, tol)
	}
	return pts
}
