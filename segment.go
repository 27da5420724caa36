package winding

import "math"

// Direction is the sweep direction of a circular arc.
type Direction int

const (
	// CounterClockwise sweeps with increasing angle (positive in the Y-up frame).
	CounterClockwise Direction = iota
	// Clockwise sweeps with decreasing angle.
	Clockwise
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

// Segment is a single element of a winding path: either a straight Line
// or a circular Arc. The set of implementations is closed.
type Segment interface {
	// Start returns the point where traversal of the segment begins.
	Start() Point
	// End returns the point where traversal of the segment ends.
	End() Point

	isSegment()
}

// Line is a straight segment from From to To.
type Line struct {
	From Point
	To   Point
}

func (Line) isSegment() {}

// Start returns the line's first point.
func (l Line) Start() Point { return l.From }

// End returns the line's last point.
func (l Line) End() Point { return l.To }

// Length returns the length of the line.
func (l Line) Length() float64 { return l.From.Distance(l.To) }

// Arc is a circular arc swept from StartAngle to EndAngle around Center.
// Angles are radians, counter-clockwise positive, 0 along +x. Arcs produced
// by this package are always quarter circles swept counter-clockwise, with
// EndAngle = StartAngle + pi/2.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Dir        Direction
}

func (Arc) isSegment() {}

// PointAt returns the point on the arc's circle at the given angle.
func (a Arc) PointAt(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// Start returns the arc's first point.
func (a Arc) Start() Point { return a.PointAt(a.StartAngle) }

// End returns the arc's last point.
func (a Arc) End() Point { return a.PointAt(a.EndAngle) }

// Mid returns the point halfway along the arc. KiCad describes arcs by
// start, mid and end points, so sinks need this alongside the endpoints.
func (a Arc) Mid() Point {
	return a.PointAt((a.StartAngle + a.EndAngle) / 2)
}

// Sweep returns the swept angle in radians, positive for counter-clockwise.
func (a Arc) Sweep() float64 {
	if a.Dir == Clockwise {
		return -(a.EndAngle - a.StartAngle)
	}
	return a.EndAngle - a.StartAngle
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	return math.Abs(a.Sweep()) * a.Radius
}
