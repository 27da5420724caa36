package winding

import (
	"fmt"
	"math"
)

// lapFrame holds the derived geometry of one turn's rounded rectangle:
// the edge coordinates and the straight span of the left edge between the
// two left-hand corner arcs.
type lapFrame struct {
	leftX, rightX float64
	bottomY, topY float64
	radius        float64
	edgeBot       float64 // bottom end of the left/right straight edges
	edgeTop       float64 // top end of the left/right straight edges
	startY, endY  float64 // lap terminal heights on the left edge
}

// frameFor derives the lap frame for one turn. The lap starts at startY on
// the left edge and, after a full counter-clockwise traversal, ends at
// endY = startY + pitch on the same edge, leaving a one-pitch break for
// the transition to the next turn.
func frameFor(window WindowSpec, center Point, start StartPosition, pitch float64) lapFrame {
	hw, hh, r := window.Width/2, window.Height/2, window.CornerRadius
	f := lapFrame{
		leftX:   center.X - hw,
		rightX:  center.X + hw,
		bottomY: center.Y - hh,
		topY:    center.Y + hh,
		radius:  r,
	}
	f.edgeBot = f.bottomY + r
	f.edgeTop = f.topY - r
	switch start {
	case LeftTop:
		f.startY = f.edgeTop - pitch
		f.endY = f.edgeTop
	case LeftBottom:
		f.startY = f.edgeBot
		f.endY = f.edgeBot + pitch
	default: // LeftCenter
		f.startY = center.Y
		f.endY = center.Y + pitch
	}
	return f
}

// usable reports whether the frame can carry a lap plus its transition
// break: positive extents and terminal heights inside the straight span
// of the left edge.
func (f lapFrame) usable() bool {
	return f.rightX-f.leftX > epsilon &&
		f.topY-f.bottomY > epsilon &&
		f.startY >= f.edgeBot-epsilon &&
		f.endY <= f.edgeTop+epsilon
}

// startPoint is where traversal of the lap begins.
func (f lapFrame) startPoint() Point { return Pt(f.leftX, f.startY) }

// endPoint is where traversal of the lap ends.
func (f lapFrame) endPoint() Point { return Pt(f.leftX, f.endY) }

// buildLap traces one full counter-clockwise traversal of the rounded
// rectangle described by f: down the left edge, across the bottom, up the
// right edge and back across the top, with a quarter-circle fillet at each
// corner. Straight edge endpoints are inset from the nominal corners by
// exactly the corner radius, so every line is tangent to its adjacent
// arcs. Zero-length lines are omitted, and a zero radius degenerates the
// fillets to nothing rather than emitting zero-radius arcs.
//
// buildLap assumes pre-validated input and fails fast with
// ErrPreconditionViolated otherwise.
func buildLap(f lapFrame) ([]Segment, error) {
	if !f.usable() || f.radius < 0 || f.radius > (f.rightX-f.leftX)/2+epsilon ||
		f.radius > (f.topY-f.bottomY)/2+epsilon {
		return nil, fmt.Errorf("%w: unusable lap frame %+v", ErrPreconditionViolated, f)
	}

	r := f.radius
	segs := make([]Segment, 0, 9)

	line := func(from, to Point) {
		if from.Distance(to) > epsilon {
			segs = append(segs, Line{From: from, To: to})
		}
	}
	corner := func(cx, cy, startAngle float64) {
		if r > epsilon {
			segs = append(segs, Arc{
				Center:     Pt(cx, cy),
				Radius:     r,
				StartAngle: startAngle,
				EndAngle:   startAngle + math.Pi/2,
				Dir:        CounterClockwise,
			})
		}
	}

	// Left edge down from the start terminal.
	line(f.startPoint(), Pt(f.leftX, f.edgeBot))
	// Bottom-left fillet.
	corner(f.leftX+r, f.edgeBot, math.Pi)
	// Bottom edge.
	line(Pt(f.leftX+r, f.bottomY), Pt(f.rightX-r, f.bottomY))
	// Bottom-right fillet.
	corner(f.rightX-r, f.bottomY+r, 3*math.Pi/2)
	// Right edge up.
	line(Pt(f.rightX, f.edgeBot), Pt(f.rightX, f.edgeTop))
	// Top-right fillet.
	corner(f.rightX-r, f.topY-r, 0)
	// Top edge.
	line(Pt(f.rightX-r, f.topY), Pt(f.leftX+r, f.topY))
	// Top-left fillet, ending on the left edge.
	corner(f.leftX+r, f.edgeTop, math.Pi/2)
	// Left edge down to the end terminal.
	line(Pt(f.leftX, f.edgeTop), f.endPoint())

	return segs, nil
}
