package winding

import "math"

// Rect is an axis-aligned bounding box in board coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// emptyRect returns an inverted rectangle that expands to the first point
// it absorbs.
func emptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Empty reports whether the rectangle contains no points.
func (r Rect) Empty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Expand grows the rectangle to include p.
func (r Rect) Expand(p Point) Rect {
	return Rect{
		MinX: math.Min(r.MinX, p.X),
		MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X),
		MaxY: math.Max(r.MaxY, p.Y),
	}
}

// Grow pads the rectangle by d on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{
		MinX: r.MinX - d, MinY: r.MinY - d,
		MaxX: r.MaxX + d, MaxY: r.MaxY + d,
	}
}

// Overlaps reports whether two rectangles intersect.
func (r Rect) Overlaps(s Rect) bool {
	return r.MinX <= s.MaxX && s.MinX <= r.MaxX &&
		r.MinY <= s.MaxY && s.MinY <= r.MaxY
}

// SegmentBounds returns the bounding box of a single segment. Arc extents
// account for the axis crossings inside the sweep, not just the endpoints.
func SegmentBounds(seg Segment) Rect {
	b := emptyRect().Expand(seg.Start()).Expand(seg.End())
	a, ok := seg.(Arc)
	if !ok {
		return b
	}
	// Include every quadrant boundary the sweep passes through.
	lo, hi := a.StartAngle, a.EndAngle
	if lo > hi {
		lo, hi = hi, lo
	}
	for q := math.Floor(lo/(math.Pi/2)) * (math.Pi / 2); q <= hi+epsilon; q += math.Pi / 2 {
		if q >= lo-epsilon {
			b = b.Expand(a.PointAt(q))
		}
	}
	return b
}

// PathBounds returns the bounding box of the whole segment sequence,
// optionally grown by half the track width to cover the copper extents.
func PathBounds(segs []Segment, trackWidth float64) Rect {
	b := emptyRect()
	for _, seg := range segs {
		sb := SegmentBounds(seg)
		b = b.Expand(Pt(sb.MinX, sb.MinY)).Expand(Pt(sb.MaxX, sb.MaxY))
	}
	if b.Empty() {
		return Rect{}
	}
	return b.Grow(trackWidth / 2)
}
