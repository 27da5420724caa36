package winding

import "math"

// WindowSpec describes the rounded rectangle a winding turn runs along:
// overall width and height plus the corner fillet radius, all millimeters.
type WindowSpec struct {
	Width        float64
	Height       float64
	CornerRadius float64
}

// MaxCornerRadius returns the largest corner radius the window can carry,
// half the smaller dimension.
func (w WindowSpec) MaxCornerRadius() float64 {
	return math.Min(w.Width, w.Height) / 2
}

// ClampRadius returns the window with its corner radius clamped into
// [0, MaxCornerRadius]. A radius larger than half the smaller dimension
// cannot describe a rounded rectangle; clamping is the documented,
// deterministic recovery policy.
func (w WindowSpec) ClampRadius() WindowSpec {
	if limit := w.MaxCornerRadius(); w.CornerRadius > limit {
		w.CornerRadius = limit
	}
	if w.CornerRadius < 0 {
		w.CornerRadius = 0
	}
	return w
}

// Inset returns the window shrunk uniformly by d on every side: width and
// height decrease by 2d, the corner radius decreases by d and clamps at 0.
// A negative d grows the window.
func (w WindowSpec) Inset(d float64) WindowSpec {
	return WindowSpec{
		Width:        w.Width - 2*d,
		Height:       w.Height - 2*d,
		CornerRadius: math.Max(0, w.CornerRadius-d),
	}
}
