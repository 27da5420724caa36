package winding

import (
	"fmt"
	"math"
)

// StartPosition selects where on the left edge the outermost turn begins.
// It determines where the external connection pad of the outer and inner
// terminals lands, which matters for routing to a via or pad outside the
// spiral.
type StartPosition int

const (
	// LeftTop anchors the winding just below the top-left corner arc.
	LeftTop StartPosition = iota
	// LeftCenter anchors the winding at the vertical midpoint of the left edge.
	LeftCenter
	// LeftBottom anchors the winding just above the bottom-left corner arc.
	LeftBottom
)

// String returns the start position name.
func (s StartPosition) String() string {
	switch s {
	case LeftTop:
		return "left-top"
	case LeftCenter:
		return "left-center"
	case LeftBottom:
		return "left-bottom"
	}
	return fmt.Sprintf("StartPosition(%d)", int(s))
}

// ParseStartPosition resolves a start position name ("left-top",
// "left-center", "left-bottom") to its value.
func ParseStartPosition(name string) (StartPosition, error) {
	switch name {
	case "left-top":
		return LeftTop, nil
	case "left-center":
		return LeftCenter, nil
	case "left-bottom":
		return LeftBottom, nil
	}
	return 0, fmt.Errorf("%w: unknown start position %q", ErrInvalidGeometry, name)
}

// WindingParams are the inputs to ComputeSpiral. All lengths are
// millimeters; Center is the geometric center of the winding window.
type WindingParams struct {
	Center     Point
	Window     WindowSpec
	TrackWidth float64
	Guard      float64
	InnerGap   float64
	Turns      int
	Start      StartPosition
}

// Pitch returns the radial distance between the centerlines of
// consecutive turns: track width plus guard spacing.
func (p WindingParams) Pitch() float64 {
	return p.TrackWidth + p.Guard
}

// Normalize range-checks the parameters and returns a copy with the
// corner radius clamped to the largest value the window can carry.
// It fails with ErrInvalidGeometry when the combination cannot yield a
// valid spiral. Normalize has no side effects.
func (p WindingParams) Normalize() (WindingParams, error) {
	switch {
	case p.Window.Width <= 0:
		return p, fmt.Errorf("%w: width %v must be > 0", ErrInvalidGeometry, p.Window.Width)
	case p.Window.Height <= 0:
		return p, fmt.Errorf("%w: height %v must be > 0", ErrInvalidGeometry, p.Window.Height)
	case p.TrackWidth <= 0:
		return p, fmt.Errorf("%w: track width %v must be > 0", ErrInvalidGeometry, p.TrackWidth)
	case p.Guard <= 0:
		return p, fmt.Errorf("%w: guard %v must be > 0", ErrInvalidGeometry, p.Guard)
	case p.InnerGap < 0:
		return p, fmt.Errorf("%w: inner gap %v must be >= 0", ErrInvalidGeometry, p.InnerGap)
	case p.Turns < 1:
		return p, fmt.Errorf("%w: turns %d must be >= 1", ErrInvalidGeometry, p.Turns)
	case p.Window.CornerRadius < 0:
		return p, fmt.Errorf("%w: corner radius %v must be >= 0", ErrInvalidGeometry, p.Window.CornerRadius)
	}

	if clamped := p.Window.ClampRadius(); clamped.CornerRadius != p.Window.CornerRadius {
		Logger().Warn("corner radius clamped to window",
			"radius", p.Window.CornerRadius, "max", clamped.CornerRadius)
		p.Window = clamped
	}

	// The terminal break must land on the straight span of the left
	// edge, between the fillets. The span is invariant under the
	// per-turn inset while the radius stays positive, so checking the
	// outermost window covers every turn.
	span := p.Window.Height - 2*p.Window.CornerRadius
	need := p.Pitch()
	if p.Start == LeftCenter {
		// The break sits above the midpoint, so only the upper half of
		// the span is available.
		need = 2 * p.Pitch()
	}
	if span < need {
		return p, fmt.Errorf("%w: corner radius %v leaves no room on the left edge of a %vx%v window for a %v break",
			ErrInvalidGeometry, p.Window.CornerRadius, p.Window.Width, p.Window.Height, p.Pitch())
	}

	// The spiral must not collapse or invert before completing the
	// requested turn count: after all turns plus the inner clearance the
	// remaining half-extent has to stay positive.
	consumed := float64(p.Turns)*p.Pitch() + p.InnerGap
	if rest := math.Min(p.Window.Width, p.Window.Height)/2 - consumed; rest <= 0 {
		return p, fmt.Errorf("%w: window %vx%v cannot fit %d turns at pitch %v with inner gap %v",
			ErrInvalidGeometry, p.Window.Width, p.Window.Height, p.Turns, p.Pitch(), p.InnerGap)
	}
	return p, nil
}

// Validate reports whether the parameters would be accepted by Normalize.
func (p WindingParams) Validate() error {
	_, err := p.Normalize()
	return err
}
