package winding

// SpiralResult is the synthesized winding: one continuous open path from
// the outer terminal to the inner terminal, traversed outside-in.
type SpiralResult struct {
	// Segments is the ordered segment sequence, including the stitch
	// lines between consecutive turns.
	Segments []Segment
	// OuterTerminal is the very first point of the path, on the left
	// edge of the outermost turn.
	OuterTerminal Point
	// InnerTerminal is the very last point of the path.
	InnerTerminal Point
}

// ComputeSpiral validates params and synthesizes the winding path.
//
// Turn 1 is the outermost lap at the full window size; each subsequent
// turn's window is the previous one shrunk uniformly on all sides by the
// pitch (track width + guard), with the corner radius clamping at zero.
// Consecutive laps are joined by a straight stitch segment on the left
// edge, covering one pitch radially, so the result is a single open path
// rather than concentric rings.
//
// Errors: ErrInvalidGeometry for inputs rejected by validation,
// ErrGeometryExhausted (a *GeometryExhaustedError) when a shrunk turn
// window becomes unusable despite validation, and ErrPreconditionViolated
// for internal contract violations. A failed computation yields no
// segments.
func ComputeSpiral(params WindingParams) (SpiralResult, error) {
	params, err := params.Normalize()
	if err != nil {
		return SpiralResult{}, err
	}
	return assemble(params)
}

// assemble drives the lap builder once per turn and stitches the laps
// into one open path. It expects normalized params but independently
// guards every turn against an unusable window.
func assemble(params WindingParams) (SpiralResult, error) {
	log := Logger()
	pitch := params.Pitch()
	window := params.Window

	var (
		segs []Segment
		prev lapFrame
	)
	result := SpiralResult{}

	for turn := 1; turn <= params.Turns; turn++ {
		frame := frameFor(window, params.Center, params.Start, pitch)
		// Validation should make exhaustion unreachable, but the shrink
		// loop defends independently: the assembler and validator may sit
		// on opposite sides of a caller boundary.
		if !frame.usable() {
			return SpiralResult{}, &GeometryExhaustedError{Completed: turn - 1}
		}
		log.Debug("building turn",
			"turn", turn,
			"width", window.Width,
			"height", window.Height,
			"radius", window.CornerRadius)

		if turn > 1 {
			segs = append(segs, Line{From: prev.endPoint(), To: frame.startPoint()})
		} else {
			result.OuterTerminal = frame.startPoint()
		}

		lap, err := buildLap(frame)
		if err != nil {
			return SpiralResult{}, err
		}
		segs = append(segs, lap...)

		prev = frame
		window = window.Inset(pitch)
	}

	result.Segments = segs
	result.InnerTerminal = prev.endPoint()
	return result, nil
}
