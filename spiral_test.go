package winding

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// splitLaps partitions the result into laps and stitch segments. Lap
// segments are axis-parallel lines and quarter arcs; stitches are the
// only diagonal lines.
func splitLaps(segs []Segment) (laps [][]Segment, stitches []Line) {
	current := []Segment{}
	for _, seg := range segs {
		if l, ok := seg.(Line); ok {
			dx := math.Abs(l.To.X - l.From.X)
			dy := math.Abs(l.To.Y - l.From.Y)
			if dx > 1e-9 && dy > 1e-9 {
				stitches = append(stitches, l)
				laps = append(laps, current)
				current = []Segment{}
				continue
			}
		}
		current = append(current, seg)
	}
	laps = append(laps, current)
	return laps, stitches
}

func lapBounds(lap []Segment) Rect {
	return PathBounds(lap, 0)
}

func TestComputeSpiral_ExampleScenario(t *testing.T) {
	result, err := ComputeSpiral(validParams())
	if err != nil {
		t.Fatalf("ComputeSpiral() failed: %v", err)
	}

	laps, stitches := splitLaps(result.Segments)
	if len(laps) != 3 {
		t.Fatalf("got %d laps, want 3", len(laps))
	}
	if len(stitches) != 2 {
		t.Errorf("got %d stitches, want 2", len(stitches))
	}

	// Each lap's window is exactly one pitch (0.4) smaller on each side.
	for i := 1; i < len(laps); i++ {
		prev, cur := lapBounds(laps[i-1]), lapBounds(laps[i])
		for _, d := range []float64{
			cur.MinX - prev.MinX,
			cur.MinY - prev.MinY,
			prev.MaxX - cur.MaxX,
			prev.MaxY - cur.MaxY,
		} {
			if math.Abs(d-0.4) > 1e-9 {
				t.Errorf("lap %d inset by %v on some side, want 0.4", i+1, d)
			}
		}
	}

	// Outermost lap runs along the full 20x15 window.
	outer := lapBounds(laps[0])
	if outer.Width() != 20 || outer.Height() != 15 {
		t.Errorf("outer lap bounds %vx%v, want 20x15", outer.Width(), outer.Height())
	}

	// The outer terminal sits on the left edge near the top: one pitch
	// below the top-left corner arc.
	wantOuter := Pt(-10, 7.5-2-0.4)
	if !result.OuterTerminal.Approx(wantOuter, 1e-9) {
		t.Errorf("OuterTerminal = %v, want %v", result.OuterTerminal, wantOuter)
	}
	if !result.Segments[0].Start().Approx(result.OuterTerminal, 1e-9) {
		t.Errorf("path does not start at the outer terminal")
	}
	if !result.Segments[len(result.Segments)-1].End().Approx(result.InnerTerminal, 1e-9) {
		t.Errorf("path does not end at the inner terminal")
	}

	assertContiguous(t, result.Segments)
	assertTangent(t, result.Segments)
}

func TestComputeSpiral_TurnCountFidelity(t *testing.T) {
	for _, start := range []StartPosition{LeftTop, LeftCenter, LeftBottom} {
		t.Run(start.String(), func(t *testing.T) {
			// Through five turns the corner radius stays positive, so
			// every lap carries its four fillets.
			for turns := 1; turns <= 5; turns++ {
				p := validParams()
				p.Start = start
				p.Turns = turns
				result, err := ComputeSpiral(p)
				if err != nil {
					t.Fatalf("turns=%d: %v", turns, err)
				}
				laps, stitches := splitLaps(result.Segments)
				if len(laps) != turns || len(stitches) != turns-1 {
					t.Errorf("turns=%d: got %d laps and %d stitches", turns, len(laps), len(stitches))
				}
				_, arcs := countKinds(result.Segments)
				if arcs != 4*turns {
					t.Errorf("turns=%d: got %d arcs, want %d", turns, arcs, 4*turns)
				}
			}
		})
	}
}

func TestComputeSpiral_Idempotent(t *testing.T) {
	a, err := ComputeSpiral(validParams())
	if err != nil {
		t.Fatalf("ComputeSpiral() failed: %v", err)
	}
	b, err := ComputeSpiral(validParams())
	if err != nil {
		t.Fatalf("ComputeSpiral() failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different outputs")
	}
}

func TestComputeSpiral_OffCenter(t *testing.T) {
	p := validParams()
	p.Center = Pt(35, -12)
	result, err := ComputeSpiral(p)
	if err != nil {
		t.Fatalf("ComputeSpiral() failed: %v", err)
	}
	b := PathBounds(result.Segments, 0)
	if cx := (b.MinX + b.MaxX) / 2; math.Abs(cx-35) > 1e-9 {
		t.Errorf("bounds center x = %v, want 35", cx)
	}
	if cy := (b.MinY + b.MaxY) / 2; math.Abs(cy-(-12)) > 1e-9 {
		t.Errorf("bounds center y = %v, want -12", cy)
	}
}

func TestComputeSpiral_RejectsInvalid(t *testing.T) {
	p := WindingParams{
		Window:     WindowSpec{Width: 1, Height: 1, CornerRadius: 0.6},
		TrackWidth: 0.5,
		Guard:      0.5,
		Turns:      5,
	}
	result, err := ComputeSpiral(p)
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("ComputeSpiral() = %v, want ErrInvalidGeometry", err)
	}
	if len(result.Segments) != 0 {
		t.Errorf("failed computation returned %d segments, want none", len(result.Segments))
	}
}

// A corner radius at or clamped to half the smaller dimension rounds the
// whole left edge away. Such inputs must fail validation up front rather
// than exhaust on the first turn.
func TestComputeSpiral_RadiusConsumesLeftEdge(t *testing.T) {
	clamped := validParams()
	clamped.Window.CornerRadius = 12 // clamps to 7.5

	maximal := validParams()
	maximal.Window = WindowSpec{Width: 20, Height: 10, CornerRadius: 5}
	maximal.Start = LeftCenter

	for _, tt := range []struct {
		name   string
		params WindingParams
	}{
		{"clamped radius", clamped},
		{"maximal radius", maximal},
	} {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeSpiral(tt.params)
			if errors.Is(err, ErrGeometryExhausted) {
				t.Fatalf("ComputeSpiral() = %v, exhaustion escaped validation", err)
			}
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("ComputeSpiral() = %v, want ErrInvalidGeometry", err)
			}
			if len(result.Segments) != 0 {
				t.Errorf("failed computation returned %d segments, want none", len(result.Segments))
			}
		})
	}
}

// When the clamped radius still leaves a straight span on the left edge,
// clamping is a full recovery and the spiral completes.
func TestComputeSpiral_ClampedRadiusCompletes(t *testing.T) {
	p := validParams()
	p.Window = WindowSpec{Width: 10, Height: 15, CornerRadius: 12} // clamps to 5

	result, err := ComputeSpiral(p)
	if err != nil {
		t.Fatalf("ComputeSpiral() failed: %v", err)
	}
	laps, _ := splitLaps(result.Segments)
	if len(laps) != p.Turns {
		t.Fatalf("got %d laps, want %d", len(laps), p.Turns)
	}
	assertContiguous(t, result.Segments)
	assertTangent(t, result.Segments)
}

// The assembler guards each turn even when validation was bypassed.
func TestAssemble_GeometryExhausted(t *testing.T) {
	p := WindingParams{
		Window:     WindowSpec{Width: 20, Height: 2.6, CornerRadius: 0},
		TrackWidth: 0.25,
		Guard:      0.25,
		Turns:      3,
		Start:      LeftCenter,
	}
	if err := p.Validate(); err == nil {
		t.Fatal("test input unexpectedly passes validation")
	}

	result, err := assemble(p)
	if !errors.Is(err, ErrGeometryExhausted) {
		t.Fatalf("assemble() = %v, want ErrGeometryExhausted", err)
	}
	var exhausted *GeometryExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("assemble() error %T is not *GeometryExhaustedError", err)
	}
	if exhausted.Completed != 2 {
		t.Errorf("Completed = %d, want 2", exhausted.Completed)
	}
	if len(result.Segments) != 0 {
		t.Errorf("failed computation returned %d segments, want none", len(result.Segments))
	}
}

// Once the per-turn shrink consumes the whole corner radius, inner laps
// continue with sharp corners instead of inverted arcs.
func TestComputeSpiral_RadiusClampsToZero(t *testing.T) {
	p := validParams()
	p.Turns = 6 // radius 2 minus five 0.4 pitches reaches exactly 0
	result, err := ComputeSpiral(p)
	if err != nil {
		t.Fatalf("ComputeSpiral() failed: %v", err)
	}
	laps, _ := splitLaps(result.Segments)
	if len(laps) != 6 {
		t.Fatalf("got %d laps, want 6", len(laps))
	}
	if _, arcs := countKinds(laps[5]); arcs != 0 {
		t.Errorf("innermost lap has %d arcs, want sharp corners", arcs)
	}
	if _, arcs := countKinds(laps[4]); arcs != 4 {
		t.Errorf("lap 5 has %d arcs, want 4", arcs)
	}
	assertContiguous(t, result.Segments)
	assertNoSelfIntersection(t, result.Segments)
}

func TestComputeSpiral_DegenerateRadius(t *testing.T) {
	p := validParams()
	p.Window.CornerRadius = 0
	result, err := ComputeSpiral(p)
	if err != nil {
		t.Fatalf("ComputeSpiral() failed: %v", err)
	}
	lines, arcs := countKinds(result.Segments)
	if arcs != 0 {
		t.Fatalf("got %d arcs, want none", arcs)
	}
	// 4 lines per lap plus one stitch between consecutive laps.
	if want := 4*p.Turns + (p.Turns - 1); lines != want {
		t.Errorf("got %d lines, want %d", lines, want)
	}
	assertContiguous(t, result.Segments)
}

func TestComputeSpiral_NoSelfIntersection(t *testing.T) {
	for _, start := range []StartPosition{LeftTop, LeftCenter, LeftBottom} {
		t.Run(start.String(), func(t *testing.T) {
			p := validParams()
			p.Start = start
			p.Turns = 5
			result, err := ComputeSpiral(p)
			if err != nil {
				t.Fatalf("ComputeSpiral() failed: %v", err)
			}
			assertNoSelfIntersection(t, result.Segments)
		})
	}
}

// assertNoSelfIntersection flattens every segment and checks that no two
// non-adjacent segments come closer than a hair's breadth. Bounding boxes
// prefilter the quadratic pair scan.
func assertNoSelfIntersection(t *testing.T, segs []Segment) {
	t.Helper()
	const clearance = 1e-6

	flat := make([][]Point, len(segs))
	boxes := make([]Rect, len(segs))
	for i, seg := range segs {
		flat[i] = appendFlattened([]Point{seg.Start()}, seg, 1e-4)
		boxes[i] = SegmentBounds(seg).Grow(clearance)
	}

	for i := 0; i < len(segs); i++ {
		for j := i + 2; j < len(segs); j++ {
			if !boxes[i].Overlaps(boxes[j]) {
				continue
			}
			if d := polylineDistance(flat[i], flat[j]); d < clearance {
				t.Errorf("segments %d and %d pass within %v of each other", i, j, d)
			}
		}
	}
}

func BenchmarkComputeSpiral(b *testing.B) {
	p := validParams()
	p.Turns = 10
	p.TrackWidth = 0.1
	p.Guard = 0.1
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ComputeSpiral(p); err != nil {
			b.Fatal(err)
		}
	}
}

func polylineDistance(a, b []Point) float64 {
	closest := math.Inf(1)
	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			if d := segSegDistance(a[i], a[i+1], b[j], b[j+1]); d < closest {
				closest = d
			}
		}
	}
	return closest
}

// segSegDistance returns the minimum distance between two line segments,
// zero when they cross.
func segSegDistance(p1, p2, q1, q2 Point) float64 {
	if segmentsCross(p1, p2, q1, q2) {
		return 0
	}
	return math.Min(
		math.Min(pointSegDistance(p1, q1, q2), pointSegDistance(p2, q1, q2)),
		math.Min(pointSegDistance(q1, p1, p2), pointSegDistance(q2, p1, p2)),
	)
}

func segmentsCross(p1, p2, q1, q2 Point) bool {
	d1 := q2.Sub(q1).Cross(p1.Sub(q1))
	d2 := q2.Sub(q1).Cross(p2.Sub(q1))
	d3 := p2.Sub(p1).Cross(q1.Sub(p1))
	d4 := p2.Sub(p1).Cross(q2.Sub(p1))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func pointSegDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}
