package winding

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// fmtMM formats a millimeter coordinate the way KiCad board files do:
// rounded to nanometer resolution with trailing zeros dropped.
func fmtMM(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		// Avoid "-0".
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// kicadPoint flips the Y axis: board files are Y-down.
func kicadPoint(p Point) (x, y string) {
	return fmtMM(p.X), fmtMM(-p.Y)
}

// WriteKiCad serializes the winding as a minimal KiCad board file whose
// track list holds one node per segment: straight traces as
// (segment ...) and curved ones as (arc ...) described by start, mid and
// end points. The output loads directly in pcbnew; the tracks can also be
// pasted into an existing board.
func WriteKiCad(w io.Writer, result SpiralResult, layer Layer, trackWidth float64) error {
	if err := checkLayer(layer); err != nil {
		return err
	}
	if trackWidth <= 0 {
		return fmt.Errorf("%w: track width %v must be > 0", ErrInvalidGeometry, trackWidth)
	}

	width := fmtMM(trackWidth)

	if _, err := fmt.Fprintf(w, `(kicad_pcb
  (version 20221018)
  (generator "windinggen")
  (general (thickness 1.6))
  (paper "A4")
  (layers
    (0 "F.Cu" signal)
    (1 "In1.Cu" signal)
    (2 "In2.Cu" signal)
    (3 "In3.Cu" signal)
    (4 "In4.Cu" signal)
    (31 "B.Cu" signal)
  )
  (net 0 "")
`); err != nil {
		return err
	}

	for _, seg := range result.Segments {
		var err error
		switch s := seg.(type) {
		case Line:
			x1, y1 := kicadPoint(s.From)
			x2, y2 := kicadPoint(s.To)
			_, err = fmt.Fprintf(w,
				"  (segment (start %s %s) (end %s %s) (width %s) (layer %q) (net 0))\n",
				x1, y1, x2, y2, width, layer)
		case Arc:
			x1, y1 := kicadPoint(s.Start())
			xm, ym := kicadPoint(s.Mid())
			x2, y2 := kicadPoint(s.End())
			_, err = fmt.Fprintf(w,
				"  (arc (start %s %s) (mid %s %s) (end %s %s) (width %s) (layer %q) (net 0))\n",
				x1, y1, xm, ym, x2, y2, width, layer)
		default:
			err = fmt.Errorf("%w: unknown segment type %T", ErrPreconditionViolated, seg)
		}
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, ")")
	return err
}

// KiCadSink returns a sink writing KiCad board files to w.
func KiCadSink(w io.Writer, trackWidth float64) SinkFunc {
	return func(result SpiralResult, layer Layer) error {
		return WriteKiCad(w, result, layer, trackWidth)
	}
}
