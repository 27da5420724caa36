package winding

import (
	"fmt"
	"io"
)

// layerColors approximate the KiCad canvas colors per copper layer.
var layerColors = map[Layer]string{
	FrontCopper: "#c83434",
	BackCopper:  "#4d7fc4",
	Inner1:      "#c2c200",
	Inner2:      "#c36aa0",
	Inner3:      "#999999",
	Inner4:      "#26a87c",
}

// svgPoint flips the Y axis: SVG is Y-down.
func svgPoint(p Point) (x, y string) {
	return fmtMM(p.X), fmtMM(-p.Y)
}

// WriteSVG serializes the winding as a standalone SVG document: one
// stroked path with round caps and joins, plus a dot at each terminal.
// Units are millimeters and the viewBox is fitted to the copper extents.
func WriteSVG(w io.Writer, result SpiralResult, layer Layer, trackWidth float64) error {
	if err := checkLayer(layer); err != nil {
		return err
	}
	if trackWidth <= 0 {
		return fmt.Errorf("%w: track width %v must be > 0", ErrInvalidGeometry, trackWidth)
	}
	if len(result.Segments) == 0 {
		return fmt.Errorf("%w: empty segment sequence", ErrPreconditionViolated)
	}

	b := PathBounds(result.Segments, trackWidth).Grow(trackWidth)
	// Y flip swaps which bound is the top.
	minX, minY := b.MinX, -b.MaxY

	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="%s %s %s %s">`+"\n",
		fmtMM(b.Width()), fmtMM(b.Height()),
		fmtMM(minX), fmtMM(minY), fmtMM(b.Width()), fmtMM(b.Height())); err != nil {
		return err
	}

	sx, sy := svgPoint(result.Segments[0].Start())
	d := fmt.Sprintf("M %s %s", sx, sy)
	for _, seg := range result.Segments {
		switch s := seg.(type) {
		case Line:
			x, y := svgPoint(s.To)
			d += fmt.Sprintf(" L %s %s", x, y)
		case Arc:
			// Quarter circle, so never the large arc. The Y flip turns the
			// counter-clockwise sweep into SVG's negative-angle direction.
			x, y := svgPoint(s.End())
			sweep := 0
			if s.Dir == Clockwise {
				sweep = 1
			}
			r := fmtMM(s.Radius)
			d += fmt.Sprintf(" A %s %s 0 0 %d %s %s", r, r, sweep, x, y)
		}
	}

	color := layerColors[layer]
	if _, err := fmt.Fprintf(w,
		`  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
		d, color, fmtMM(trackWidth)); err != nil {
		return err
	}

	for _, term := range []Point{result.OuterTerminal, result.InnerTerminal} {
		x, y := svgPoint(term)
		if _, err := fmt.Fprintf(w, `  <circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			x, y, fmtMM(trackWidth*0.75), color); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</svg>")
	return err
}

// SVGSink returns a sink writing SVG documents to w.
func SVGSink(w io.Writer, trackWidth float64) SinkFunc {
	return func(result SpiralResult, layer Layer) error {
		return WriteSVG(w, result, layer, trackWidth)
	}
}
