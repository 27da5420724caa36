// Command windinggen synthesizes a planar winding spiral and renders it
// to a KiCad board file, an SVG drawing or a PNG image, chosen by the
// output file extension.
//
// Usage:
//
//	windinggen -width 20 -height 16 -turns 6 -output winding.kicad_pcb
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	winding "github.com/upb-lea/kicad-planar-winding-generator"
)

func main() {
	var (
		centerX    = flag.Float64("center-x", 0, "winding center x (mm)")
		centerY    = flag.Float64("center-y", 0, "winding center y (mm)")
		width      = flag.Float64("width", 20.0, "window width (mm)")
		height     = flag.Float64("height", 16.0, "window height (mm)")
		radius     = flag.Float64("radius", 2.0, "corner radius (mm)")
		gap        = flag.Float64("gap", 0.30, "inner clearance gap (mm)")
		trackWidth = flag.Float64("track-width", 0.25, "track width (mm)")
		guard      = flag.Float64("guard", 0.25, "track-to-track spacing (mm)")
		turns      = flag.Int("turns", 6, "number of turns")
		start      = flag.String("start", "left-center", "start position: left-top, left-center or left-bottom")
		layer      = flag.String("layer", "F.Cu", "target copper layer")
		pixels     = flag.Int("pixels", 800, "image width for PNG output")
		output     = flag.String("output", "winding.svg", "output file (.kicad_pcb, .svg or .png)")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		winding.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	startPos, err := winding.ParseStartPosition(*start)
	if err != nil {
		log.Fatalf("Invalid start position: %v", err)
	}

	result, err := winding.ComputeSpiral(winding.WindingParams{
		Center:     winding.Pt(*centerX, *centerY),
		Window:     winding.WindowSpec{Width: *width, Height: *height, CornerRadius: *radius},
		TrackWidth: *trackWidth,
		Guard:      *guard,
		InnerGap:   *gap,
		Turns:      *turns,
		Start:      startPos,
	})
	if err != nil {
		log.Fatalf("Failed to compute spiral: %v", err)
	}

	if err := render(result, winding.Layer(*layer), *output, *trackWidth, *pixels); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	log.Printf("Winding with %d turns written to %s (%d segments)\n",
		*turns, *output, len(result.Segments))
}

func render(result winding.SpiralResult, layer winding.Layer, path string, trackWidth float64, pixels int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var sink winding.RenderSink
	switch filepath.Ext(path) {
	case ".kicad_pcb":
		sink = winding.KiCadSink(f, trackWidth)
	case ".svg":
		sink = winding.SVGSink(f, trackWidth)
	case ".png":
		sink = winding.PNGSink(f, trackWidth, pixels)
	default:
		f.Close()
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
	if err := sink.Render(result, layer); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
