// Package winding synthesizes rounded-rectangular spiral paths for planar
// inductor and transformer windings.
//
// # Overview
//
// Given a rectangular window (width, height, corner radius), a track width,
// an inter-track guard spacing, an inner clearance gap and a turn count,
// ComputeSpiral produces an ordered sequence of straight and circular-arc
// segments tracing a continuous spiral suitable for etching as a copper
// winding. The computation is a pure function of its inputs: no state is
// kept between invocations and concurrent calls need no coordination.
//
// # Quick Start
//
//	import winding "github.com/upb-lea/kicad-planar-winding-generator"
//
//	result, err := winding.ComputeSpiral(winding.WindingParams{
//	    Window:     winding.WindowSpec{Width: 20, Height: 15, CornerRadius: 2},
//	    TrackWidth: 0.2,
//	    Guard:      0.2,
//	    InnerGap:   0.5,
//	    Turns:      3,
//	    Start:      winding.LeftTop,
//	})
//	if err != nil {
//	    // winding.ErrInvalidGeometry, winding.ErrGeometryExhausted, ...
//	}
//	for _, seg := range result.Segments {
//	    // seg is a winding.Line or winding.Arc
//	}
//
// Rendering sinks turn a SpiralResult into a concrete artifact: WriteKiCad
// emits KiCad s-expression track nodes, WriteSVG emits a stroked SVG path,
// and Rasterize paints the winding into an image.RGBA.
//
// # Coordinate System
//
// All lengths are millimeters. The core works in a Y-up frame with angles
// in radians, counter-clockwise positive, 0 along +x. Sinks that target
// Y-down formats (KiCad, SVG, raster) flip the axis themselves.
package winding
