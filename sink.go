package winding

import "fmt"

// Layer identifies the copper layer a winding is rendered onto, by its
// KiCad name.
type Layer string

// Copper layers a winding can target.
const (
	FrontCopper Layer = "F.Cu"
	BackCopper  Layer = "B.Cu"
	Inner1      Layer = "In1.Cu"
	Inner2      Layer = "In2.Cu"
	Inner3      Layer = "In3.Cu"
	Inner4      Layer = "In4.Cu"
)

// copperLayerIDs maps layer names to KiCad board layer numbers.
var copperLayerIDs = map[Layer]int{
	FrontCopper: 0,
	Inner1:      1,
	Inner2:      2,
	Inner3:      3,
	Inner4:      4,
	BackCopper:  31,
}

// Valid reports whether the layer is one of the supported copper layers.
func (l Layer) Valid() bool {
	_, ok := copperLayerIDs[l]
	return ok
}

// RenderSink materializes a synthesized winding on some backing medium:
// a board file, a vector image, a raster image. Each Line becomes a
// straight copper trace and each Arc a curved one, on the given layer.
type RenderSink interface {
	Render(result SpiralResult, layer Layer) error
}

// SinkFunc adapts a function to the RenderSink interface.
type SinkFunc func(result SpiralResult, layer Layer) error

// Render calls f.
func (f SinkFunc) Render(result SpiralResult, layer Layer) error {
	return f(result, layer)
}

// checkLayer rejects layers outside the supported copper set.
func checkLayer(layer Layer) error {
	if !layer.Valid() {
		return fmt.Errorf("winding: unsupported layer %q", layer)
	}
	return nil
}
