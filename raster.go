package winding

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// Raster background color, a dark board-viewer navy.
var rasterBackground = color.RGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 0xff}

// rasterColors are opaque per-layer stroke colors for raster output.
var rasterColors = map[Layer]color.RGBA{
	FrontCopper: {R: 0xc8, G: 0x34, B: 0x34, A: 0xff},
	BackCopper:  {R: 0x4d, G: 0x7f, B: 0xc4, A: 0xff},
	Inner1:      {R: 0xc2, G: 0xc2, B: 0x00, A: 0xff},
	Inner2:      {R: 0xc3, G: 0x6a, B: 0xa0, A: 0xff},
	Inner3:      {R: 0x99, G: 0x99, B: 0x99, A: 0xff},
	Inner4:      {R: 0x26, G: 0xa8, B: 0x7c, A: 0xff},
}

// Rasterize paints the winding into a new RGBA image widthPx pixels wide,
// with the height chosen to preserve aspect ratio. The stroked centerline
// is filled with golang.org/x/image/vector: the flattened path is stamped
// as overlapping quads with round caps at every joint, which the
// rasterizer's saturating coverage merges into one solid stroke.
func Rasterize(result SpiralResult, layer Layer, trackWidth float64, widthPx int) (*image.RGBA, error) {
	if err := checkLayer(layer); err != nil {
		return nil, err
	}
	if trackWidth <= 0 || widthPx < 8 {
		return nil, fmt.Errorf("%w: track width %v and pixel width %d must be positive",
			ErrInvalidGeometry, trackWidth, widthPx)
	}
	if len(result.Segments) == 0 {
		return nil, fmt.Errorf("%w: empty segment sequence", ErrPreconditionViolated)
	}

	b := PathBounds(result.Segments, trackWidth).Grow(trackWidth)
	scale := float64(widthPx) / b.Width()
	heightPx := int(math.Ceil(b.Height() * scale))
	if heightPx < 1 {
		heightPx = 1
	}

	// Board mm to pixel space, Y flipped.
	toPx := func(p Point) (float32, float32) {
		return float32((p.X - b.MinX) * scale), float32((b.MaxY - p.Y) * scale)
	}

	// Flatten finely enough that chord error stays under half a pixel.
	tol := 0.5 / scale
	pts := FlattenPath(result.Segments, tol)
	half := trackWidth / 2

	z := vector.NewRasterizer(widthPx, heightPx)
	for i := 0; i+1 < len(pts); i++ {
		stampQuad(z, toPx, pts[i], pts[i+1], half)
	}
	for _, p := range pts {
		stampDisc(z, toPx, p, half)
	}

	img := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	draw.Draw(img, img.Bounds(), image.NewUniform(rasterBackground), image.Point{}, draw.Src)
	z.Draw(img, img.Bounds(), image.NewUniform(rasterColors[layer]), image.Point{})
	return img, nil
}

// stampQuad adds the rectangle covering a stroked polyline step.
func stampQuad(z *vector.Rasterizer, toPx func(Point) (float32, float32), a, b Point, half float64) {
	dir := b.Sub(a).Normalize()
	if dir.Length() == 0 {
		return
	}
	n := Pt(-dir.Y, dir.X).Mul(half)
	x0, y0 := toPx(a.Add(n))
	x1, y1 := toPx(b.Add(n))
	x2, y2 := toPx(b.Sub(n))
	x3, y3 := toPx(a.Sub(n))
	z.MoveTo(x0, y0)
	z.LineTo(x1, y1)
	z.LineTo(x2, y2)
	z.LineTo(x3, y3)
	z.ClosePath()
}

// stampDisc adds a polygonal disc that rounds the joint at p.
func stampDisc(z *vector.Rasterizer, toPx func(Point) (float32, float32), p Point, r float64) {
	const sides = 16
	for i := 0; i <= sides; i++ {
		angle := 2 * math.Pi * float64(i) / sides
		x, y := toPx(p.Add(Pt(r*math.Cos(angle), r*math.Sin(angle))))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

// WritePNG rasterizes the winding and encodes it as a PNG.
func WritePNG(w io.Writer, result SpiralResult, layer Layer, trackWidth float64, widthPx int) error {
	img, err := Rasterize(result, layer, trackWidth, widthPx)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// PNGSink returns a sink writing PNG images to w.
func PNGSink(w io.Writer, trackWidth float64, widthPx int) SinkFunc {
	return func(result SpiralResult, layer Layer) error {
		return WritePNG(w, result, layer, trackWidth, widthPx)
	}
}
