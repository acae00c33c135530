package effect

import (
	"context"
	"fmt"

	"github.com/patriksporre/demofx"
	"github.com/patriksporre/demofx/asset"
)

// Water simulates ripples over a source image with the two-buffer height
// field method: each frame the wave equation averages the four neighbors
// of every interior cell against the previous field, a damping factor
// bleeds energy out, and the local height gradient refracts the source
// image sideways. A drip traveling on a Lissajous path keeps feeding the
// field.
type Water struct {
	width  int
	height int

	path    string
	source  *demofx.Buffer
	current []float64
	previous []float64
	damping float64
	drip    *demofx.Lissajous
}

// waterDrip is the disturbance height injected at the drip point.
const waterDrip = 512.0

// NewWater creates the effect with a generated checkerboard source.
func NewWater() *Water {
	return &Water{damping: 0.99}
}

// NewWaterImage creates the effect rippling the image at path.
func NewWaterImage(path string) *Water {
	return &Water{damping: 0.99, path: path}
}

// Initialize loads or generates the source image and allocates both
// height fields.
func (w *Water) Initialize(ctx context.Context, width, height int) error {
	w.width = width
	w.height = height
	w.current = make([]float64, width*height)
	w.previous = make([]float64, width*height)
	w.drip = demofx.NewLissajous(3, 4, 0.8,
		demofx.Vec2{X: float64(width) / 2, Y: float64(height) / 2},
		demofx.Vec2{X: float64(width) / 3, Y: float64(height) / 3})

	if w.path != "" {
		img, err := asset.Load(ctx, w.path)
		if err != nil {
			return fmt.Errorf("water: %w", err)
		}
		w.source = img
		return nil
	}
	w.source = checkerboard(width, height, 20, demofx.Cyan, demofx.Blue)
	return nil
}

// Render disturbs, propagates and refracts.
func (w *Water) Render(b *demofx.Buffer, _, delta float64) {
	p := w.drip.Update(delta, 2)
	w.disturb(int(p.X), int(p.Y), waterDrip)

	w.propagate()
	w.refract(b)
}

// disturb pushes the field down at (x, y); out-of-range drips are
// dropped.
func (w *Water) disturb(x, y int, height float64) {
	if x < 1 || x >= w.width-1 || y < 1 || y >= w.height-1 {
		return
	}
	w.previous[y*w.width+x] = height
}

// propagate advances the wave equation one step and swaps the fields:
// the new height is the neighbor average of the previous field minus the
// height two frames back, damped.
func (w *Water) propagate() {
	wd := w.width
	for y := 1; y < w.height-1; y++ {
		for x := 1; x < wd-1; x++ {
			i := y*wd + x
			v := (w.previous[i-1]+w.previous[i+1]+w.previous[i-wd]+w.previous[i+wd])/2 - w.current[i]
			w.current[i] = v * w.damping
		}
	}
	w.current, w.previous = w.previous, w.current
}

// refract draws the source image displaced by the local height gradient.
// Samples pushed off the source fall back to the unshifted pixel.
func (w *Water) refract(b *demofx.Buffer) {
	wd := w.width
	pix := b.Pix()
	for y := 0; y < w.height; y++ {
		for x := 0; x < wd; x++ {
			i := y*wd + x
			sx, sy := x, y
			if x > 0 && x < wd-1 && y > 0 && y < w.height-1 {
				sx += int(w.previous[i-1] - w.previous[i+1])
				sy += int(w.previous[i-wd] - w.previous[i+wd])
			}
			if c, ok := w.source.GetPixel(sx, sy, true); ok {
				pix[i] = c.PackABGR()
			} else {
				pix[i] = w.source.Packed(x, y)
			}
		}
	}
}
