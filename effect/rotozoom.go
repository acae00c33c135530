package effect

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/patriksporre/demofx"
	"github.com/patriksporre/demofx/asset"
)

// Rotozoom inverse-maps every destination pixel through a time-varying
// rotation and scale back into source space, wrapping the coordinates
// modulo the source dimensions for seamless tiling. The inner loop steps
// 26.6 fixed-point accumulators instead of doing per-pixel trig.
type Rotozoom struct {
	width  int
	height int

	path   string
	source *demofx.Buffer
}

// NewRotozoom creates the effect with a generated XOR texture.
func NewRotozoom() *Rotozoom {
	return &Rotozoom{}
}

// NewRotozoomImage creates the effect tiling the image at path.
func NewRotozoomImage(path string) *Rotozoom {
	return &Rotozoom{path: path}
}

// Initialize loads or generates the source texture.
func (r *Rotozoom) Initialize(ctx context.Context, width, height int) error {
	r.width = width
	r.height = height
	if r.path != "" {
		img, err := asset.Load(ctx, r.path)
		if err != nil {
			return fmt.Errorf("rotozoom: %w", err)
		}
		r.source = img
		return nil
	}
	r.source = xorTexture(256)
	return nil
}

// toFixed converts a float to 26.6 fixed point.
func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}

// Render walks the destination row by row, stepping the source
// coordinate by the per-pixel delta and wrapping it into the texture.
func (r *Rotozoom) Render(b *demofx.Buffer, elapsed, _ float64) {
	angle := elapsed * 0.6
	scale := 1.3 + math.Sin(elapsed*0.4) // never reaches zero

	sin, cos := math.Sincos(angle)
	du := toFixed(cos / scale)
	dv := toFixed(-sin / scale)

	srcW := r.source.Width()
	srcH := r.source.Height()
	dcx := float64(r.width) / 2
	dcy := float64(r.height) / 2
	scx := float64(srcW) / 2
	scy := float64(srcH) / 2

	pix := b.Pix()
	i := 0
	for y := 0; y < r.height; y++ {
		fy := float64(y) - dcy
		u := toFixed((-dcx*cos+fy*sin)/scale + scx)
		v := toFixed((dcx*sin+fy*cos)/scale + scy)
		for x := 0; x < r.width; x++ {
			sx := wrap(int(u>>6), srcW)
			sy := wrap(int(v>>6), srcH)
			pix[i] = r.source.Packed(sx, sy)
			i++
			u += du
			v += dv
		}
	}
}
