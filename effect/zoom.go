package effect

import (
	"context"
	"fmt"
	"math"

	"github.com/patriksporre/demofx"
	"github.com/patriksporre/demofx/asset"
)

// Zoom resamples a source image at a time-varying magnification using
// bilinear interpolation. Destination pixels map back to fractional
// source coordinates; samples that fall outside the source use the
// background color.
type Zoom struct {
	width  int
	height int

	path       string
	source     *demofx.Buffer
	background demofx.Color
	minZoom    float64
	maxZoom    float64
}

// NewZoom creates the effect with a generated checkerboard source.
func NewZoom() *Zoom {
	return &Zoom{minZoom: 0.5, maxZoom: 4, background: demofx.Black}
}

// NewZoomImage creates the effect sampling the image at path.
func NewZoomImage(path string) *Zoom {
	z := NewZoom()
	z.path = path
	return z
}

// Initialize loads or generates the source image.
func (z *Zoom) Initialize(ctx context.Context, width, height int) error {
	z.width = width
	z.height = height
	if z.path != "" {
		img, err := asset.Load(ctx, z.path)
		if err != nil {
			return fmt.Errorf("zoom: %w", err)
		}
		z.source = img
		return nil
	}
	z.source = checkerboard(width, height, 16, demofx.White, demofx.Blue)
	return nil
}

// Render maps every destination pixel through the inverse zoom and
// samples the source bilinearly.
func (z *Zoom) Render(b *demofx.Buffer, elapsed, _ float64) {
	mid := (z.minZoom + z.maxZoom) / 2
	amp := (z.maxZoom - z.minZoom) / 2
	zoom := mid + amp*math.Sin(elapsed*0.8)

	dcx := float64(z.width) / 2
	dcy := float64(z.height) / 2
	scx := float64(z.source.Width()) / 2
	scy := float64(z.source.Height()) / 2

	pix := b.Pix()
	i := 0
	for y := 0; y < z.height; y++ {
		sy := (float64(y)-dcy)/zoom + scy
		for x := 0; x < z.width; x++ {
			sx := (float64(x)-dcx)/zoom + scx
			pix[i] = BilinearSample(z.source, sx, sy, z.background).PackABGR()
			i++
		}
	}
}

// BilinearSample samples the source at a fractional coordinate by
// interpolating the four neighboring pixels, each channel independently:
// a horizontal lerp on both rows, then a vertical lerp between the row
// results. Neighbors outside the source fall back to the given color, so
// sampling at the edges degrades gracefully instead of failing. At an
// exact integer coordinate the fractional weights are zero and the
// result is identical to a direct lookup of that pixel.
func BilinearSample(src *demofx.Buffer, fx, fy float64, fallback demofx.Color) demofx.Color {
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	fetch := func(x, y int) demofx.Color {
		c, ok := src.GetPixel(x, y, true)
		if !ok {
			return fallback
		}
		return c
	}
	c00 := fetch(x0, y0)
	c10 := fetch(x0+1, y0)
	c01 := fetch(x0, y0+1)
	c11 := fetch(x0+1, y0+1)

	channel := func(v00, v10, v01, v11 uint8) float64 {
		top := lerp(float64(v00), float64(v10), tx)
		bottom := lerp(float64(v01), float64(v11), tx)
		return lerp(top, bottom, ty)
	}
	return demofx.NewColor(
		channel(c00.A, c10.A, c01.A, c11.A),
		channel(c00.R, c10.R, c01.R, c11.R),
		channel(c00.G, c10.G, c01.G, c11.G),
		channel(c00.B, c10.B, c01.B, c11.B),
	)
}
