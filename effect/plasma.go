package effect

import (
	"context"
	"math"

	"github.com/patriksporre/demofx"
)

// Plasma variants.
const (
	// PlasmaSine maps the combined field through sine and cosine into
	// the red and green channels directly.
	PlasmaSine = iota

	// PlasmaPaletted maps the combined field through a precomputed
	// 256-entry sinusoidal palette.
	PlasmaPaletted

	plasmaVariants
)

// Plasma sums phase-shifted sinusoids of position and time per pixel:
// a horizontal wave, a vertical wave, the radial distance from a center
// that drifts on a circle, and a diagonal wave. The averaged field is
// mapped to color per the active variant.
type Plasma struct {
	width   int
	height  int
	variant int
	palette *demofx.Palette
}

// NewPlasma creates the plasma effect in its default variant.
func NewPlasma() *Plasma {
	return &Plasma{}
}

// Initialize precomputes the palette for the paletted variant.
func (p *Plasma) Initialize(_ context.Context, width, height int) error {
	p.width = width
	p.height = height
	p.palette = demofx.SinePalette(0, 2*math.Pi/3, 4*math.Pi/3)
	return nil
}

// SetVariant selects a plasma variant; out-of-range values wrap.
func (p *Plasma) SetVariant(v int) {
	p.variant = wrap(v, plasmaVariants)
}

// Variant returns the active variant.
func (p *Plasma) Variant() int {
	return p.variant
}

// Render fills every pixel of the buffer from the plasma field.
func (p *Plasma) Render(b *demofx.Buffer, elapsed, _ float64) {
	// The radial wave's center drifts on a circle around the screen
	// center, amplitude a quarter of the smaller screen dimension.
	amplitude := float64(min(p.width, p.height)) / 4
	cx := float64(p.width)/2 + amplitude*math.Sin(elapsed)
	cy := float64(p.height)/2 + amplitude*math.Cos(elapsed)

	pix := b.Pix()
	i := 0
	for y := 0; y < p.height; y++ {
		fy := float64(y)
		for x := 0; x < p.width; x++ {
			fx := float64(x)

			horizontal := math.Sin(fx/16 + elapsed)
			vertical := math.Sin(fy/8 + elapsed*0.7)
			dx, dy := fx-cx, fy-cy
			radial := math.Sin(math.Sqrt(dx*dx+dy*dy)/8 + elapsed)
			diagonal := math.Sin((fx+fy)/16 + elapsed/2)

			v := (horizontal + vertical + radial + diagonal) / 4

			switch p.variant {
			case PlasmaPaletted:
				pix[i] = p.palette.At(demofx.ClampChannel((v + 1) * 127.5))
			default:
				r := 128 + 127*math.Sin(v*math.Pi)
				g := 128 + 127*math.Cos(v*math.Pi)
				pix[i] = demofx.NewColor(255, r, g, 128).PackABGR()
			}
			i++
		}
	}
}
