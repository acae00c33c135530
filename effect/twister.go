package effect

import (
	"context"
	"math"

	"github.com/patriksporre/demofx"
)

// Twister variants select the per-row twist formula, from pure rotation
// to layered sinusoids.
const (
	// TwisterRigid rotates the column as one rigid bar.
	TwisterRigid = iota

	// TwisterSine adds a single sinusoidal twist along the bar.
	TwisterSine

	// TwisterDouble layers a second, faster sinusoid on top.
	TwisterDouble

	// TwisterSplit twists the two halves of the bar in opposite phase.
	TwisterSplit

	twisterVariants
)

// TwisterShading selects how the faces are filled.
type TwisterShading int

const (
	// ShadingFlat fills each face with its base color.
	ShadingFlat TwisterShading = iota

	// ShadingGouraud interpolates brightness linearly across each face.
	ShadingGouraud

	// ShadingTextured adds vertical stripes on top of the Gouraud shade.
	ShadingTextured
)

// Twister draws the rotating square bar: per scanline, four angularly
// offset x-coordinates projected with a sine, and spans drawn between
// consecutive coordinates wherever the left edge is left of the right.
type Twister struct {
	width   int
	height  int
	variant int
	shading TwisterShading

	halfWidth float64
	faces     [4]demofx.Color
}

// NewTwister creates the twister with Gouraud shading.
func NewTwister() *Twister {
	return &Twister{shading: ShadingGouraud}
}

// Initialize sizes the bar to the screen.
func (t *Twister) Initialize(_ context.Context, width, height int) error {
	t.width = width
	t.height = height
	t.halfWidth = float64(width) / 4
	t.faces = [4]demofx.Color{demofx.Red, demofx.Green, demofx.Blue, demofx.Yellow}
	return nil
}

// SetVariant selects a twist formula; out-of-range values wrap.
func (t *Twister) SetVariant(v int) {
	t.variant = wrap(v, twisterVariants)
}

// Variant returns the active twist formula.
func (t *Twister) Variant() int {
	return t.variant
}

// SetShading selects the span fill mode.
func (t *Twister) SetShading(s TwisterShading) {
	t.shading = s
}

// twist returns the extra rotation for a scanline under the active
// formula.
func (t *Twister) twist(y, elapsed float64) float64 {
	switch t.variant {
	case TwisterSine:
		return 0.5 * math.Sin(elapsed+y/60)
	case TwisterDouble:
		return 0.5*math.Sin(elapsed+y/60) + 0.25*math.Sin(elapsed*0.7+y/25)
	case TwisterSplit:
		half := float64(t.height) / 2
		return 0.8 * math.Sin(elapsed+y/50) * math.Tanh((y-half)/40)
	default:
		return 0
	}
}

// Render clears the frame and draws the bar scanline by scanline.
func (t *Twister) Render(b *demofx.Buffer, elapsed, _ float64) {
	b.Clear(demofx.Black)

	cx := float64(t.width) / 2
	for y := 0; y < t.height; y++ {
		angle := elapsed + t.twist(float64(y), elapsed)

		var xs [4]float64
		var shade [4]float64
		for k := 0; k < 4; k++ {
			edge := angle + float64(k)*math.Pi/2
			xs[k] = cx + math.Sin(edge)*t.halfWidth
			// Edge brightness from the face normal's view angle.
			shade[k] = 0.35 + 0.65*math.Abs(math.Cos(edge))
		}

		for k := 0; k < 4; k++ {
			left, right := xs[k], xs[(k+1)%4]
			if left >= right {
				continue
			}
			t.span(b, y, left, right, t.faces[k], shade[k], shade[(k+1)%4])
		}
	}
}

// span fills one face segment [left, right) on row y.
func (t *Twister) span(b *demofx.Buffer, y int, left, right float64, face demofx.Color, shadeL, shadeR float64) {
	x1, x2 := int(left), int(right)

	if t.shading == ShadingFlat {
		b.FillSpan(x1, x2, y, face.PackABGR())
		return
	}

	width := right - left
	for x := x1; x < x2; x++ {
		pos := (float64(x) - left) / width
		c := face.Scale(lerp(shadeL, shadeR, pos))
		if t.shading == ShadingTextured && int(pos*8)%2 == 1 {
			c = c.Scale(0.6)
		}
		b.SetPixel(x, y, c, true)
	}
}
