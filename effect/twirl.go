package effect

import (
	"context"
	"fmt"
	"math"

	"github.com/patriksporre/demofx"
	"github.com/patriksporre/demofx/asset"
)

// Twirl applies a conformal twist to a source image: inside the twirl
// radius each pixel's polar angle around the center is offset by an
// amount growing toward the center, outside the radius the image passes
// through untouched.
type Twirl struct {
	width  int
	height int

	path       string
	source     *demofx.Buffer
	radius     float64
	distortion float64
	background demofx.Color
}

// NewTwirl creates the effect with a generated checkerboard source.
func NewTwirl() *Twirl {
	return &Twirl{distortion: 4, background: demofx.Black}
}

// NewTwirlImage creates the effect twisting the image at path.
func NewTwirlImage(path string) *Twirl {
	t := NewTwirl()
	t.path = path
	return t
}

// Initialize loads or generates the source image.
func (t *Twirl) Initialize(ctx context.Context, width, height int) error {
	t.width = width
	t.height = height
	t.radius = float64(min(width, height)) / 2.2
	if t.path != "" {
		img, err := asset.Load(ctx, t.path)
		if err != nil {
			return fmt.Errorf("twirl: %w", err)
		}
		t.source = img
		return nil
	}
	t.source = checkerboard(width, height, 12, demofx.White, demofx.Red)
	return nil
}

// Render inverse-maps each pixel through the twist, sampling the source
// with the background as the out-of-range fallback.
func (t *Twirl) Render(b *demofx.Buffer, elapsed, _ float64) {
	strength := t.distortion * math.Sin(elapsed*0.9)
	cx := float64(t.width) / 2
	cy := float64(t.height) / 2

	pix := b.Pix()
	i := 0
	for y := 0; y < t.height; y++ {
		dy := float64(y) - cy
		for x := 0; x < t.width; x++ {
			dx := float64(x) - cx
			dist := math.Sqrt(dx*dx + dy*dy)

			sx, sy := x, y
			if dist < t.radius {
				angle := math.Atan2(dy, dx) + strength*(t.radius-dist)/t.radius
				s, c := math.Sincos(angle)
				sx = int(cx + dist*c)
				sy = int(cy + dist*s)
			}

			if c, ok := t.source.GetPixel(sx, sy, true); ok {
				pix[i] = c.PackABGR()
			} else {
				pix[i] = t.background.PackABGR()
			}
			i++
		}
	}
}
