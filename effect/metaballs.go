package effect

import (
	"context"
	"math"

	"github.com/patriksporre/demofx"
)

// Metaballs renders the summed scalar field of moving point sources,
// each contributing diameter²/distance² per pixel. Positions follow
// independent Lissajous paths; the summed field is normalized by a
// threshold and rendered as grayscale.
type Metaballs struct {
	width  int
	height int

	paths     []*demofx.Lissajous
	diameters []float64
	positions []demofx.Vec2
	threshold float64
}

// NewMetaballs creates the effect with the given number of balls
// (at least one).
func NewMetaballs(count int) *Metaballs {
	if count <= 0 {
		count = 4
	}
	return &Metaballs{
		paths:     make([]*demofx.Lissajous, count),
		diameters: make([]float64, count),
		positions: make([]demofx.Vec2, count),
		threshold: 3,
	}
}

// Initialize gives each ball its own path and diameter.
func (m *Metaballs) Initialize(_ context.Context, width, height int) error {
	m.width = width
	m.height = height
	center := demofx.Vec2{X: float64(width) / 2, Y: float64(height) / 2}
	for i := range m.paths {
		dim := demofx.Vec2{
			X: float64(width) / 2.5 * (0.6 + 0.4*float64(i%3)/2),
			Y: float64(height) / 2.5 * (0.5 + 0.5*float64((i+1)%3)/2),
		}
		m.paths[i] = demofx.NewLissajous(1+i%3, 2+i%2, float64(i)*math.Pi/4, center, dim)
		m.diameters[i] = float64(min(width, height)) / 8 * (0.8 + 0.2*float64(i%2))
	}
	return nil
}

// Render sums every ball's contribution per pixel. A pixel exactly on a
// ball's position would divide by zero, so that contribution is skipped;
// its neighbors saturate the field there anyway.
func (m *Metaballs) Render(b *demofx.Buffer, _, delta float64) {
	for i, p := range m.paths {
		m.positions[i] = p.Update(delta, 1.2)
	}

	pix := b.Pix()
	i := 0
	for y := 0; y < m.height; y++ {
		fy := float64(y)
		for x := 0; x < m.width; x++ {
			fx := float64(x)
			var sum float64
			for k := range m.positions {
				dx := fx - m.positions[k].X
				dy := fy - m.positions[k].Y
				d2 := dx*dx + dy*dy
				if d2 == 0 {
					continue
				}
				sum += m.diameters[k] * m.diameters[k] / d2
			}
			pix[i] = gray(demofx.ClampChannel(sum / m.threshold * 255))
			i++
		}
	}
}
