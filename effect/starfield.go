package effect

import (
	"context"
	"math/rand"
	"time"

	"github.com/patriksporre/demofx"
)

// Starfield variants.
const (
	// Starfield2D scrolls stars horizontally with parallax.
	Starfield2D = iota

	// Starfield3D flies stars toward the viewer with perspective.
	Starfield3D

	starfieldVariants
)

// Starfield renders either a scrolling 2D field or a perspective 3D
// field of recycled stars.
type Starfield struct {
	width   int
	height  int
	variant int
	stars2  []Star2D
	stars3  []Star3D
	rng     *rand.Rand
}

// NewStarfield creates a starfield with the given number of stars.
func NewStarfield(count int) *Starfield {
	if count <= 0 {
		count = 256
	}
	return &Starfield{
		stars2: make([]Star2D, count),
		stars3: make([]Star3D, count),
	}
}

// Initialize seeds both star populations.
func (s *Starfield) Initialize(_ context.Context, width, height int) error {
	s.width = width
	s.height = height
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i := range s.stars2 {
		s.stars2[i] = newStar2D(s.rng, float64(width), float64(height))
	}
	for i := range s.stars3 {
		s.stars3[i] = newStar3D(s.rng, float64(width), float64(height))
	}
	return nil
}

// SetVariant selects 2D or 3D; out-of-range values wrap.
func (s *Starfield) SetVariant(v int) {
	s.variant = wrap(v, starfieldVariants)
}

// Variant returns the active variant.
func (s *Starfield) Variant() int {
	return s.variant
}

// Render clears to black and draws every star.
func (s *Starfield) Render(b *demofx.Buffer, _, delta float64) {
	b.Clear(demofx.Black)

	switch s.variant {
	case Starfield3D:
		for i := range s.stars3 {
			s.stars3[i].Update(delta, s.width, s.height, s.rng)
			s.stars3[i].Render(b)
		}
	default:
		for i := range s.stars2 {
			s.stars2[i].Update(delta, float64(s.width), float64(s.height), s.rng)
			s.stars2[i].Render(b)
		}
	}
}
