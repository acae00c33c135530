package effect

import (
	"math/rand"

	"github.com/patriksporre/demofx"
)

// referenceFPS is the frame rate star velocities are expressed against,
// so apparent speed is independent of the actual display rate.
const referenceFPS = 60.0

// Star2D is a horizontally scrolling star: position, per-frame velocity
// at the reference rate, and a fixed brightness chosen at creation.
// Stars are recycled in place when they leave the right edge, never
// reallocated.
type Star2D struct {
	Pos   demofx.Vec2
	Vel   float64
	Color uint32
}

// newStar2D creates a star at a random position with random velocity and
// brightness in [128, 255].
func newStar2D(rng *rand.Rand, width, height float64) Star2D {
	s := Star2D{
		Pos: demofx.Vec2{X: rng.Float64() * width, Y: rng.Float64() * height},
	}
	s.randomize(rng, height)
	return s
}

// randomize picks a fresh velocity and brightness. Brighter stars move
// faster, which reads as parallax.
func (s *Star2D) randomize(rng *rand.Rand, height float64) {
	speed := rng.Float64() // 0..1
	s.Vel = 0.5 + speed*3.5
	v := uint8(128 + int(speed*127))
	s.Color = demofx.Color{A: 255, R: v, G: v, B: v}.PackABGR()
	s.Pos.Y = rng.Float64() * height
}

// Update advances the star and recycles it at the right edge.
func (s *Star2D) Update(delta float64, width, height float64, rng *rand.Rand) {
	s.Pos.X += s.Vel * delta * referenceFPS
	if s.Pos.X >= width {
		s.Pos.X = 0
		s.randomize(rng, height)
	}
}

// Render plots the star with clipping.
func (s *Star2D) Render(b *demofx.Buffer) {
	b.SetPacked(int(s.Pos.X), int(s.Pos.Y), s.Color, true)
}

// Star3D is a star flying toward the viewer: a 3D position with negative
// z velocity, perspective-projected each frame. SX and SY hold the most
// recent projection so rendering never recomputes it.
type Star3D struct {
	Pos    demofx.Vec3
	VelZ   float64
	SX, SY int
}

// starDepth bounds the 3D star volume. Brightness is 255 - z, so the far
// plane coincides with full darkness and the near plane with full
// brightness.
const (
	starNear = 1.0
	starFar  = 255.0
)

// newStar3D creates a star at a random depth within the volume.
func newStar3D(rng *rand.Rand, width, height float64) Star3D {
	s := Star3D{}
	s.reset(rng, width, height)
	s.Pos.Z = starNear + rng.Float64()*(starFar-starNear)
	return s
}

// reset recycles the star at the far plane with a fresh lateral position
// and velocity.
func (s *Star3D) reset(rng *rand.Rand, width, height float64) {
	s.Pos.X = (rng.Float64()*2 - 1) * width / 2
	s.Pos.Y = (rng.Float64()*2 - 1) * height / 2
	s.Pos.Z = starFar
	s.VelZ = -(20 + rng.Float64()*60)
}

// project computes the screen position via perspective division and
// reports whether it falls within the screen bounds.
func (s *Star3D) project(width, height int) bool {
	cx := float64(width) / 2
	cy := float64(height) / 2
	s.SX = int(s.Pos.X/s.Pos.Z*cx + cx)
	s.SY = int(s.Pos.Y/s.Pos.Z*cy + cy)
	return s.SX >= 0 && s.SX < width && s.SY >= 0 && s.SY < height
}

// Update advances the star toward the viewer, projecting it and
// recycling it when it crosses the near plane or its projection leaves
// the screen. A recycled star is projected again before rendering so no
// out-of-bounds pixel write can occur.
func (s *Star3D) Update(delta float64, width, height int, rng *rand.Rand) {
	s.Pos.Z += s.VelZ * delta
	if s.Pos.Z <= starNear || !s.project(width, height) {
		s.reset(rng, float64(width), float64(height))
		s.project(width, height)
	}
}

// Render plots the star; closer stars are brighter.
func (s *Star3D) Render(b *demofx.Buffer) {
	v := demofx.ClampChannel(255 - s.Pos.Z)
	b.SetPacked(s.SX, s.SY, gray(v), true)
}
