package demofx

import "math"

// Lissajous generates points on the closed curve
//
//	x = center.X + dim.X*cos(a*t + delta)
//	y = center.Y + dim.Y*cos(b*t)
//
// with the accumulated time t wrapped into [0, 2π). It is used to drive
// moving light sources, metaball foci and water drips along smooth
// periodic paths.
//
// The curve is always evaluated in closed form. An earlier table-driven
// version sampled by truncated index produced visible angular stepping
// whenever the speed changed between frames; do not reintroduce one.
type Lissajous struct {
	a, b   int
	delta  float64
	center Vec2
	dim    Vec2
	time   float64
}

// NewLissajous creates a path with frequencies a and b, phase offset
// delta, and the given center and dimension.
func NewLissajous(a, b int, delta float64, center, dim Vec2) *Lissajous {
	return &Lissajous{a: a, b: b, delta: delta, center: center, dim: dim}
}

// NewLissajousScreen creates a path centered on a width x height screen,
// with the curve spanning the full screen extent.
func NewLissajousScreen(a, b int, delta float64, width, height float64) *Lissajous {
	return NewLissajous(a, b, delta,
		Vec2{X: width / 2, Y: height / 2},
		Vec2{X: width / 2, Y: height / 2})
}

// Update advances the accumulated time by delta*speed and returns the
// point on the curve at the new time. Calling Update with delta == 0 any
// number of times returns the same point every time.
func (l *Lissajous) Update(delta, speed float64) Vec2 {
	l.time += delta * speed
	l.time = math.Mod(l.time, 2*math.Pi)
	if l.time < 0 {
		l.time += 2 * math.Pi
	}
	return l.At(l.time)
}

// At returns the point on the curve at time t without advancing the
// internal clock. It is a pure function of t.
func (l *Lissajous) At(t float64) Vec2 {
	return Vec2{
		X: l.center.X + l.dim.X*math.Cos(float64(l.a)*t+l.delta),
		Y: l.center.Y + l.dim.Y*math.Cos(float64(l.b)*t),
	}
}

// Reset rewinds the accumulated time to zero, restarting the curve.
func (l *Lissajous) Reset() {
	l.time = 0
}
