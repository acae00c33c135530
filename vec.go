package demofx

import "math"

// Vec2 is a mutable 2D coordinate tuple. The arithmetic methods mutate
// the receiver in place and return it so calls can be chained; use Clone
// when an independent copy is needed.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) *Vec2 {
	return &Vec2{X: x, Y: y}
}

// Add adds w to v in place.
func (v *Vec2) Add(w *Vec2) *Vec2 {
	v.X += w.X
	v.Y += w.Y
	return v
}

// Sub subtracts w from v in place.
func (v *Vec2) Sub(w *Vec2) *Vec2 {
	v.X -= w.X
	v.Y -= w.Y
	return v
}

// Scale multiplies v by a scalar in place.
func (v *Vec2) Scale(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

// Clone returns an independent copy of v.
func (v *Vec2) Clone() *Vec2 {
	return &Vec2{X: v.X, Y: v.Y}
}

// Dot returns the dot product of v and w.
func (v *Vec2) Dot(w *Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the magnitude of v.
func (v *Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize scales v to unit length in place. A zero vector stays zero.
func (v *Vec2) Normalize() *Vec2 {
	length := v.Length()
	if length == 0 {
		return v
	}
	v.X /= length
	v.Y /= length
	return v
}

// Vec3 is a mutable 3D coordinate tuple with the same in-place chaining
// semantics as Vec2.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) *Vec3 {
	return &Vec3{X: x, Y: y, Z: z}
}

// Add adds w to v in place.
func (v *Vec3) Add(w *Vec3) *Vec3 {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
	return v
}

// Sub subtracts w from v in place.
func (v *Vec3) Sub(w *Vec3) *Vec3 {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
	return v
}

// Scale multiplies v by a scalar in place.
func (v *Vec3) Scale(s float64) *Vec3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// Clone returns an independent copy of v.
func (v *Vec3) Clone() *Vec3 {
	return &Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Dot returns the dot product of v and w.
func (v *Vec3) Dot(w *Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length returns the magnitude of v.
func (v *Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize scales v to unit length in place. A zero vector stays zero.
func (v *Vec3) Normalize() *Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
	return v
}
