package demofx

import "image/color"

// Color is an unpacked 32-bit color with 8-bit alpha, red, green and blue
// channels. It is a plain value type: packing into an integer is a pure
// function of the channels, computed on demand, so a Color can never carry
// a stale packed value after mutation.
type Color struct {
	A, R, G, B uint8
}

// NewColor creates a Color from float channel values. Each channel is
// clamped to [0, 255] and truncated toward zero.
func NewColor(a, r, g, b float64) Color {
	return Color{
		A: ClampChannel(a),
		R: ClampChannel(r),
		G: ClampChannel(g),
		B: ClampChannel(b),
	}
}

// RGB creates an opaque Color from red, green and blue channel values.
func RGB(r, g, b float64) Color {
	return NewColor(255, r, g, b)
}

// ClampChannel restricts a float channel value to [0, 255], truncating
// toward zero. NaN maps to 0.
func ClampChannel(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v > 0 {
		return uint8(v)
	}
	return 0
}

// ColorFromABGR decomposes a packed value in the AA-BB-GG-RR convention:
// alpha in the high byte, then blue, green and red.
func ColorFromABGR(p uint32) Color {
	return Color{
		A: uint8(p >> 24),
		B: uint8(p >> 16),
		G: uint8(p >> 8),
		R: uint8(p),
	}
}

// ColorFromARGB decomposes a packed value in the standard AA-RR-GG-BB
// convention: alpha in the high byte, then red, green and blue.
func ColorFromARGB(p uint32) Color {
	return Color{
		A: uint8(p >> 24),
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
}

// PackABGR recomposes the color in the AA-BB-GG-RR convention.
// ColorFromABGR(c.PackABGR()) == c for any Color c. Packing in one
// convention and decomposing in the other swaps the red and blue
// channels; this is intentional and is how a buffer's byte order is
// reinterpreted cheaply.
func (c Color) PackABGR() uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// PackARGB recomposes the color in the standard AA-RR-GG-BB convention.
// ColorFromARGB(c.PackARGB()) == c for any Color c.
func (c Color) PackARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Lerp performs linear interpolation between two colors, per channel.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		A: ClampChannel(float64(c.A) + (float64(other.A)-float64(c.A))*t),
		R: ClampChannel(float64(c.R) + (float64(other.R)-float64(c.R))*t),
		G: ClampChannel(float64(c.G) + (float64(other.G)-float64(c.G))*t),
		B: ClampChannel(float64(c.B) + (float64(other.B)-float64(c.B))*t),
	}
}

// Scale multiplies the red, green and blue channels by s, leaving alpha
// unchanged. Results are clamped to [0, 255].
func (c Color) Scale(s float64) Color {
	return Color{
		A: c.A,
		R: ClampChannel(float64(c.R) * s),
		G: ClampChannel(float64(c.G) * s),
		B: ClampChannel(float64(c.B) * s),
	}
}

// Luma returns the perceptual brightness of the color as an 8-bit value,
// using the Rec. 601 weights.
func (c Color) Luma() uint8 {
	return ClampChannel(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
}

// NRGBA converts the color to the standard library color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		A: uint8(a >> 8),
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Common colors
var (
	Black   = Color{A: 255}
	White   = Color{A: 255, R: 255, G: 255, B: 255}
	Red     = Color{A: 255, R: 255}
	Green   = Color{A: 255, G: 255}
	Blue    = Color{A: 255, B: 255}
	Yellow  = Color{A: 255, R: 255, G: 255}
	Cyan    = Color{A: 255, G: 255, B: 255}
	Magenta = Color{A: 255, R: 255, B: 255}
)
