package demofx

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is a 256-entry table of packed AA-BB-GG-RR colors, precomputed
// once at effect initialization and read-only during rendering.
type Palette [256]uint32

// At returns the packed entry for an intensity, so callers can index
// directly with an 8-bit value and never run off the table.
func (p *Palette) At(i uint8) uint32 {
	return p[i]
}

// Color returns the unpacked entry for an intensity.
func (p *Palette) Color(i uint8) Color {
	return ColorFromABGR(p[i])
}

// FirePalette builds the classic fire ramp: red ramps fastest, green
// kicks in above a third of the range, blue only at the highest
// intensities.
func FirePalette() *Palette {
	var p Palette
	for i := 0; i < 256; i++ {
		r := ClampChannel(float64(i) * 3)
		g := ClampChannel(float64(i-85) * 3)
		b := ClampChannel(float64(i-170) * 3)
		p[i] = Color{A: 255, R: r, G: g, B: b}.PackABGR()
	}
	return &p
}

// GrayscalePalette builds a linear gray ramp.
func GrayscalePalette() *Palette {
	var p Palette
	for i := 0; i < 256; i++ {
		v := uint8(i)
		p[i] = Color{A: 255, R: v, G: v, B: v}.PackABGR()
	}
	return &p
}

// SinePalette builds a smooth cyclic palette where each channel follows a
// sinusoid with its own phase offset (in radians). Entry 0 and entry 255
// are near neighbors on the cycle, so wrapped indexing stays smooth.
func SinePalette(phaseR, phaseG, phaseB float64) *Palette {
	var p Palette
	for i := 0; i < 256; i++ {
		t := float64(i) / 256 * 2 * math.Pi
		p[i] = Color{
			A: 255,
			R: ClampChannel(128 + 127*math.Sin(t+phaseR)),
			G: ClampChannel(128 + 127*math.Sin(t+phaseG)),
			B: ClampChannel(128 + 127*math.Sin(t+phaseB)),
		}.PackABGR()
	}
	return &p
}

// HSVPalette builds a full hue sweep at the given saturation and value
// using the go-colorful HSV model.
func HSVPalette(saturation, value float64) *Palette {
	var p Palette
	for i := 0; i < 256; i++ {
		h := float64(i) / 256 * 360
		c := colorful.Hsv(h, saturation, value)
		r, g, b := c.RGB255()
		p[i] = Color{A: 255, R: r, G: g, B: b}.PackABGR()
	}
	return &p
}
