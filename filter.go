package demofx

// Filter is a single-pass per-pixel color transform applied to a buffer
// in place.
type Filter func(Color) Color

// Apply runs a filter over every pixel of the buffer.
func (b *Buffer) Apply(f Filter) {
	for i, p := range b.pix {
		b.pix[i] = f(ColorFromABGR(p)).PackABGR()
	}
}

// GrayscaleFilter converts each pixel to its luma, written to all three
// channels.
func GrayscaleFilter() Filter {
	return func(c Color) Color {
		v := c.Luma()
		return Color{A: c.A, R: v, G: v, B: v}
	}
}

// InvertFilter inverts the red, green and blue channels.
func InvertFilter() Filter {
	return func(c Color) Color {
		return Color{A: c.A, R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	}
}

// BrightnessFilter scales the red, green and blue channels by factor.
// factor 0 is black, 1 is unchanged, 2 is twice as bright (clamped).
func BrightnessFilter(factor float64) Filter {
	return func(c Color) Color {
		return c.Scale(factor)
	}
}

// HeightMap extracts the luma of every pixel into a flat byte slice,
// row-major, suitable as a bump-mapping height map.
func (b *Buffer) HeightMap() []uint8 {
	heights := make([]uint8, len(b.pix))
	for i, p := range b.pix {
		heights[i] = ColorFromABGR(p).Luma()
	}
	return heights
}
