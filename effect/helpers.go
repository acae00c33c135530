package effect

import "github.com/patriksporre/demofx"

// wrap maps v into [0, m) with negative-safe modulo: the modulus is
// added before the final reduction so negative intermediates never
// produce a negative index.
func wrap(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// gray returns an opaque packed gray of the given intensity.
func gray(v uint8) uint32 {
	return demofx.Color{A: 255, R: v, G: v, B: v}.PackABGR()
}

// checkerboard generates a two-color checker texture, used as the
// fallback source for sampling kernels when no asset path is given.
func checkerboard(width, height, cell int, a, b demofx.Color) *demofx.Buffer {
	buf := demofx.NewBuffer(width, height, a)
	pa, pb := a.PackABGR(), b.PackABGR()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pa
			if (x/cell+y/cell)%2 == 1 {
				p = pb
			}
			buf.SetPacked(x, y, p, false)
		}
	}
	return buf
}

// xorTexture generates the classic XOR pattern, a cheap seamless source
// for the rotozoomer.
func xorTexture(size int) *demofx.Buffer {
	buf := demofx.NewBuffer(size, size, demofx.Black)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := uint8(x ^ y)
			buf.SetPacked(x, y, demofx.Color{A: 255, R: v, G: v, B: 255 - v}.PackABGR(), false)
		}
	}
	return buf
}
