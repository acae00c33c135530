package effect

import (
	"context"
	"fmt"
	"math"

	"github.com/patriksporre/demofx"
	"github.com/patriksporre/demofx/asset"
)

// Bump variants.
const (
	// BumpRealtime normalizes the light vector and dots it with the
	// height gradient per pixel.
	BumpRealtime = iota

	// BumpEnvironment replaces the per-pixel trig with a precomputed
	// 256x256 diffuse light map.
	BumpEnvironment

	// BumpPhong uses a light map with an added specular term.
	BumpPhong

	bumpVariants
)

// Bump lights a height map from a source moving on a Lissajous path.
// Horizontal and vertical gradients come from central differences over
// the height map; the interaction with the light is either computed per
// pixel (realtime) or read from a precomputed light map (environment,
// Phong).
type Bump struct {
	width   int
	height  int
	variant int

	path    string
	heights []uint8
	envMap  []uint8 // 256*256 diffuse intensities
	phong   []uint8 // 256*256 diffuse+specular intensities
	light   *demofx.Lissajous
}

// Bump lighting constants.
const (
	bumpLightZ    = 96.0 // light elevation for the realtime variant
	bumpShadeBase = 160.0
	bumpExponent  = 24.0 // Phong specular exponent
)

// NewBump creates the effect with a synthetic radial-sine height map.
func NewBump() *Bump {
	return &Bump{}
}

// NewBumpImage creates the effect with a height map taken from the luma
// of the image at path.
func NewBumpImage(path string) *Bump {
	return &Bump{path: path}
}

// Initialize builds the height map and the two light maps and places the
// light on its path.
func (e *Bump) Initialize(ctx context.Context, width, height int) error {
	e.width = width
	e.height = height

	if e.path != "" {
		img, err := asset.Load(ctx, e.path)
		if err != nil {
			return fmt.Errorf("bump: %w", err)
		}
		// Crop or pad to screen size through the blitter, then take luma.
		canvas := demofx.NewBuffer(width, height, demofx.Black)
		canvas.BlitBuffer(img, 0, 0, true)
		e.heights = canvas.HeightMap()
	} else {
		e.heights = radialHeights(width, height)
	}

	e.envMap = environmentMap()
	e.phong = phongMap(bumpExponent)
	e.light = demofx.NewLissajous(2, 3, math.Pi/3,
		demofx.Vec2{X: float64(width) / 2, Y: float64(height) / 2},
		demofx.Vec2{X: float64(width) / 2.5, Y: float64(height) / 2.5})
	return nil
}

// SetVariant selects a lighting variant; out-of-range values wrap.
func (e *Bump) SetVariant(v int) {
	e.variant = wrap(v, bumpVariants)
}

// Variant returns the active variant.
func (e *Bump) Variant() int {
	return e.variant
}

// Render lights every interior pixel; the one-pixel border stays black
// because central differences are undefined there.
func (e *Bump) Render(b *demofx.Buffer, _, delta float64) {
	b.Clear(demofx.Black)

	pos := e.light.Update(delta, 1.5)
	lx, ly := int(pos.X), int(pos.Y)

	w := e.width
	pix := b.Pix()
	for y := 1; y < e.height-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			gx := int(e.heights[i+1]) - int(e.heights[i-1])
			gy := int(e.heights[i+w]) - int(e.heights[i-w])

			var v uint8
			switch e.variant {
			case BumpEnvironment:
				v = lightMapAt(e.envMap, gx-(x-lx), gy-(y-ly))
			case BumpPhong:
				v = lightMapAt(e.phong, gx-(x-lx), gy-(y-ly))
			default:
				l := demofx.V3(float64(lx-x), float64(ly-y), bumpLightZ).Normalize()
				intensity := -(float64(gx)*l.X + float64(gy)*l.Y) + bumpShadeBase*l.Z
				v = demofx.ClampChannel(intensity)
			}
			pix[i] = gray(v)
		}
	}
}

// lightMapAt indexes a 256x256 light map with gradient-offset
// coordinates, clamped into range after recentering.
func lightMapAt(m []uint8, ix, iy int) uint8 {
	ix = clampInt(ix+128, 0, 255)
	iy = clampInt(iy+128, 0, 255)
	return m[iy*256+ix]
}

// clampInt clamps v into [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// radialHeights generates a synthetic radial sine height map.
func radialHeights(width, height int) []uint8 {
	heights := make([]uint8, width*height)
	cx := float64(width) / 2
	cy := float64(height) / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			d := math.Sqrt(dx*dx + dy*dy)
			heights[y*width+x] = demofx.ClampChannel(128 + 127*math.Sin(d/6))
		}
	}
	return heights
}

// environmentMap precomputes diffuse intensity as a function of a
// normalized 2D direction inside the unit disc; outside the disc the
// intensity is zero.
func environmentMap() []uint8 {
	m := make([]uint8, 256*256)
	for j := 0; j < 256; j++ {
		ny := (float64(j) - 128) / 128
		for i := 0; i < 256; i++ {
			nx := (float64(i) - 128) / 128
			d2 := nx*nx + ny*ny
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)
			m[j*256+i] = demofx.ClampChannel(nz * 255)
		}
	}
	return m
}

// phongMap precomputes diffuse plus specular intensity, the specular
// term being normalZ raised to the given exponent.
func phongMap(exponent float64) []uint8 {
	m := make([]uint8, 256*256)
	for j := 0; j < 256; j++ {
		ny := (float64(j) - 128) / 128
		for i := 0; i < 256; i++ {
			nx := (float64(i) - 128) / 128
			d2 := nx*nx + ny*ny
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)
			diffuse := 192 * nz
			specular := 63 * math.Pow(nz, exponent)
			m[j*256+i] = demofx.ClampChannel(diffuse + specular)
		}
	}
	return m
}
