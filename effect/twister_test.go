package effect

import (
	"context"
	"testing"

	"github.com/patriksporre/demofx"
)

// TestTwisterStaysInsideBar verifies no pixel outside the bar's maximum
// horizontal extent is ever lit.
func TestTwisterStaysInsideBar(t *testing.T) {
	e := NewTwister()
	if err := e.Initialize(context.Background(), 64, 48); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	black := demofx.Black.PackABGR()
	for _, elapsed := range []float64{0, 0.7, 1.9, 4.2} {
		b := demofx.NewBuffer(64, 48, demofx.Magenta)
		e.Render(b, elapsed, 0.016)

		// The bar spans at most halfWidth = 16 either side of center 32.
		for y := 0; y < 48; y++ {
			for x := 0; x < 64; x++ {
				if x >= 15 && x <= 49 {
					continue
				}
				if b.Packed(x, y) != black {
					t.Fatalf("elapsed %v: pixel (%d,%d) lit outside the bar", elapsed, x, y)
				}
			}
		}
	}
}

// TestTwisterDrawsEveryRow verifies at least one lit pixel per scanline;
// a square bar always has a visible face.
func TestTwisterDrawsEveryRow(t *testing.T) {
	e := NewTwister()
	if err := e.Initialize(context.Background(), 64, 48); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	for variant := 0; variant < twisterVariants; variant++ {
		e.SetVariant(variant)
		b := demofx.NewBuffer(64, 48, demofx.Black)
		e.Render(b, 1.3, 0.016)

		black := demofx.Black.PackABGR()
		for y := 0; y < 48; y++ {
			lit := false
			for x := 0; x < 64; x++ {
				if b.Packed(x, y) != black {
					lit = true
					break
				}
			}
			if !lit {
				t.Fatalf("variant %d: row %d empty", variant, y)
			}
		}
	}
}

// TestTwisterFlatUsesFaceColors verifies flat shading lights pixels with
// unscaled face colors only.
func TestTwisterFlatUsesFaceColors(t *testing.T) {
	e := NewTwister()
	e.SetShading(ShadingFlat)
	if err := e.Initialize(context.Background(), 64, 48); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	b := demofx.NewBuffer(64, 48, demofx.Black)
	e.Render(b, 0.9, 0.016)

	allowed := map[uint32]bool{demofx.Black.PackABGR(): true}
	for _, f := range e.faces {
		allowed[f.PackABGR()] = true
	}
	for i, p := range b.Pix() {
		if !allowed[p] {
			t.Fatalf("pixel %d = %#08x, not a face color or background", i, p)
		}
	}
}

// TestTwisterVariantWraps verifies out-of-range variants wrap around.
func TestTwisterVariantWraps(t *testing.T) {
	e := NewTwister()
	e.SetVariant(twisterVariants + 1)
	if e.Variant() != 1 {
		t.Errorf("variant = %d, want 1", e.Variant())
	}
	e.SetVariant(-1)
	if e.Variant() != twisterVariants-1 {
		t.Errorf("variant = %d, want %d", e.Variant(), twisterVariants-1)
	}
}

// TestTwisterGouraudNeverBrighterThanFlat verifies interpolated shading
// only darkens the base face colors: flat and Gouraud frames light the
// same pixels and every Gouraud channel is at most its flat counterpart.
func TestTwisterGouraudNeverBrighterThanFlat(t *testing.T) {
	e := NewTwister()
	if err := e.Initialize(context.Background(), 64, 48); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	flat := demofx.NewBuffer(64, 48, demofx.Black)
	e.SetShading(ShadingFlat)
	e.Render(flat, 0.9, 0.016)

	gouraud := demofx.NewBuffer(64, 48, demofx.Black)
	e.SetShading(ShadingGouraud)
	e.Render(gouraud, 0.9, 0.016)

	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			f, _ := flat.GetPixel(x, y, true)
			g, _ := gouraud.GetPixel(x, y, true)
			if g.R > f.R || g.G > f.G || g.B > f.B {
				t.Fatalf("pixel (%d,%d): gouraud %+v brighter than flat %+v", x, y, g, f)
			}
			if f != (demofx.Color{A: 255}) && g == (demofx.Color{A: 255}) {
				t.Fatalf("pixel (%d,%d): lit flat but dark gouraud", x, y)
			}
		}
	}
}
