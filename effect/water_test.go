package effect

import (
	"context"
	"testing"

	"github.com/patriksporre/demofx"
)

// TestWaterFlatFieldReproducesSource verifies an undisturbed field
// refracts nothing: the render is the source, pixel for pixel.
func TestWaterFlatFieldReproducesSource(t *testing.T) {
	w := NewWater()
	if err := w.Initialize(context.Background(), 32, 32); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	b := demofx.NewBuffer(32, 32, demofx.Magenta)
	w.refract(b)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if got, want := b.Packed(x, y), w.source.Packed(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

// TestWaterDisturbSpreads verifies a single drip propagates outward to
// its neighbors after one wave step.
func TestWaterDisturbSpreads(t *testing.T) {
	w := NewWater()
	if err := w.Initialize(context.Background(), 16, 16); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	w.disturb(8, 8, waterDrip)
	w.propagate()

	// After the swap the advanced field lives in previous. The four
	// neighbors each see waterDrip/2 damped.
	want := waterDrip / 2 * w.damping
	for _, p := range [][2]int{{7, 8}, {9, 8}, {8, 7}, {8, 9}} {
		got := w.previous[p[1]*16+p[0]]
		if got != want {
			t.Errorf("neighbor (%d,%d) = %v, want %v", p[0], p[1], got, want)
		}
	}
	if got := w.previous[4*16+4]; got != 0 {
		t.Errorf("distant cell = %v, want 0", got)
	}
}

// TestWaterDisturbIgnoresBorder verifies out-of-range drips are dropped
// instead of writing past the field.
func TestWaterDisturbIgnoresBorder(t *testing.T) {
	w := NewWater()
	if err := w.Initialize(context.Background(), 16, 16); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	w.disturb(0, 8, waterDrip)
	w.disturb(8, 15, waterDrip)
	w.disturb(-3, -3, waterDrip)

	for i, v := range w.previous {
		if v != 0 {
			t.Fatalf("cell %d = %v after border drips, want untouched field", i, v)
		}
	}
}

// TestWaterEnergyDecays verifies damping bleeds a lone ripple away over
// many undisturbed steps.
func TestWaterEnergyDecays(t *testing.T) {
	w := NewWater()
	if err := w.Initialize(context.Background(), 16, 16); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	w.disturb(8, 8, waterDrip)
	for i := 0; i < 600; i++ {
		w.propagate()
	}

	var peak float64
	for _, v := range w.previous {
		if v > peak {
			peak = v
		}
		if -v > peak {
			peak = -v
		}
	}
	if peak >= waterDrip/4 {
		t.Errorf("peak amplitude %v after 600 steps, want decay below %v", peak, waterDrip/4)
	}
}

// TestWaterRenderCoversBuffer verifies a full frame writes every pixel.
func TestWaterRenderCoversBuffer(t *testing.T) {
	w := NewWater()
	if err := w.Initialize(context.Background(), 32, 32); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	b := demofx.NewBuffer(32, 32, demofx.Magenta)
	w.Render(b, 0.5, 0.016)

	sentinel := demofx.Magenta.PackABGR()
	for i, p := range b.Pix() {
		if p == sentinel {
			t.Fatalf("pixel %d untouched", i)
		}
	}
}
