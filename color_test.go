package demofx

import "testing"

// TestClampChannel verifies clamping to [0, 255] with truncation toward zero.
func TestClampChannel(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"negative", -10, 0},
		{"zero", 0, 0},
		{"fractional truncates", 127.9, 127},
		{"in range", 200, 200},
		{"upper bound", 255, 255},
		{"above range", 300, 255},
		{"barely negative", -0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampChannel(tt.in); got != tt.want {
				t.Errorf("ClampChannel(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// TestNewColorClamps verifies construction clamps every channel.
func TestNewColorClamps(t *testing.T) {
	c := NewColor(300, -5, 127.7, 255)
	want := Color{A: 255, R: 0, G: 127, B: 255}
	if c != want {
		t.Errorf("NewColor = %+v, want %+v", c, want)
	}
}

// TestPackRoundTrip verifies decompose-then-recompose is the identity
// within each packing convention.
func TestPackRoundTrip(t *testing.T) {
	colors := []Color{
		{A: 255, R: 0, G: 0, B: 0},
		{A: 255, R: 255, G: 255, B: 255},
		{A: 0, R: 1, G: 2, B: 3},
		{A: 128, R: 200, G: 100, B: 50},
	}

	for _, c := range colors {
		if got := ColorFromABGR(c.PackABGR()); got != c {
			t.Errorf("ABGR round trip: got %+v, want %+v", got, c)
		}
		if got := ColorFromARGB(c.PackARGB()); got != c {
			t.Errorf("ARGB round trip: got %+v, want %+v", got, c)
		}
	}
}

// TestPackCrossConvention verifies that crossing conventions swaps the
// red and blue channels, which is how buffer byte order is reinterpreted.
func TestPackCrossConvention(t *testing.T) {
	c := Color{A: 10, R: 20, G: 30, B: 40}
	got := ColorFromARGB(c.PackABGR())
	want := Color{A: 10, R: 40, G: 30, B: 20}
	if got != want {
		t.Errorf("cross-convention: got %+v, want %+v", got, want)
	}
}

// TestPackABGRLayout pins the exact byte layout: alpha highest, then
// blue, green, red.
func TestPackABGRLayout(t *testing.T) {
	c := Color{A: 0xAA, R: 0x11, G: 0x22, B: 0x33}
	if got := c.PackABGR(); got != 0xAA332211 {
		t.Errorf("PackABGR = %#08x, want 0xAA332211", got)
	}
	if got := c.PackARGB(); got != 0xAA112233 {
		t.Errorf("PackARGB = %#08x, want 0xAA112233", got)
	}
}

// TestColorLerp verifies endpoint and midpoint interpolation.
func TestColorLerp(t *testing.T) {
	a := Color{A: 255, R: 0, G: 0, B: 0}
	b := Color{A: 255, R: 255, G: 255, B: 255}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid.R != 127 || mid.G != 127 || mid.B != 127 {
		t.Errorf("Lerp(0.5) = %+v, want channels 127", mid)
	}
}

// TestColorLuma verifies the Rec. 601 weighting on primaries.
func TestColorLuma(t *testing.T) {
	if got := White.Luma(); got < 254 {
		t.Errorf("White.Luma() = %d, want >= 254", got)
	}
	if got := Black.Luma(); got != 0 {
		t.Errorf("Black.Luma() = %d, want 0", got)
	}
	if g, r := Green.Luma(), Red.Luma(); g <= r {
		t.Errorf("green luma (%d) should exceed red luma (%d)", g, r)
	}
}
