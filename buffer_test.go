package demofx

import "testing"

// TestNewBufferFill verifies a fresh buffer is filled with its
// background: the 4x4 / 0xFF0000FF scenario. In the AA-BB-GG-RR layout
// that value is alpha=255, red=255, green=0, blue=0.
func TestNewBufferFill(t *testing.T) {
	b := NewBuffer(4, 4, ColorFromABGR(0xFF0000FF))

	if len(b.Pix()) != 16 {
		t.Fatalf("pixel count = %d, want 16", len(b.Pix()))
	}
	for i, p := range b.Pix() {
		if p != 0xFF0000FF {
			t.Fatalf("pixel %d = %#08x, want 0xFF0000FF", i, p)
		}
	}
}

// TestSetPixelClipped verifies the 10x10 scenario: an in-bounds write
// lands at exactly one index and an out-of-bounds clipped write is a
// silent no-op.
func TestSetPixelClipped(t *testing.T) {
	b := NewBuffer(10, 10, Black)
	before := make([]uint32, len(b.Pix()))
	copy(before, b.Pix())

	b.SetPixel(5, 5, Red, true)
	b.SetPixel(15, 5, Red, true)

	for i, p := range b.Pix() {
		switch i {
		case 5*10 + 5:
			if p != Red.PackABGR() {
				t.Errorf("pixel (5,5) = %#08x, want red", p)
			}
		default:
			if p != before[i] {
				t.Errorf("pixel %d changed by out-of-bounds write", i)
			}
		}
	}
}

// TestGetPixelClipped verifies set-then-get round trips inside bounds and
// the "no pixel" sentinel outside.
func TestGetPixelClipped(t *testing.T) {
	b := NewBuffer(10, 10, Black)
	b.SetPixel(3, 7, Cyan, true)

	c, ok := b.GetPixel(3, 7, true)
	if !ok || c != Cyan {
		t.Errorf("GetPixel(3,7) = %+v, %v; want cyan, true", c, ok)
	}

	oob := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {-5, -5}, {100, 100},
	}
	for _, p := range oob {
		if _, ok := b.GetPixel(p.x, p.y, true); ok {
			t.Errorf("GetPixel(%d,%d) should report no pixel", p.x, p.y)
		}
	}
}

// TestSetPixelRespectsClipRegion verifies a narrowed clip region drops
// writes that are inside the buffer but outside the region.
func TestSetPixelRespectsClipRegion(t *testing.T) {
	b := NewBuffer(10, 10, Black)
	b.SetClip(NewClipRegion(2, 2, 8, 8))

	b.SetPixel(1, 1, Red, true)
	b.SetPixel(2, 2, Red, true)

	if _, ok := b.GetPixel(1, 1, true); ok {
		t.Error("GetPixel(1,1) should be outside the clip region")
	}
	if b.Packed(1, 1) != Black.PackABGR() {
		t.Error("clipped write at (1,1) should be a no-op")
	}
	if b.Packed(2, 2) != Red.PackABGR() {
		t.Error("write at clip region corner (2,2) should land")
	}
}

// TestBlitIdentity verifies blitting an equal-sized source at (0,0)
// reproduces the source exactly.
func TestBlitIdentity(t *testing.T) {
	src := NewBuffer(8, 8, Black)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetPixel(x, y, NewColor(255, float64(x*32), float64(y*32), 0), true)
		}
	}

	dst := NewBuffer(8, 8, White)
	dst.Blit(8, 8, src.Pix(), 0, 0, true)

	for i := range dst.Pix() {
		if dst.Pix()[i] != src.Pix()[i] {
			t.Fatalf("pixel %d = %#08x, want %#08x", i, dst.Pix()[i], src.Pix()[i])
		}
	}
}

// TestBlitFullyOutside verifies a blit entirely outside the destination
// leaves it byte-identical.
func TestBlitFullyOutside(t *testing.T) {
	dst := NewBuffer(10, 10, Blue)
	before := make([]uint32, len(dst.Pix()))
	copy(before, dst.Pix())

	src := make([]uint32, 5*5)
	for i := range src {
		src[i] = Red.PackABGR()
	}

	offsets := []struct{ x, y int }{
		{-5, 0}, {0, -5}, {10, 0}, {0, 10}, {-100, -100}, {50, 50},
	}
	for _, o := range offsets {
		dst.Blit(5, 5, src, o.x, o.y, true)
	}

	for i, p := range dst.Pix() {
		if p != before[i] {
			t.Fatalf("pixel %d changed by fully-outside blit", i)
		}
	}
}

// TestBlitPartialOverlap verifies row-wise clipping on a straddling blit.
func TestBlitPartialOverlap(t *testing.T) {
	dst := NewBuffer(10, 10, Black)
	src := make([]uint32, 4*4)
	for i := range src {
		src[i] = Green.PackABGR()
	}

	// Top-left corner of the source hangs off the top-left of dst.
	dst.Blit(4, 4, src, -2, -2, true)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := Black.PackABGR()
			if x < 2 && y < 2 {
				want = Green.PackABGR()
			}
			if got := dst.Packed(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

// TestBlitAgainstClipRegion verifies the blit intersects the clip region
// rather than the full bounds when clipping is requested.
func TestBlitAgainstClipRegion(t *testing.T) {
	dst := NewBuffer(10, 10, Black)
	dst.SetClip(NewClipRegion(0, 0, 5, 5))
	src := make([]uint32, 10*10)
	for i := range src {
		src[i] = Yellow.PackABGR()
	}

	dst.Blit(10, 10, src, 0, 0, true)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := Black.PackABGR()
			if x < 5 && y < 5 {
				want = Yellow.PackABGR()
			}
			if got := dst.Packed(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

// TestFillSpan verifies span filling with clipping on both ends.
func TestFillSpan(t *testing.T) {
	tests := []struct {
		name   string
		x1, x2 int
		y      int
		filled int
	}{
		{"interior", 2, 8, 5, 6},
		{"clipped left", -5, 3, 5, 3},
		{"clipped right", 7, 20, 5, 3},
		{"row below", 2, 8, 10, 0},
		{"row above", 2, 8, -1, 0},
		{"inverted", 8, 2, 5, 0},
		{"empty", 4, 4, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(10, 10, Black)
			b.FillSpan(tt.x1, tt.x2, tt.y, Magenta.PackABGR())

			filled := 0
			for _, p := range b.Pix() {
				if p == Magenta.PackABGR() {
					filled++
				}
			}
			if filled != tt.filled {
				t.Errorf("filled %d pixels, want %d", filled, tt.filled)
			}
		})
	}
}

// TestBufferBytes verifies the little-endian RGBA byte view matches the
// packed layout.
func TestBufferBytes(t *testing.T) {
	b := NewBuffer(2, 1, Black)
	b.SetPixel(0, 0, Color{A: 0xAA, R: 0x11, G: 0x22, B: 0x33}, true)

	data := b.Bytes()
	if data[0] != 0x11 || data[1] != 0x22 || data[2] != 0x33 || data[3] != 0xAA {
		t.Errorf("byte order = % x, want 11 22 33 aa", data[:4])
	}
}

// TestBufferImageRoundTrip verifies ToImage / FromImage preserve pixels.
func TestBufferImageRoundTrip(t *testing.T) {
	b := NewBuffer(4, 3, Black)
	b.SetPixel(1, 2, Color{A: 255, R: 10, G: 20, B: 30}, true)

	back := FromImage(b.ToImage())
	if back.Width() != 4 || back.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", back.Width(), back.Height())
	}
	for i := range b.Pix() {
		if b.Pix()[i] != back.Pix()[i] {
			t.Fatalf("pixel %d = %#08x, want %#08x", i, back.Pix()[i], b.Pix()[i])
		}
	}
}

// TestCopyFrom verifies whole-buffer copies and the dimension guard.
func TestCopyFrom(t *testing.T) {
	src := NewBuffer(4, 4, Red)
	dst := NewBuffer(4, 4, Black)
	dst.CopyFrom(src)
	if dst.Packed(3, 3) != Red.PackABGR() {
		t.Error("CopyFrom should replicate the source")
	}

	other := NewBuffer(5, 4, Green)
	dst.CopyFrom(other)
	if dst.Packed(0, 0) != Red.PackABGR() {
		t.Error("mismatched dimensions should leave the destination unchanged")
	}
}

// BenchmarkBufferClear benchmarks clearing buffers of various sizes.
func BenchmarkBufferClear(b *testing.B) {
	sizes := []struct {
		name   string
		width  int
		height int
	}{
		{"320x200", 320, 200},
		{"640x480", 640, 480},
		{"1920x1080", 1920, 1080},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			buf := NewBuffer(size.width, size.height, Black)
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				buf.Clear(Red)
			}
			b.SetBytes(int64(size.width * size.height * 4))
		})
	}
}

// BenchmarkBufferBlit benchmarks a full-size blit.
func BenchmarkBufferBlit(b *testing.B) {
	dst := NewBuffer(640, 480, Black)
	src := NewBuffer(640, 480, Red)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dst.BlitBuffer(src, 0, 0, true)
	}
	b.SetBytes(int64(640 * 480 * 4))
}
