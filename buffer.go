package demofx

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Buffer is the frame buffer at the heart of the blitter: a width x height
// rectangle of packed AA-BB-GG-RR pixels in a flat row-major slice,
// index = y*width + x. A Buffer is owned by whoever created it; effects
// receive a reference to write into each frame and never own it.
type Buffer struct {
	width      int
	height     int
	pix        []uint32
	background uint32
	clip       ClipRegion

	bytes []byte // lazily allocated RGBA byte view used by Bytes
}

// BufferOption configures a Buffer during creation.
type BufferOption func(*Buffer)

// WithClipRegion sets an initial clip region other than the full buffer.
func WithClipRegion(r ClipRegion) BufferOption {
	return func(b *Buffer) {
		b.clip = r.Intersect(NewClipRegion(0, 0, b.width, b.height))
	}
}

// NewBuffer allocates a width x height buffer filled with the background
// color. The background is remembered and reused by ClearDefault and as
// the fallback for out-of-range sampling.
func NewBuffer(width, height int, background Color, opts ...BufferOption) *Buffer {
	b := &Buffer{
		width:      width,
		height:     height,
		pix:        make([]uint32, width*height),
		background: background.PackABGR(),
		clip:       NewClipRegion(0, 0, width, height),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.ClearDefault()
	return b
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int { return b.height }

// Pix returns the raw packed pixel slice (AA-BB-GG-RR), row-major.
func (b *Buffer) Pix() []uint32 { return b.pix }

// Clip returns the current clip region.
func (b *Buffer) Clip() ClipRegion { return b.clip }

// SetClip replaces the clip region, intersected with the buffer bounds.
func (b *Buffer) SetClip(r ClipRegion) {
	b.clip = r.Intersect(NewClipRegion(0, 0, b.width, b.height))
}

// Background returns the packed background color.
func (b *Buffer) Background() uint32 { return b.background }

// Clear fills the entire buffer with one color.
func (b *Buffer) Clear(c Color) {
	b.ClearPacked(c.PackABGR())
}

// ClearPacked fills the entire buffer with one packed AA-BB-GG-RR value.
func (b *Buffer) ClearPacked(p uint32) {
	for i := range b.pix {
		b.pix[i] = p
	}
}

// ClearDefault fills the entire buffer with the background color.
func (b *Buffer) ClearDefault() {
	b.ClearPacked(b.background)
}

// SetPixel writes a color at (x, y). When clipped is true, writes outside
// the clip region are silently dropped. When clipped is false the write
// is unchecked: the caller guarantees the coordinate is in range, a
// deliberate trade-off for per-pixel inner loops. Fractional coordinates
// must be floored by the caller before the call.
func (b *Buffer) SetPixel(x, y int, c Color, clipped bool) {
	if clipped && b.clip.Outside(x, y) {
		return
	}
	b.pix[y*b.width+x] = c.PackABGR()
}

// SetPacked writes a packed AA-BB-GG-RR value at (x, y) with the same
// clipping semantics as SetPixel.
func (b *Buffer) SetPacked(x, y int, p uint32, clipped bool) {
	if clipped && b.clip.Outside(x, y) {
		return
	}
	b.pix[y*b.width+x] = p
}

// GetPixel reads the color at (x, y). When clipped is true and the
// coordinate is outside the clip region it returns (Color{}, false): the
// "no pixel" sentinel callers branch on, for example bilinear sampling at
// image edges falling back to a background fill. It never panics on
// clipped out-of-range access and never returns an error.
func (b *Buffer) GetPixel(x, y int, clipped bool) (Color, bool) {
	if clipped && b.clip.Outside(x, y) {
		return Color{}, false
	}
	return ColorFromABGR(b.pix[y*b.width+x]), true
}

// Packed reads the packed value at (x, y) without any bounds check.
func (b *Buffer) Packed(x, y int) uint32 {
	return b.pix[y*b.width+x]
}

// FillSpan fills the horizontal span [x1, x2) on row y with a packed
// value, clipped against the clip region. Spans with x1 >= x2 or rows
// outside the region are no-ops.
func (b *Buffer) FillSpan(x1, x2, y int, p uint32) {
	if y < b.clip.MinY || y >= b.clip.MaxY {
		return
	}
	x1 = max(x1, b.clip.MinX)
	x2 = min(x2, b.clip.MaxX)
	if x1 >= x2 {
		return
	}
	row := b.pix[y*b.width+x1 : y*b.width+x2]
	for i := range row {
		row[i] = p
	}
}

// Blit copies a srcW x srcH rectangle of packed pixels into the buffer
// with its top-left corner at (destX, destY). The source rectangle is
// intersected with the clip region when clipped is true, or with the full
// buffer bounds otherwise, and the surviving rows are copied with bulk
// range copies. An empty intersection is a no-op. This is the single
// bounds-safe primitive all inter-buffer compositing is built from.
func (b *Buffer) Blit(srcW, srcH int, src []uint32, destX, destY int, clipped bool) {
	bounds := NewClipRegion(0, 0, b.width, b.height)
	if clipped {
		bounds = b.clip
	}
	dest := NewClipRegion(destX, destY, destX+srcW, destY+srcH).Intersect(bounds)
	if dest.Empty() {
		return
	}
	for y := dest.MinY; y < dest.MaxY; y++ {
		srcRow := (y-destY)*srcW + (dest.MinX - destX)
		destRow := y*b.width + dest.MinX
		copy(b.pix[destRow:destRow+dest.Width()], src[srcRow:srcRow+dest.Width()])
	}
}

// BlitBuffer copies another buffer into this one at (destX, destY).
func (b *Buffer) BlitBuffer(src *Buffer, destX, destY int, clipped bool) {
	b.Blit(src.width, src.height, src.pix, destX, destY, clipped)
}

// CopyFrom overwrites the entire buffer with the contents of src, which
// must have identical dimensions. Mismatched dimensions are a no-op.
func (b *Buffer) CopyFrom(src *Buffer) {
	if src.width != b.width || src.height != b.height {
		return
	}
	copy(b.pix, src.pix)
}

// Present hands the buffer to a presentation surface. How the surface
// displays it is the surface's concern.
func (b *Buffer) Present(s Surface) error {
	return s.Present(b)
}

// Bytes returns the buffer as an RGBA byte stream (R, G, B, A per pixel),
// the layout presentation surfaces consume. The returned slice is reused
// across calls; it is valid until the next call to Bytes.
func (b *Buffer) Bytes() []byte {
	if b.bytes == nil {
		b.bytes = make([]byte, len(b.pix)*4)
	}
	for i, p := range b.pix {
		b.bytes[i*4+0] = uint8(p)
		b.bytes[i*4+1] = uint8(p >> 8)
		b.bytes[i*4+2] = uint8(p >> 16)
		b.bytes[i*4+3] = uint8(p >> 24)
	}
	return b.bytes
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	c, ok := b.GetPixel(x, y, true)
	if !ok {
		return color.NRGBA{}
	}
	return c.NRGBA()
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the buffer to an image.NRGBA.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.Bytes())
	return img
}

// FromImage creates a buffer from an image.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := NewBuffer(bounds.Dx(), bounds.Dy(), Black)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.pix[y*b.width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)).PackABGR()
		}
	}
	return b
}

// SavePNG saves the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, b.ToImage())
}
