package effect

import (
	"context"
	"math/rand"
	"time"

	"github.com/patriksporre/demofx"
)

// Fire is the classic upward heat propagation. The heat buffer is two
// rows taller than the screen: the bottom two rows are the source,
// reseeded every frame with high intensities, and each visible cell cools
// to the average of the three cells below it and the cell two rows below.
// Heat maps to color through the fire palette.
type Fire struct {
	width  int
	height int
	heat   []uint8 // width * (height+2); rows height and height+1 are the source
	pal    *demofx.Palette
	rng    *rand.Rand
}

// NewFire creates the fire effect.
func NewFire() *Fire {
	return &Fire{}
}

// Initialize allocates the heat buffer and builds the palette.
func (f *Fire) Initialize(_ context.Context, width, height int) error {
	f.width = width
	f.height = height
	f.heat = make([]uint8, width*(height+2))
	f.pal = demofx.FirePalette()
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return nil
}

// Render reseeds the source rows, propagates the heat upward and maps it
// through the palette into the buffer.
func (f *Fire) Render(b *demofx.Buffer, _, _ float64) {
	f.seed()
	f.propagate()

	pix := b.Pix()
	for i := 0; i < f.width*f.height; i++ {
		pix[i] = f.pal.At(f.heat[i])
	}
}

// seed fills the two source rows with 255 or 127 at even odds.
func (f *Fire) seed() {
	source := f.heat[f.width*f.height:]
	for i := range source {
		if f.rng.Intn(2) == 0 {
			source[i] = 255
		} else {
			source[i] = 127
		}
	}
}

// propagate cools each cell to the mean of the three cells directly
// below it and the cell two rows below. Rows are walked top to bottom so
// every read sees the previous frame's values; a buffer with all-zero
// source rows stays all zero.
func (f *Fire) propagate() {
	w := f.width
	for y := 0; y < f.height; y++ {
		row := y * w
		below := row + w
		twoBelow := row + 2*w
		for x := 0; x < w; x++ {
			sum := int(f.heat[below+wrap(x-1, w)]) +
				int(f.heat[below+x]) +
				int(f.heat[below+wrap(x+1, w)]) +
				int(f.heat[twoBelow+x])
			f.heat[row+x] = uint8(sum / 4)
		}
	}
}
