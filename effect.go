package demofx

import "context"

// Effect is the contract between the frame scheduler and a visual effect.
//
// Initialize runs exactly once before the first frame. It receives the
// buffer dimensions so the effect can precompute palettes, lookup tables
// and paths, and may block while an image asset loads; the context covers
// that load. Render runs once per displayed frame and must leave every
// pixel of the buffer in the effect's intended state: partial writes from
// a previously active effect must not leak through unless the effect
// explicitly composites. Render never blocks; anything expensive belongs
// in Initialize.
type Effect interface {
	Initialize(ctx context.Context, width, height int) error
	Render(b *Buffer, elapsed, delta float64)
}

// VariantSwitcher is implemented by effects with selectable variants.
// The runner maps number keys to SetVariant calls. Variant state belongs
// to the effect instance; there is no shared global selector.
type VariantSwitcher interface {
	SetVariant(v int)
	Variant() int
}
