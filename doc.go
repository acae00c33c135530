// Package demofx provides a software blitter and a family of per-frame
// procedural visual effects (plasma, fire, starfields, bump mapping,
// metaballs, rotozoomer, twister, water ripple).
//
// # Overview
//
// demofx renders entirely on the CPU into a packed-pixel frame buffer.
// The root package owns the building blocks: [Color], [Vec2]/[Vec3],
// [ClipRegion], the [Buffer] blitter core, the [Lissajous] path generator,
// [Palette] generation and the [Runner] frame scheduler. The effect
// kernels live in the effect subpackage, presentation surfaces in
// surface/, and image asset loading in asset/.
//
// # Quick Start
//
//	import (
//	    "context"
//
//	    "github.com/patriksporre/demofx"
//	    "github.com/patriksporre/demofx/effect"
//	    "github.com/patriksporre/demofx/surface/imgseq"
//	)
//
//	s, _ := imgseq.New("frames", 320, 200)
//	r := demofx.NewRunner(s)
//	r.Add("plasma", effect.NewPlasma())
//	_ = r.Run(context.Background())
//
// # Pixel Format
//
// A [Buffer] stores one packed 32-bit value per pixel, row-major, in the
// AA-BB-GG-RR convention: alpha in the high byte, then blue, green and
// red. On a little-endian machine the in-memory byte order is therefore
// R, G, B, A, which is what presentation surfaces consume directly.
// [Color] converts to and from both this convention and standard ARGB.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Concurrency
//
// Rendering is single-threaded by design: one effect writes into one
// buffer per frame, driven by the [Runner]. Precomputed lookup tables
// (palettes, height maps, light maps) are read-only during rendering.
package demofx
