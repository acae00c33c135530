// Package effect implements the per-frame procedural effect kernels:
// plasma, fire, starfields, bump mapping, bilinear zoom, rotozoomer,
// twirl, water ripple, metaballs and the twister.
//
// Every kernel is an independent demofx.Effect: Initialize runs once and
// precomputes palettes, lookup tables and paths (loading image assets
// where needed); Render runs once per displayed frame and fills the
// shared buffer pixel by pixel. Kernels with selectable variants also
// implement demofx.VariantSwitcher.
//
// Kernels that sample a source image (zoom, rotozoomer, twirl, water,
// bump) accept an optional asset path and fall back to a generated
// texture when none is given, so the whole suite runs without assets on
// disk.
package effect
