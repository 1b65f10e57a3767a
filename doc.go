// Package pigment predicts the color of physically mixed paint.
//
// # Overview
//
// Averaging RGB values mixes light, not paint: red and green average to a
// muddy yellow in sRGB and to a bright yellow in linear light. Real pigments
// absorb and scatter light, so yellow and blue make green and complementary
// colors darken each other. pigment models this with the Kubelka–Munk theory.
//
// Every mix runs through the same pipeline:
//
//	encoded sRGB → decode → linear light → Transform.ToLatent → latent vector
//	    → weighted sum → Transform.ToRGB → linear light → encode → encoded sRGB
//
// # Quick Start
//
//	import "github.com/gogpu/pigment"
//
//	yellow := [3]uint8{252, 211, 0}
//	blue := [3]uint8{0, 0, 96}
//
//	// 50/50 mix, encoded sRGB in and out
//	green := pigment.MixSRGBU8(yellow, blue, 0.5)
//
// # Pigment Algebra
//
// A Pigment holds a latent vector and an opacity. Pigments scale and add
// like vectors, which expresses any N-way mix:
//
//	w := float32(1) / 3
//	p := pigment.FromSRGBU8(252, 211, 0).Scale(w).
//	    Add(pigment.FromSRGBU8(201, 37, 44).Scale(w)).
//	    Add(pigment.FromSRGBU8(0, 0, 96).Scale(w))
//	rgb := pigment.ToSRGBU8(p)
//
// Weights are never renormalized. When they sum to one the result has
// opacity 1; otherwise the opacity records the total weight.
//
// The generic entry point Mixer.Mix takes any number of colors in one of
// the Encoding variants and returns an error for mismatched arguments.
//
// # Transforms
//
// The mapping between linear light and latent space is a Transform. The
// default, KubelkaMunk, is a three-band model over five reference pigments.
// Custom transforms are installed with WithTransform. Transforms always work
// in linear light; gamma decoding and encoding happen at the boundary.
//
// # Thread Safety
//
// Pigments are immutable values and a Mixer only holds configuration and a
// concurrent cache, so every function in this package may be called from
// multiple goroutines.
package pigment
