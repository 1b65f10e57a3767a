// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pigment

import (
	"math"
	"math/rand/v2"
)

// QuantizeTriplet scales v by one, adds a single random offset in
// [-0.5, 0.5) shared by all three channels, rounds, and clamps to [lo, hi].
//
// Sharing the offset dithers brightness without introducing hue noise.
func QuantizeTriplet(v [3]float32, one, lo, hi float32, rng *rand.Rand) [3]float32 {
	offset := rng.Float32() - 0.5

	var out [3]float32
	for i, c := range v {
		q := float32(math.Round(float64(one*c + offset)))
		out[i] = min(max(q, lo), hi)
	}
	return out
}

// MixSRGBU8Dither mixes two 8-bit encoded sRGB colors like MixSRGBU8 but
// quantizes the result with a random dither of amplitude 0.5 instead of
// rounding, which avoids banding in gradients.
func (m *Mixer) MixSRGBU8Dither(a, b [3]uint8, ratio float32, rng *rand.Rand) [3]uint8 {
	pa := m.FromSRGBU8(a[0], a[1], a[2])
	pb := m.FromSRGBU8(b[0], b[1], b[2])
	enc := m.SRGBF32(pa.Lerp(pb, ratio))

	q := QuantizeTriplet(enc, 255, 0, 255, rng)
	return [3]uint8{uint8(q[0]), uint8(q[1]), uint8(q[2])} //nolint:gosec // G115: clamped to [0,255]
}

// MixSRGBU8Dither mixes two 8-bit encoded sRGB colors with the Default mixer
// and dithers the result.
func MixSRGBU8Dither(a, b [3]uint8, ratio float32, rng *rand.Rand) [3]uint8 {
	return Default().MixSRGBU8Dither(a, b, ratio, rng)
}
