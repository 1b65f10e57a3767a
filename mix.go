// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pigment

import (
	"fmt"
	"math"

	"github.com/gogpu/pigment/internal/color"
)

// Encoding selects how the channels of a Color are interpreted.
type Encoding uint8

const (
	// EncodingSRGBU8 is gamma-encoded sRGB with channels in [0,255].
	// Channels are rounded to the nearest 8-bit code on input.
	EncodingSRGBU8 Encoding = iota

	// EncodingSRGBF32 is gamma-encoded sRGB with channels in [0,1].
	EncodingSRGBF32

	// EncodingLinear is linear-light sRGB with channels nominally in [0,1].
	EncodingLinear
)

// String implements fmt.Stringer.
func (e Encoding) String() string {
	switch e {
	case EncodingSRGBU8:
		return "sRGB-u8"
	case EncodingSRGBF32:
		return "sRGB-f32"
	case EncodingLinear:
		return "linear"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

func (e Encoding) valid() bool {
	return e <= EncodingLinear
}

// Color is an RGB triple in the units of some Encoding.
type Color [3]float32

// Pigment builds an opaque pigment from c interpreted in enc.
// It panics if enc is not a defined Encoding.
func (m *Mixer) Pigment(enc Encoding, c Color) Pigment {
	switch enc {
	case EncodingSRGBU8:
		return m.FromSRGBU8(byteOf(c[0]), byteOf(c[1]), byteOf(c[2]))
	case EncodingSRGBF32:
		return m.FromSRGBF32(c[0], c[1], c[2])
	case EncodingLinear:
		return m.FromLinear(c[0], c[1], c[2])
	default:
		panic(fmt.Sprintf("pigment: invalid encoding %v", enc))
	}
}

// Color converts p to a color in enc. EncodingSRGBU8 results are whole
// numbers in [0,255]; EncodingLinear results are not clamped.
// It panics if enc is not a defined Encoding.
func (m *Mixer) Color(enc Encoding, p Pigment) Color {
	switch enc {
	case EncodingSRGBU8:
		c := m.SRGBU8(p)
		return Color{float32(c[0]), float32(c[1]), float32(c[2])}
	case EncodingSRGBF32:
		return Color(m.SRGBF32(p))
	case EncodingLinear:
		lin := m.Linear(p)
		return Color{lin.R, lin.G, lin.B}
	default:
		panic(fmt.Sprintf("pigment: invalid encoding %v", enc))
	}
}

// Blend returns Σ weights[i]·pigment(colors[i]).
//
// Weights are used as given. When they sum to one the result has opacity 1;
// otherwise the opacity records the total weight. Blend returns
// ErrInvalidArgument for an undefined encoding, an empty mix or mismatched
// lengths.
func (m *Mixer) Blend(enc Encoding, colors []Color, weights []float32) (Pigment, error) {
	if !enc.valid() {
		return Pigment{}, fmt.Errorf("%w: encoding %v", ErrInvalidArgument, enc)
	}
	if err := checkWeights(len(colors), len(weights)); err != nil {
		return Pigment{}, err
	}

	var out Pigment
	var total float32
	for i, c := range colors {
		out = out.Add(m.Pigment(enc, c).Scale(weights[i]))
		total += weights[i]
	}
	if math.Abs(float64(total)-1) > 1e-4 {
		Logger().Debug("pigment: weights do not sum to one",
			"sum", total, "colors", len(colors))
	}
	return out, nil
}

// Mix blends colors with the given weights and converts the result back to
// enc. See Blend for the argument contract.
func (m *Mixer) Mix(enc Encoding, colors []Color, weights []float32) (Color, error) {
	p, err := m.Blend(enc, colors, weights)
	if err != nil {
		return Color{}, err
	}
	return m.Color(enc, p), nil
}

// MixSRGBU8 mixes two 8-bit encoded sRGB colors. ratio is the share of b,
// clamped to [0,1]: 0 returns a and 1 returns b.
func (m *Mixer) MixSRGBU8(a, b [3]uint8, ratio float32) [3]uint8 {
	pa := m.FromSRGBU8(a[0], a[1], a[2])
	pb := m.FromSRGBU8(b[0], b[1], b[2])
	return m.SRGBU8(pa.Lerp(pb, ratio))
}

// MixSRGBF32 mixes two encoded sRGB colors with components in [0,1].
// ratio is the share of b, clamped to [0,1].
func (m *Mixer) MixSRGBF32(a, b [3]float32, ratio float32) [3]float32 {
	pa := m.FromSRGBF32(a[0], a[1], a[2])
	pb := m.FromSRGBF32(b[0], b[1], b[2])
	return m.SRGBF32(pa.Lerp(pb, ratio))
}

// MixLinear mixes two linear-light colors. ratio is the share of b,
// clamped to [0,1].
func (m *Mixer) MixLinear(a, b Linear, ratio float32) Linear {
	pa := m.FromLinear(a.R, a.G, a.B)
	pb := m.FromLinear(b.R, b.G, b.B)
	return m.Linear(pa.Lerp(pb, ratio))
}

// MixLinearU16 mixes two 16-bit linear-light colors and returns 16-bit
// linear light. ratio is the share of b, clamped to [0,1].
func (m *Mixer) MixLinearU16(a, b [3]uint16, ratio float32) [3]uint16 {
	pa := m.FromLinearU16(a[0], a[1], a[2])
	pb := m.FromLinearU16(b[0], b[1], b[2])
	return m.LinearU16(pa.Lerp(pb, ratio))
}

// Mix blends colors with the Default mixer.
func Mix(enc Encoding, colors []Color, weights []float32) (Color, error) {
	return Default().Mix(enc, colors, weights)
}

// MixSRGBU8 mixes two 8-bit encoded sRGB colors with the Default mixer.
//
// The colors are linearized internally; the result is encoded again.
func MixSRGBU8(a, b [3]uint8, ratio float32) [3]uint8 {
	return Default().MixSRGBU8(a, b, ratio)
}

// MixSRGBF32 mixes two [0,1] encoded sRGB colors with the Default mixer.
func MixSRGBF32(a, b [3]float32, ratio float32) [3]float32 {
	return Default().MixSRGBF32(a, b, ratio)
}

// MixLinear mixes two linear-light colors with the Default mixer.
func MixLinear(a, b Linear, ratio float32) Linear {
	return Default().MixLinear(a, b, ratio)
}

// MixLinearU16 mixes two 16-bit linear-light colors with the Default mixer.
func MixLinearU16(a, b [3]uint16, ratio float32) [3]uint16 {
	return Default().MixLinearU16(a, b, ratio)
}

// byteOf rounds an 8-bit channel value held as float32 to a code.
func byteOf(v float32) uint8 {
	return color.UnitToU8(v / 255)
}
