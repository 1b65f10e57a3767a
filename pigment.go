// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pigment

import "fmt"

// Pigment is a mixable color: a latent vector plus an opacity.
//
// Pigments are immutable values. Scale, Add and Lerp return new pigments and
// never modify their operands. A pigment built from a single color has
// opacity 1; a weighted sum carries the sum of the weighted opacities, so a
// mix whose weights add up to one is again fully opaque.
//
// The opacity is bookkeeping for callers and is not applied when a pigment
// is converted back to a color.
type Pigment struct {
	latent  Latent
	opacity float32
}

// FromLatent returns an opaque pigment with the given latent vector.
func FromLatent(l Latent) Pigment {
	return Pigment{latent: l, opacity: 1}
}

// Latent returns the latent vector of p.
func (p Pigment) Latent() Latent {
	return p.latent
}

// Opacity returns the accumulated opacity of p.
func (p Pigment) Opacity() float32 {
	return p.opacity
}

// WithOpacity returns a copy of p with the given opacity.
func (p Pigment) WithOpacity(opacity float32) Pigment {
	p.opacity = opacity
	return p
}

// Scale returns w·p: both the latent vector and the opacity are multiplied
// by w.
func (p Pigment) Scale(w float32) Pigment {
	out := Pigment{opacity: p.opacity * w}
	for i, v := range p.latent {
		out.latent[i] = v * w
	}
	return out
}

// Add returns p + q: latent vectors and opacities are summed.
func (p Pigment) Add(q Pigment) Pigment {
	out := Pigment{opacity: p.opacity + q.opacity}
	for i := range p.latent {
		out.latent[i] = p.latent[i] + q.latent[i]
	}
	return out
}

// Lerp returns (1-ratio)·p + ratio·q. ratio is clamped to [0,1].
func (p Pigment) Lerp(q Pigment, ratio float32) Pigment {
	ratio = clampRatio(ratio)
	return p.Scale(1 - ratio).Add(q.Scale(ratio))
}

// String implements fmt.Stringer.
func (p Pigment) String() string {
	return fmt.Sprintf("Pigment{latent: %v, opacity: %g}", p.latent, p.opacity)
}

// Sum returns the sum of the given pigments. The sum of no pigments is the
// zero pigment, which has opacity 0.
func Sum(pigments ...Pigment) Pigment {
	var out Pigment
	for _, p := range pigments {
		out = out.Add(p)
	}
	return out
}

// WeightedSum returns Σ weights[i]·pigments[i].
//
// The weights are used as given; they are not renormalized. It returns
// ErrInvalidArgument if the slices are empty or differ in length.
func WeightedSum(pigments []Pigment, weights []float32) (Pigment, error) {
	if err := checkWeights(len(pigments), len(weights)); err != nil {
		return Pigment{}, err
	}

	var out Pigment
	for i, p := range pigments {
		out = out.Add(p.Scale(weights[i]))
	}
	return out, nil
}

func checkWeights(colors, weights int) error {
	if colors != weights {
		return fmt.Errorf("%w: %d colors but %d weights", ErrInvalidArgument, colors, weights)
	}
	if colors == 0 {
		return fmt.Errorf("%w: nothing to mix", ErrInvalidArgument)
	}
	return nil
}

// clampRatio restricts a two-color mixing ratio to [0,1]. NaN maps to 0.
func clampRatio(r float32) float32 {
	if !(r > 0) {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
