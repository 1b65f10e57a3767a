// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pigment

import "github.com/gogpu/pigment/internal/km"

// LatentSize is the length of a latent vector.
const LatentSize = km.NumLatents

// Latent is a pigment-concentration vector produced by a Transform.
//
// Latent vectors form a vector space: they may be scaled and added. Only the
// Transform that produced a vector can interpret it.
type Latent [LatentSize]float32

// Linear is a color in linear-light sRGB. Components are nominally in
// [0,1] but intermediate results may lie outside that range.
type Linear struct {
	R, G, B float32
}

// Transform maps linear-light colors to latent vectors and back.
//
// Implementations must be deterministic and safe for concurrent use.
// ToRGB(ToLatent(c)) should reproduce c closely for c in [0,1]³; ToRGB must
// accept any linear combination of latent vectors and may return
// out-of-range values, which are clamped when encoded.
type Transform interface {
	ToLatent(c Linear) Latent
	ToRGB(l Latent) Linear
}

// kmTransform adapts the internal/km model to Transform.
type kmTransform struct {
	model *km.Model
}

// KubelkaMunk returns the default transform: a three-band Kubelka–Munk model
// over five reference pigments (yellow, red, phthalo, white, black) whose
// latent vector is five concentrations followed by three residuals.
func KubelkaMunk() Transform {
	return kmTransform{model: km.Default()}
}

func (t kmTransform) ToLatent(c Linear) Latent {
	l := t.model.ToLatent([3]float64{float64(c.R), float64(c.G), float64(c.B)})

	var out Latent
	for i, v := range l {
		out[i] = float32(v)
	}
	return out
}

func (t kmTransform) ToRGB(l Latent) Linear {
	var in km.Latent
	for i, v := range l {
		in[i] = float64(v)
	}
	rgb := t.model.ToRGB(in)
	return Linear{R: float32(rgb[0]), G: float32(rgb[1]), B: float32(rgb[2])}
}

func (kmTransform) String() string { return "kubelka-munk" }
