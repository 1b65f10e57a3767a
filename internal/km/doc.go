// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package km implements the default pigment transform: a three-band
// Kubelka–Munk model over a fixed set of reference pigments.
//
// # Model
//
// Each reference pigment is described by its masstone reflectance R in the
// linear red, green and blue bands and by a scattering strength S. The
// absorption coefficient follows from the single-layer Kubelka–Munk relation
//
//	K = S · (1 − R)² / (2R)
//
// A mixture with concentrations c has, per band,
//
//	k = Σ cᵢKᵢ,  s = Σ cᵢSᵢ,  x = k/s,  R = 1 + x − √(x² + 2x)
//
// # Latent vector
//
// The latent vector holds NumPigments concentrations followed by three
// linear-light residuals. ToLatent searches the unit simplex for the
// concentrations whose mixture is closest to the target color and stores the
// remaining difference as the residual; ToRGB evaluates the mixture and adds
// the residual back. Since both halves are carried through a weighted sum,
// mixing behaves like paint while the round trip stays exact.
//
// # Thread Safety
//
// A Model is immutable after construction and safe for concurrent use.
package km
