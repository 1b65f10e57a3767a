// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package km

// Pigment describes a reference pigment.
type Pigment struct {
	// Name is informational only.
	Name string

	// Reflectance is the masstone reflectance in the linear R, G and B bands.
	// Each band must lie in (0,1).
	Reflectance [3]float64

	// Scattering is the relative scattering strength. Larger values make the
	// pigment dominate a mixture. Must be positive.
	Scattering float64
}

// ReferencePigments is the palette used by Default.
var ReferencePigments = [NumPigments]Pigment{
	{Name: "yellow", Reflectance: [3]float64{0.97, 0.836, 0.01}, Scattering: 2.416},
	{Name: "red", Reflectance: [3]float64{0.97, 0.042, 0.057}, Scattering: 4.858},
	{Name: "phthalo", Reflectance: [3]float64{0.009, 0.555, 0.465}, Scattering: 0.116},
	{Name: "white", Reflectance: [3]float64{0.98, 0.98, 0.98}, Scattering: 2.868},
	{Name: "black", Reflectance: [3]float64{0.01, 0.01, 0.01}, Scattering: 0.094},
}

// absorption returns K/S for a masstone reflectance r.
func absorption(r float64) float64 {
	return (1 - r) * (1 - r) / (2 * r)
}
