// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package km

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

const (
	// NumPigments is the number of reference pigments in a Model.
	NumPigments = 5

	// NumLatents is the length of a latent vector: one concentration per
	// pigment followed by the R, G and B residuals.
	NumLatents = NumPigments + 3

	// DefaultGridSteps is the simplex subdivision used by Default.
	DefaultGridSteps = 12
)

// Model errors.
var (
	// ErrInvalidPigment reports a reflectance outside (0,1) or a
	// non-positive scattering strength.
	ErrInvalidPigment = errors.New("km: invalid pigment")

	// ErrInvalidGrid reports a non-positive grid subdivision.
	ErrInvalidGrid = errors.New("km: invalid grid steps")
)

// Latent is a pigment-concentration vector with residuals.
type Latent [NumLatents]float64

// Concentrations is one weight per reference pigment.
type Concentrations [NumPigments]float64

// gridPoint caches the mixture color of one simplex composition.
type gridPoint struct {
	c   Concentrations
	rgb [3]float64
}

// Model is a Kubelka–Munk mixing model over NumPigments reference pigments.
type Model struct {
	pigments [NumPigments]Pigment
	k        [NumPigments][3]float64
	s        [NumPigments][3]float64
	grid     []gridPoint
}

// NewModel builds a model from the given pigments.
// steps controls the resolution of the initial simplex search used by
// ToLatent; the grid has C(steps+NumPigments-1, NumPigments-1) points.
func NewModel(pigments [NumPigments]Pigment, steps int) (*Model, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrid, steps)
	}

	m := &Model{pigments: pigments}
	for i, p := range pigments {
		if !(p.Scattering > 0) {
			return nil, fmt.Errorf("%w: %q scattering %v", ErrInvalidPigment, p.Name, p.Scattering)
		}
		for ch, r := range p.Reflectance {
			if !(r > 0 && r < 1) {
				return nil, fmt.Errorf("%w: %q band %d reflectance %v", ErrInvalidPigment, p.Name, ch, r)
			}
			m.s[i][ch] = p.Scattering
			m.k[i][ch] = p.Scattering * absorption(r)
		}
	}

	m.grid = make([]gridPoint, 0, gridSize(steps))
	var c Concentrations
	m.compose(&c, 0, steps, steps)
	return m, nil
}

// compose enumerates every composition of remaining into the pigments
// from index i onward, in lexicographic order of the leading weights.
func (m *Model) compose(c *Concentrations, i, remaining, steps int) {
	if i == NumPigments-1 {
		c[i] = float64(remaining) / float64(steps)
		m.grid = append(m.grid, gridPoint{c: *c, rgb: m.Mix(*c)})
		return
	}
	for a := 0; a <= remaining; a++ {
		c[i] = float64(a) / float64(steps)
		m.compose(c, i+1, remaining-a, steps)
	}
}

// gridSize returns the binomial coefficient C(steps+NumPigments-1, NumPigments-1).
func gridSize(steps int) int {
	n, k := steps+NumPigments-1, NumPigments-1
	size := 1
	for i := 1; i <= k; i++ {
		size = size * (n - k + i) / i
	}
	return size
}

var defaultModel = sync.OnceValue(func() *Model {
	m, err := NewModel(ReferencePigments, DefaultGridSteps)
	if err != nil {
		panic(err)
	}
	return m
})

// Default returns the shared model built from ReferencePigments.
func Default() *Model {
	return defaultModel()
}

// Pigments returns the reference pigments of the model.
func (m *Model) Pigments() [NumPigments]Pigment {
	return m.pigments
}

// Mix returns the linear reflectance of a mixture.
// Negative concentrations count as zero; an empty mixture reflects nothing.
func (m *Model) Mix(c Concentrations) [3]float64 {
	var out [3]float64
	for ch := range out {
		var k, s float64
		for i, ci := range c {
			if ci <= 0 {
				continue
			}
			k += ci * m.k[i][ch]
			s += ci * m.s[i][ch]
		}
		if s <= 0 {
			continue
		}
		x := k / s
		out[ch] = 1 + x - math.Sqrt(x*x+2*x)
	}
	return out
}

// ToLatent maps a linear RGB color into the latent space.
func (m *Model) ToLatent(rgb [3]float64) Latent {
	target := rgb
	for ch, v := range target {
		target[ch] = clampUnit(v)
	}

	c := m.solve(target)
	mix := m.Mix(c)

	var l Latent
	copy(l[:NumPigments], c[:])
	for ch := range rgb {
		l[NumPigments+ch] = rgb[ch] - mix[ch]
	}
	return l
}

// ToRGB maps a latent vector back to linear RGB.
// The result is not clamped.
func (m *Model) ToRGB(l Latent) [3]float64 {
	var c Concentrations
	copy(c[:], l[:NumPigments])
	rgb := m.Mix(c)
	for ch := range rgb {
		rgb[ch] += l[NumPigments+ch]
	}
	return rgb
}

func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
