// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package km

import "slices"

// Solver parameters.
const (
	maxIterations = 80
	initialStep   = 0.25
	minStep       = 1e-7
	gradientDelta = 1e-5
)

// solve returns the simplex point whose mixture best matches target.
//
// The search starts at the best grid composition and refines it with
// projected gradient descent using a forward-difference gradient and a
// step that doubles on success and halves on failure.
func (m *Model) solve(target [3]float64) Concentrations {
	best := m.grid[0]
	bestErr := squaredError(best.rgb, target)
	for _, g := range m.grid[1:] {
		if e := squaredError(g.rgb, target); e < bestErr {
			best, bestErr = g, e
		}
	}

	c := best.c
	step := initialStep
	for range maxIterations {
		e := m.objective(c, target)

		var grad Concentrations
		for i := range c {
			nudged := c
			nudged[i] += gradientDelta
			grad[i] = (m.objective(nudged, target) - e) / gradientDelta
		}

		moved := false
		for step > minStep {
			var next Concentrations
			for i := range c {
				next[i] = c[i] - step*grad[i]
			}
			next = projectSimplex(next)
			if m.objective(next, target) < e {
				c = next
				step *= 2
				moved = true
				break
			}
			step *= 0.5
		}
		if !moved {
			break
		}
	}
	return c
}

func (m *Model) objective(c Concentrations, target [3]float64) float64 {
	return squaredError(m.Mix(c), target)
}

func squaredError(a, b [3]float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// projectSimplex returns the Euclidean projection of v onto the unit simplex
// {c : cᵢ ≥ 0, Σcᵢ = 1}.
func projectSimplex(v Concentrations) Concentrations {
	u := v
	slices.Sort(u[:])
	slices.Reverse(u[:])

	var sum, theta float64
	for j, uj := range u {
		sum += uj
		t := (sum - 1) / float64(j+1)
		if uj-t > 0 {
			theta = t
		}
	}

	var out Concentrations
	for i, vi := range v {
		out[i] = max(vi-theta, 0)
	}
	return out
}
