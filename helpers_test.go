// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pigment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// stubTransform stores linear RGB in the first three latent slots, which
// turns pigment mixing into plain linear-light averaging.
type stubTransform struct{}

func (stubTransform) ToLatent(c Linear) Latent {
	return Latent{c.R, c.G, c.B}
}

func (stubTransform) ToRGB(l Latent) Linear {
	return Linear{R: l[0], G: l[1], B: l[2]}
}

// countingTransform wraps a Transform and counts forward calls.
type countingTransform struct {
	Transform
	calls *int
}

func (c countingTransform) ToLatent(l Linear) Latent {
	*c.calls++
	return c.Transform.ToLatent(l)
}

var approx = cmpopts.EquateApprox(0, 1e-6)

func assertApprox(t *testing.T, name string, got, want any) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// within reports whether every channel of got is within tol of want.
func within(got, want [3]uint8, tol int) bool {
	for i := range got {
		d := int(got[i]) - int(want[i])
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}
