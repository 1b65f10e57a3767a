// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pigment

import (
	"errors"
	"math"
	"strings"
	"testing"
)

var (
	latentA = Latent{0.5, 0.25, 0, 0.125, 0.125, 0.01, -0.02, 0.03}
	latentB = Latent{0, 0.5, 0.25, 0.25, 0, -0.01, 0.04, 0}
)

func TestFromLatent(t *testing.T) {
	p := FromLatent(latentA)
	if p.Latent() != latentA {
		t.Errorf("Latent() = %v, want %v", p.Latent(), latentA)
	}
	if p.Opacity() != 1 {
		t.Errorf("Opacity() = %v, want 1", p.Opacity())
	}
}

func TestZeroPigmentIsIdentity(t *testing.T) {
	var zero Pigment
	if zero.Opacity() != 0 {
		t.Errorf("zero opacity = %v, want 0", zero.Opacity())
	}

	p := FromLatent(latentA)
	if got := p.Add(zero); got != p {
		t.Errorf("p + 0 = %v, want %v", got, p)
	}
	if got := zero.Add(p); got != p {
		t.Errorf("0 + p = %v, want %v", got, p)
	}
}

func TestAddCommutative(t *testing.T) {
	p, q := FromLatent(latentA), FromLatent(latentB)
	if p.Add(q) != q.Add(p) {
		t.Errorf("p+q = %v, q+p = %v", p.Add(q), q.Add(p))
	}
}

func TestAddAssociative(t *testing.T) {
	p, q, r := FromLatent(latentA), FromLatent(latentB), FromLatent(latentA).Scale(0.5)
	assertApprox(t, "latent", p.Add(q).Add(r).Latent(), p.Add(q.Add(r)).Latent())
	assertApprox(t, "opacity", p.Add(q).Add(r).Opacity(), p.Add(q.Add(r)).Opacity())
}

func TestScale(t *testing.T) {
	p := FromLatent(latentA)

	tests := []struct {
		name string
		w    float32
	}{
		{"identity", 1},
		{"half", 0.5},
		{"zero", 0},
		{"negative", -2},
		{"large", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Scale(tt.w)
			for i, v := range got.Latent() {
				if want := latentA[i] * tt.w; v != want {
					t.Errorf("latent[%d] = %v, want %v", i, v, want)
				}
			}
			if got.Opacity() != tt.w {
				t.Errorf("Opacity() = %v, want %v", got.Opacity(), tt.w)
			}
		})
	}
}

func TestScaleComposes(t *testing.T) {
	p := FromLatent(latentA)
	// Powers of two keep the products exact.
	if p.Scale(0.5).Scale(4) != p.Scale(2) {
		t.Errorf("p.Scale(0.5).Scale(4) != p.Scale(2)")
	}
}

func TestScaleDistributes(t *testing.T) {
	p, q := FromLatent(latentA), FromLatent(latentB)
	w := float32(0.3)
	assertApprox(t, "latent", p.Add(q).Scale(w).Latent(), p.Scale(w).Add(q.Scale(w)).Latent())
}

func TestOperandsUnchanged(t *testing.T) {
	p, q := FromLatent(latentA), FromLatent(latentB)
	_ = p.Scale(3)
	_ = p.Add(q)
	_ = p.Lerp(q, 0.5)
	if p.Latent() != latentA || q.Latent() != latentB || p.Opacity() != 1 {
		t.Error("operations modified their operands")
	}
}

func TestOpacityOfWeightedMix(t *testing.T) {
	pigments := []Pigment{FromLatent(latentA), FromLatent(latentB), FromLatent(latentA)}

	tests := []struct {
		name    string
		weights []float32
		want    float32
	}{
		{"sums to one", []float32{0.25, 0.25, 0.5}, 1},
		{"thirds", []float32{1.0 / 3, 1.0 / 3, 1.0 / 3}, 1},
		{"sums to half", []float32{0.25, 0.125, 0.125}, 0.5},
		{"sums to two", []float32{1, 0.5, 0.5}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := WeightedSum(pigments, tt.weights)
			if err != nil {
				t.Fatalf("WeightedSum: %v", err)
			}
			if math.Abs(float64(p.Opacity()-tt.want)) > 1e-6 {
				t.Errorf("Opacity() = %v, want %v", p.Opacity(), tt.want)
			}
		})
	}
}

func TestWeightedSumMatchesScaleAdd(t *testing.T) {
	p, q := FromLatent(latentA), FromLatent(latentB)
	got, err := WeightedSum([]Pigment{p, q}, []float32{0.75, 0.25})
	if err != nil {
		t.Fatalf("WeightedSum: %v", err)
	}
	want := Pigment{}.Add(p.Scale(0.75)).Add(q.Scale(0.25))
	if got != want {
		t.Errorf("WeightedSum = %v, want %v", got, want)
	}
}

func TestWeightedSumErrors(t *testing.T) {
	p := FromLatent(latentA)

	tests := []struct {
		name     string
		pigments []Pigment
		weights  []float32
	}{
		{"empty", nil, nil},
		{"more weights", []Pigment{p}, []float32{0.5, 0.5}},
		{"more pigments", []Pigment{p, p}, []float32{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WeightedSum(tt.pigments, tt.weights)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("WeightedSum() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestSum(t *testing.T) {
	if got := Sum(); got != (Pigment{}) {
		t.Errorf("Sum() = %v, want zero pigment", got)
	}

	p, q := FromLatent(latentA), FromLatent(latentB)
	if got := Sum(p, q); got != p.Add(q) {
		t.Errorf("Sum(p, q) = %v, want %v", got, p.Add(q))
	}
	if got := Sum(p, q).Opacity(); got != 2 {
		t.Errorf("Sum(p, q).Opacity() = %v, want 2", got)
	}
}

func TestLerp(t *testing.T) {
	p, q := FromLatent(latentA), FromLatent(latentB)

	tests := []struct {
		name  string
		ratio float32
		want  Pigment
	}{
		{"start", 0, p},
		{"end", 1, q},
		{"below range", -0.5, p},
		{"above range", 2, q},
		{"NaN", float32(math.NaN()), p},
		{"middle", 0.5, p.Scale(0.5).Add(q.Scale(0.5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Lerp(q, tt.ratio); got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestWithOpacity(t *testing.T) {
	p := FromLatent(latentA).WithOpacity(0.25)
	if p.Opacity() != 0.25 {
		t.Errorf("Opacity() = %v, want 0.25", p.Opacity())
	}
	if p.Latent() != latentA {
		t.Error("WithOpacity changed the latent vector")
	}
}

func TestPigmentString(t *testing.T) {
	s := FromLatent(latentA).String()
	if !strings.HasPrefix(s, "Pigment{") || !strings.Contains(s, "opacity: 1") {
		t.Errorf("String() = %q", s)
	}
}
