// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package km

import (
	"errors"
	"math"
	"testing"
)

func TestNewModelGridSize(t *testing.T) {
	tests := []struct {
		steps int
		want  int
	}{
		{1, 5},
		{2, 15},
		{4, 70},
		{DefaultGridSteps, 1820},
	}

	for _, tt := range tests {
		m, err := NewModel(ReferencePigments, tt.steps)
		if err != nil {
			t.Fatalf("NewModel(steps=%d): %v", tt.steps, err)
		}
		if len(m.grid) != tt.want {
			t.Errorf("steps=%d: grid has %d points, want %d", tt.steps, len(m.grid), tt.want)
		}
		if gridSize(tt.steps) != tt.want {
			t.Errorf("gridSize(%d) = %d, want %d", tt.steps, gridSize(tt.steps), tt.want)
		}
	}
}

func TestNewModelGridOnSimplex(t *testing.T) {
	m := Default()
	for i, g := range m.grid {
		var sum float64
		for _, c := range g.c {
			if c < 0 {
				t.Fatalf("grid[%d] has negative weight: %v", i, g.c)
			}
			sum += c
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Fatalf("grid[%d] sums to %v: %v", i, sum, g.c)
		}
	}

	// Lexicographic order: the first point is pure black, the last pure yellow.
	if first := m.grid[0].c; first != (Concentrations{0, 0, 0, 0, 1}) {
		t.Errorf("grid[0] = %v, want pure black", first)
	}
	if last := m.grid[len(m.grid)-1].c; last != (Concentrations{1, 0, 0, 0, 0}) {
		t.Errorf("last grid point = %v, want pure yellow", last)
	}
}

func TestNewModelErrors(t *testing.T) {
	bad := func(mut func(p *[NumPigments]Pigment)) [NumPigments]Pigment {
		p := ReferencePigments
		mut(&p)
		return p
	}

	tests := []struct {
		name     string
		pigments [NumPigments]Pigment
		steps    int
		wantErr  error
	}{
		{"zero steps", ReferencePigments, 0, ErrInvalidGrid},
		{"negative steps", ReferencePigments, -3, ErrInvalidGrid},
		{"zero scattering", bad(func(p *[NumPigments]Pigment) { p[1].Scattering = 0 }), 4, ErrInvalidPigment},
		{"NaN scattering", bad(func(p *[NumPigments]Pigment) { p[2].Scattering = math.NaN() }), 4, ErrInvalidPigment},
		{"zero reflectance", bad(func(p *[NumPigments]Pigment) { p[0].Reflectance[2] = 0 }), 4, ErrInvalidPigment},
		{"unit reflectance", bad(func(p *[NumPigments]Pigment) { p[3].Reflectance[0] = 1 }), 4, ErrInvalidPigment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel(tt.pigments, tt.steps)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewModel() error = %v, want %v", err, tt.wantErr)
			}
			if m != nil {
				t.Error("NewModel() returned a model with an error")
			}
		})
	}
}

func TestMixMasstone(t *testing.T) {
	m := Default()
	for i, p := range m.Pigments() {
		var c Concentrations
		c[i] = 1
		got := m.Mix(c)
		for ch := range got {
			if math.Abs(got[ch]-p.Reflectance[ch]) > 1e-9 {
				t.Errorf("%s band %d: Mix = %v, want %v", p.Name, ch, got[ch], p.Reflectance[ch])
			}
		}
	}
}

func TestMixScaleInvariant(t *testing.T) {
	m := Default()
	c := Concentrations{0.2, 0.1, 0.3, 0.3, 0.1}
	var half Concentrations
	for i := range c {
		half[i] = c[i] / 2
	}

	a, b := m.Mix(c), m.Mix(half)
	for ch := range a {
		if math.Abs(a[ch]-b[ch]) > 1e-12 {
			t.Errorf("band %d: Mix(c) = %v, Mix(c/2) = %v", ch, a[ch], b[ch])
		}
	}
}

func TestMixEmpty(t *testing.T) {
	m := Default()
	for _, c := range []Concentrations{{}, {-1, 0, -0.5, 0, 0}} {
		if got := m.Mix(c); got != ([3]float64{}) {
			t.Errorf("Mix(%v) = %v, want black", c, got)
		}
	}
}

func TestMixYellowBlueIsGreen(t *testing.T) {
	m := Default()
	got := m.Mix(Concentrations{0.5, 0, 0.5, 0, 0})
	if !(got[1] > 2*got[0] && got[1] > 2*got[2]) {
		t.Errorf("yellow+blue = %v, want green to dominate", got)
	}
}

func TestRoundTrip(t *testing.T) {
	m := Default()
	colors := [][3]float64{
		{0, 0, 0},
		{1, 1, 1},
		{0.5, 0.5, 0.5},
		{0.2, 0.6, 0.1},
		{0.9, 0.02, 0.02},
		{0.01, 0.02, 0.3},
		{0.33, 0.0001, 0.97},
	}

	for _, c := range colors {
		got := m.ToRGB(m.ToLatent(c))
		for ch := range c {
			if math.Abs(got[ch]-c[ch]) > 1e-12 {
				t.Errorf("ToRGB(ToLatent(%v)) = %v", c, got)
				break
			}
		}
	}
}

func TestToLatentConcentrations(t *testing.T) {
	m := Default()
	colors := [][3]float64{
		{0, 0, 0},
		{1, 1, 1},
		{0.5, 0.5, 0.5},
		{0.2, 0.6, 0.1},
		{0.9, 0.02, 0.02},
	}

	for _, c := range colors {
		l := m.ToLatent(c)
		var sum float64
		for i, v := range l[:NumPigments] {
			if v < 0 {
				t.Errorf("ToLatent(%v)[%d] = %v, want >= 0", c, i, v)
			}
			sum += v
		}
		if math.Abs(sum-1) > 1e-6 {
			t.Errorf("ToLatent(%v) concentrations sum to %v, want 1", c, sum)
		}
	}
}

func TestToLatentGrayIsMostlyWhite(t *testing.T) {
	l := Default().ToLatent([3]float64{0.5, 0.5, 0.5})
	if l[3] < 0.8 {
		t.Errorf("white concentration = %v, want > 0.8", l[3])
	}
	for ch := range 3 {
		if r := math.Abs(l[NumPigments+ch]); r > 0.02 {
			t.Errorf("residual %d = %v, want near zero", ch, r)
		}
	}
}

func TestToLatentOutOfRange(t *testing.T) {
	m := Default()
	c := [3]float64{1.5, -0.25, 0.5}

	l := m.ToLatent(c)
	clamped := m.ToLatent([3]float64{1, 0, 0.5})
	if Concentrations(l[:NumPigments]) != Concentrations(clamped[:NumPigments]) {
		t.Errorf("concentrations differ from clamped input: %v vs %v", l[:NumPigments], clamped[:NumPigments])
	}

	got := m.ToRGB(l)
	for ch := range c {
		if math.Abs(got[ch]-c[ch]) > 1e-12 {
			t.Errorf("out-of-range round trip = %v, want %v", got, c)
			break
		}
	}
}

func TestToLatentDeterministic(t *testing.T) {
	a, err := NewModel(ReferencePigments, DefaultGridSteps)
	if err != nil {
		t.Fatal(err)
	}
	c := [3]float64{0.3, 0.15, 0.6}
	if a.ToLatent(c) != Default().ToLatent(c) {
		t.Error("independent models disagree on ToLatent")
	}
}

func BenchmarkToLatent(b *testing.B) {
	m := Default()
	c := [3]float64{0.3, 0.15, 0.6}
	b.ReportAllocs()
	for b.Loop() {
		_ = m.ToLatent(c)
	}
}

func BenchmarkToRGB(b *testing.B) {
	m := Default()
	l := m.ToLatent([3]float64{0.3, 0.15, 0.6})
	b.ReportAllocs()
	for b.Loop() {
		_ = m.ToRGB(l)
	}
}
