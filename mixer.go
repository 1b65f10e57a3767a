// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pigment

import (
	"fmt"
	"sync"

	"github.com/gogpu/pigment/internal/cache"
	"github.com/gogpu/pigment/internal/color"
)

// Mixer converts colors to pigments and back through one Transform.
//
// The decode → transform → combine → inverse transform → encode pipeline is
// pure; a Mixer only holds configuration and an optional cache of forward
// transforms, so it is safe for concurrent use.
type Mixer struct {
	transform Transform
	latents   *cache.Sharded[uint32, Latent] // nil when caching is disabled
	workers   int
}

// NewMixer creates a Mixer. Without options it uses the Kubelka–Munk
// transform and caches the latent vectors of 8-bit colors.
func NewMixer(opts ...MixerOption) *Mixer {
	o := defaultMixerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.transform == nil {
		o.transform = KubelkaMunk()
	}

	m := &Mixer{
		transform: o.transform,
		workers:   o.workers,
	}
	if o.cacheCapacity > 0 {
		m.latents = cache.NewSharded[uint32, Latent](o.cacheCapacity, cache.RGBHasher)
	}

	Logger().Debug("pigment: mixer created",
		"transform", fmt.Sprint(o.transform),
		"cache_capacity", o.cacheCapacity,
		"workers", o.workers)
	return m
}

var defaultMixer = sync.OnceValue(func() *Mixer { return NewMixer() })

// Default returns the shared Mixer used by the package-level functions.
// It uses the Kubelka–Munk transform with the default cache.
func Default() *Mixer {
	return defaultMixer()
}

// Transform returns the transform used by m.
func (m *Mixer) Transform() Transform {
	return m.transform
}

// CacheStats describes the latent cache of a Mixer.
type CacheStats struct {
	Enabled   bool
	Len       int
	Capacity  int // total across shards
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// CacheStats returns a snapshot of the latent cache statistics.
func (m *Mixer) CacheStats() CacheStats {
	if m.latents == nil {
		return CacheStats{}
	}
	s := m.latents.Stats()
	return CacheStats{
		Enabled:   true,
		Len:       s.Len,
		Capacity:  s.TotalCapacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		HitRate:   s.HitRate,
	}
}

// ResetCache drops every cached latent vector and zeroes the statistics.
// It is a no-op when caching is disabled.
func (m *Mixer) ResetCache() {
	if m.latents == nil {
		return
	}
	m.latents.Clear()
	m.latents.ResetStats()
	Logger().Debug("pigment: latent cache reset")
}

// FromLinear builds an opaque pigment from a linear-light color.
func (m *Mixer) FromLinear(r, g, b float32) Pigment {
	return FromLatent(m.transform.ToLatent(Linear{R: r, G: g, B: b}))
}

// FromSRGBF32 builds a pigment from an encoded sRGB color with components
// in [0,1]. Components outside that range are clamped.
func (m *Mixer) FromSRGBF32(r, g, b float32) Pigment {
	lin := color.Decode(color.RGB{R: r, G: g, B: b})
	return m.FromLinear(lin.R, lin.G, lin.B)
}

// FromSRGBU8 builds a pigment from an 8-bit encoded sRGB color.
func (m *Mixer) FromSRGBU8(r, g, b uint8) Pigment {
	solve := func() Latent {
		lin := color.DecodeRGB8(color.RGB8{R: r, G: g, B: b})
		return m.transform.ToLatent(Linear{R: lin.R, G: lin.G, B: lin.B})
	}
	if m.latents == nil {
		return FromLatent(solve())
	}
	return FromLatent(m.latents.GetOrCreate(cache.RGBKey(r, g, b), solve))
}

// FromSRGBU16 builds a pigment from a 16-bit encoded sRGB color.
func (m *Mixer) FromSRGBU16(r, g, b uint16) Pigment {
	unit := color.RGB16ToUnit(color.RGB16{R: r, G: g, B: b})
	return m.FromSRGBF32(unit.R, unit.G, unit.B)
}

// FromLinearU16 builds a pigment from a 16-bit linear-light color.
func (m *Mixer) FromLinearU16(r, g, b uint16) Pigment {
	unit := color.RGB16ToUnit(color.RGB16{R: r, G: g, B: b})
	return m.FromLinear(unit.R, unit.G, unit.B)
}

// Linear converts p to a linear-light color. The result is not clamped.
func (m *Mixer) Linear(p Pigment) Linear {
	return m.transform.ToRGB(p.latent)
}

// SRGBF32 converts p to an encoded sRGB color with components in [0,1].
func (m *Mixer) SRGBF32(p Pigment) [3]float32 {
	lin := m.Linear(p)
	enc := color.Encode(color.RGB{R: lin.R, G: lin.G, B: lin.B})
	return [3]float32{enc.R, enc.G, enc.B}
}

// SRGBU8 converts p to an 8-bit encoded sRGB color.
func (m *Mixer) SRGBU8(p Pigment) [3]uint8 {
	lin := m.Linear(p)
	c := color.EncodeRGB8(color.RGB{R: lin.R, G: lin.G, B: lin.B})
	return [3]uint8{c.R, c.G, c.B}
}

// LinearU16 converts p to a 16-bit linear-light color.
func (m *Mixer) LinearU16(p Pigment) [3]uint16 {
	lin := m.Linear(p)
	c := color.UnitToRGB16(color.RGB{R: lin.R, G: lin.G, B: lin.B})
	return [3]uint16{c.R, c.G, c.B}
}

// FromLinear builds a pigment with the Default mixer.
func FromLinear(r, g, b float32) Pigment { return Default().FromLinear(r, g, b) }

// FromSRGBF32 builds a pigment from encoded [0,1] sRGB with the Default mixer.
func FromSRGBF32(r, g, b float32) Pigment { return Default().FromSRGBF32(r, g, b) }

// FromSRGBU8 builds a pigment from 8-bit encoded sRGB with the Default mixer.
func FromSRGBU8(r, g, b uint8) Pigment { return Default().FromSRGBU8(r, g, b) }

// FromSRGBU16 builds a pigment from 16-bit encoded sRGB with the Default mixer.
func FromSRGBU16(r, g, b uint16) Pigment { return Default().FromSRGBU16(r, g, b) }

// FromLinearU16 builds a pigment from 16-bit linear light with the Default mixer.
func FromLinearU16(r, g, b uint16) Pigment { return Default().FromLinearU16(r, g, b) }

// ToLinear converts a pigment built by the Default mixer to linear light.
func ToLinear(p Pigment) Linear { return Default().Linear(p) }

// ToSRGBF32 converts a pigment built by the Default mixer to encoded [0,1] sRGB.
func ToSRGBF32(p Pigment) [3]float32 { return Default().SRGBF32(p) }

// ToSRGBU8 converts a pigment built by the Default mixer to 8-bit encoded sRGB.
func ToSRGBU8(p Pigment) [3]uint8 { return Default().SRGBU8(p) }

// ToLinearU16 converts a pigment built by the Default mixer to 16-bit linear light.
func ToLinearU16(p Pigment) [3]uint16 { return Default().LinearU16(p) }
