// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pigment

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/pigment/internal/parallel"
)

// bandsPerWorker oversubscribes the pool so that work stealing can even out
// bands of different cost.
const bandsPerWorker = 4

// MixImages mixes two images pixel by pixel. ratio is the share of b,
// clamped to [0,1].
//
// Color channels are mixed as 8-bit encoded sRGB through the mixer's
// transform; alpha is interpolated linearly. Both images must have the same
// bounds, otherwise ErrSizeMismatch is returned. The work is split into row
// bands executed concurrently; if ctx is canceled the remaining bands are
// skipped and ctx.Err() is returned.
func (m *Mixer) MixImages(ctx context.Context, a, b image.Image, ratio float32) (*image.NRGBA, error) {
	bounds := a.Bounds()
	if !bounds.Eq(b.Bounds()) {
		return nil, fmt.Errorf("%w: %v and %v", ErrSizeMismatch, bounds, b.Bounds())
	}
	ratio = clampRatio(ratio)

	srcA, srcB := toNRGBA(a), toNRGBA(b)
	dst := image.NewNRGBA(bounds)
	if bounds.Empty() {
		return dst, nil
	}

	pool := parallel.NewWorkerPool(m.workers)
	defer pool.Close()

	bands := parallel.Bands(bounds, pool.Workers()*bandsPerWorker)
	Logger().Debug("pigment: mixing images",
		"bounds", bounds.String(),
		"bands", len(bands),
		"workers", pool.Workers())

	work := make([]func(), len(bands))
	for i, band := range bands {
		work[i] = func() {
			if ctx.Err() != nil {
				return
			}
			m.mixBand(dst, srcA, srcB, band, ratio)
		}
	}
	pool.ExecuteAll(work)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dst, nil
}

// MixImages mixes two images with the Default mixer.
func MixImages(ctx context.Context, a, b image.Image, ratio float32) (*image.NRGBA, error) {
	return Default().MixImages(ctx, a, b, ratio)
}

func (m *Mixer) mixBand(dst, a, b *image.NRGBA, band image.Rectangle, ratio float32) {
	for y := band.Min.Y; y < band.Max.Y; y++ {
		for x := band.Min.X; x < band.Max.X; x++ {
			ia, ib, id := a.PixOffset(x, y), b.PixOffset(x, y), dst.PixOffset(x, y)
			pa, pb := a.Pix[ia:ia+4:ia+4], b.Pix[ib:ib+4:ib+4]

			c := m.MixSRGBU8([3]uint8{pa[0], pa[1], pa[2]}, [3]uint8{pb[0], pb[1], pb[2]}, ratio)
			alpha := float32(pa[3])*(1-ratio) + float32(pb[3])*ratio

			out := dst.Pix[id : id+4 : id+4]
			out[0], out[1], out[2] = c[0], c[1], c[2]
			out[3] = uint8(min(alpha+0.5, 255)) //nolint:gosec // G115: alpha is in [0,255]
		}
	}
}

// toNRGBA returns img as non-premultiplied RGBA, converting if necessary.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	bounds := img.Bounds()
	n := image.NewNRGBA(bounds)
	draw.Draw(n, bounds, img, bounds.Min, draw.Src)
	return n
}
