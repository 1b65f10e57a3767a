// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package parallel

import "image"

// Bands splits r into at most n horizontal bands of nearly equal height.
// An empty rectangle yields no bands; n < 1 is treated as 1.
func Bands(r image.Rectangle, n int) []image.Rectangle {
	h := r.Dy()
	if r.Empty() {
		return nil
	}
	n = min(max(n, 1), h)

	bands := make([]image.Rectangle, 0, n)
	y := r.Min.Y
	for i := range n {
		// Spread the remainder over the first bands.
		rows := h / n
		if i < h%n {
			rows++
		}
		bands = append(bands, image.Rect(r.Min.X, y, r.Max.X, y+rows))
		y += rows
	}
	return bands
}
