// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pigment

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ParseColor parses an 8-bit sRGB color.
//
// Accepted forms are hex triplets "#rgb" and "#rrggbb" (the leading '#' is
// optional) and SVG 1.1 color names such as "DarkSlateBlue" or
// "light goldenrod yellow". Name matching ignores case, spaces, hyphens and
// underscores. Anything else returns ErrUnknownColor.
func ParseColor(s string) ([3]uint8, error) {
	t := strings.TrimSpace(s)
	hex := strings.TrimPrefix(t, "#")

	if isHexTriplet(hex) {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return [3]uint8{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
		}
		r, g, b := c.RGB255()
		return [3]uint8{r, g, b}, nil
	}
	if hex != t {
		return [3]uint8{}, fmt.Errorf("%w: %q is not a hex color", ErrUnknownColor, s)
	}

	if c, ok := colornames.Map[foldName(t)]; ok {
		return [3]uint8{c.R, c.G, c.B}, nil
	}
	return [3]uint8{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// MustParseColor is like ParseColor but panics on error.
// It is intended for initializing package-level palettes.
func MustParseColor(s string) [3]uint8 {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexTriplet(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func foldName(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, s)
	// A Caser is stateful, so each call gets its own.
	return cases.Fold().String(s)
}

// Distance returns the CIEDE2000 color difference between two 8-bit encoded
// sRGB colors, in conventional ΔE units (about 2.3 is a just noticeable
// difference).
func Distance(a, b [3]uint8) float64 {
	return colorful8(a).DistanceCIEDE2000(colorful8(b)) * 100
}

func colorful8(c [3]uint8) colorful.Color {
	return colorful.Color{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
	}
}
