package color

import "math"

// sRGB8ToLinearLUT holds the decoded value of every 8-bit sRGB code.
// 256 entries, 1KB.
var sRGB8ToLinearLUT [256]float32

func init() {
	for i := range sRGB8ToLinearLUT {
		s := float64(i) / 255.0
		var linear float64
		if s <= 0.04045 {
			linear = s / 12.92
		} else {
			linear = math.Pow((s+0.055)/1.055, 2.4)
		}
		sRGB8ToLinearLUT[i] = float32(linear)
	}
}

// SRGB8ToLinear decodes an 8-bit sRGB code with a table lookup.
//
// Example:
//
//	r := SRGB8ToLinear(128) // ~0.2159 (not 0.5!)
func SRGB8ToLinear(s uint8) float32 {
	return sRGB8ToLinearLUT[s]
}

// DecodeRGB8 decodes an 8-bit sRGB color to linear light.
func DecodeRGB8(c RGB8) RGB {
	return RGB{
		R: sRGB8ToLinearLUT[c.R],
		G: sRGB8ToLinearLUT[c.G],
		B: sRGB8ToLinearLUT[c.B],
	}
}

// EncodeRGB8 encodes a linear-light color to 8-bit sRGB.
func EncodeRGB8(c RGB) RGB8 {
	return UnitToRGB8(Encode(c))
}
