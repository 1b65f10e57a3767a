package color

import "math"

// SRGBToLinear converts an encoded sRGB component to linear light (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input is clamped to [0,1].
func SRGBToLinear(s float32) float32 {
	s = clampUnit(s)
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component to encoded sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input is clamped to [0,1].
func LinearToSRGB(l float32) float32 {
	l = clampUnit(l)
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// Decode converts an encoded sRGB color to linear light.
func Decode(c RGB) RGB {
	return RGB{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
	}
}

// Encode converts a linear-light color to encoded sRGB.
func Encode(c RGB) RGB {
	return RGB{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
	}
}

// U8ToUnit maps a byte [0,255] to [0,1].
func U8ToUnit(v uint8) float32 {
	return float32(v) / 255.0
}

// UnitToU8 maps [0,1] to a byte with rounding to nearest.
// Values outside [0,1] saturate.
func UnitToU8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// U16ToUnit maps a 16-bit value [0,65535] to [0,1].
func U16ToUnit(v uint16) float32 {
	return float32(v) / 65535.0
}

// UnitToU16 maps [0,1] to a 16-bit value with rounding to nearest.
// Values outside [0,1] saturate.
func UnitToU16(v float32) uint16 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 65535
	}
	return uint16(float64(v)*65535.0 + 0.5)
}

// RGB8ToUnit converts an 8-bit color to unit-interval components.
func RGB8ToUnit(c RGB8) RGB {
	return RGB{R: U8ToUnit(c.R), G: U8ToUnit(c.G), B: U8ToUnit(c.B)}
}

// UnitToRGB8 quantizes unit-interval components to an 8-bit color.
func UnitToRGB8(c RGB) RGB8 {
	return RGB8{R: UnitToU8(c.R), G: UnitToU8(c.G), B: UnitToU8(c.B)}
}

// RGB16ToUnit converts a 16-bit color to unit-interval components.
func RGB16ToUnit(c RGB16) RGB {
	return RGB{R: U16ToUnit(c.R), G: U16ToUnit(c.G), B: U16ToUnit(c.B)}
}

// UnitToRGB16 quantizes unit-interval components to a 16-bit color.
func UnitToRGB16(c RGB) RGB16 {
	return RGB16{R: UnitToU16(c.R), G: UnitToU16(c.G), B: UnitToU16(c.B)}
}

// clampUnit restricts v to [0,1]. NaN maps to 0.
func clampUnit(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
