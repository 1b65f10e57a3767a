// Package color implements the colorimetric codec used by pigment: the sRGB
// transfer functions and the integer ↔ unit-interval quantization applied at
// the boundary of every mix.
//
// All functions are pure and total. Inputs outside the nominal range are
// clamped before the transfer function is applied, so a slightly
// out-of-gamut intermediate never produces NaN.
package color

// RGB is a three-channel color with float32 components.
// Whether the components are gamma-encoded or linear is decided by context.
type RGB struct {
	R, G, B float32
}

// RGB8 is a three-channel color with uint8 components in [0,255].
type RGB8 struct {
	R, G, B uint8
}

// RGB16 is a three-channel color with uint16 components in [0,65535].
type RGB16 struct {
	R, G, B uint16
}
