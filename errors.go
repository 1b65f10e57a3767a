// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pigment

import "errors"

var (
	// ErrInvalidArgument reports a caller contract violation: an empty mix,
	// mismatched color and weight counts, or an unknown Encoding.
	ErrInvalidArgument = errors.New("pigment: invalid argument")

	// ErrUnknownColor reports a color string that is neither hex nor a
	// known color name.
	ErrUnknownColor = errors.New("pigment: unknown color")

	// ErrSizeMismatch reports images with different bounds.
	ErrSizeMismatch = errors.New("pigment: image bounds differ")
)
